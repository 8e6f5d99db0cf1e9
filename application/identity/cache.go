package identity

import (
	"context"
	"encoding/json"

	"github.com/pmyge/humo-tezkor-frontend/constant"
	"github.com/pmyge/humo-tezkor-frontend/model"
	"github.com/pmyge/humo-tezkor-frontend/repository/storage"
	"github.com/pmyge/humo-tezkor-frontend/utils/logger"
	"go.uber.org/zap"
)

// Source labels where an incoming identity record came from. The server is
// authoritative: a server record fully replaces the cached one, while local
// edits merge field by field.
type Source string

const (
	SourceServer Source = "server"
	SourceLocal  Source = "local"
)

// Cache is the device-scoped mirror of the last-known user record.
type Cache interface {
	Load(ctx context.Context, deviceID string) (*model.User, error)
	Merge(ctx context.Context, deviceID string, incoming *model.User, source Source) (*model.User, error)
	Clear(ctx context.Context, deviceID string) error
}

type cacheImpl struct {
	storageRepo storage.Repository
}

func NewCache(storageRepo storage.Repository) Cache {
	return &cacheImpl{storageRepo: storageRepo}
}

// Load returns the cached record, or nil on a miss. Malformed stored JSON is
// a miss, never an error.
func (c *cacheImpl) Load(ctx context.Context, deviceID string) (*model.User, error) {
	raw, err := c.storageRepo.Get(ctx, deviceID, constant.RecordUser)
	if err != nil {
		logger.Error("[IdentityCache] load", zap.String("error", err.Error()))
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		logger.Warn("[IdentityCache] malformed cached record, treating as miss", zap.String("device_id", deviceID))
		return nil, nil
	}
	return &user, nil
}

// Merge applies an incoming record and persists the result. A record whose id
// is at or above the legacy threshold purges the cache entirely instead of
// being written.
func (c *cacheImpl) Merge(ctx context.Context, deviceID string, incoming *model.User, source Source) (*model.User, error) {
	if incoming == nil {
		return c.Load(ctx, deviceID)
	}

	if incoming.TelegramUserID >= constant.LegacyIDThreshold {
		logger.Warn("[IdentityCache] legacy fallback id rejected, purging record",
			zap.Int64("telegram_user_id", incoming.TelegramUserID))
		if err := c.Clear(ctx, deviceID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	var merged model.User
	if source == SourceServer {
		merged = *incoming
	} else {
		cached, err := c.Load(ctx, deviceID)
		if err != nil {
			return nil, err
		}
		if cached != nil {
			merged = *cached
		}
		mergeFields(&merged, incoming)
	}

	merged.PhoneNumber = normalizePhone(merged.PhoneNumber)

	// nothing identifies this record yet; hand it back without writing an
	// anonymous entry the resolver could never use
	if merged.TelegramUserID == 0 {
		logger.Warn("[IdentityCache] record without an id not persisted", zap.String("device_id", deviceID))
		return &merged, nil
	}

	encoded, err := json.Marshal(&merged)
	if err != nil {
		logger.Error("[IdentityCache] marshal", zap.String("error", err.Error()))
		return nil, err
	}
	if err := c.storageRepo.Set(ctx, deviceID, constant.RecordUser, string(encoded)); err != nil {
		logger.Error("[IdentityCache] persist", zap.String("error", err.Error()))
		return nil, err
	}
	return &merged, nil
}

// Clear drops the cached record, used on logout and on legacy-id purges.
func (c *cacheImpl) Clear(ctx context.Context, deviceID string) error {
	return c.storageRepo.Delete(ctx, deviceID, constant.RecordUser)
}

// mergeFields overwrites dst fields that the incoming record specifies;
// unspecified fields keep their cached values.
func mergeFields(dst, incoming *model.User) {
	if incoming.TelegramUserID != 0 {
		dst.TelegramUserID = incoming.TelegramUserID
	}
	if incoming.FirstName != "" {
		dst.FirstName = incoming.FirstName
	}
	if incoming.LastName != "" {
		dst.LastName = incoming.LastName
	}
	if incoming.Username != "" {
		dst.Username = incoming.Username
	}
	if incoming.PhoneNumber != "" {
		dst.PhoneNumber = incoming.PhoneNumber
	}
	if incoming.Language != "" {
		dst.Language = incoming.Language
	}
}

func normalizePhone(phone string) string {
	if phone == constant.EmptyPhoneMarker {
		return ""
	}
	return phone
}
