package user

import (
	"context"

	"github.com/pmyge/humo-tezkor-frontend/application/identity"
	"github.com/pmyge/humo-tezkor-frontend/constant"
	"github.com/pmyge/humo-tezkor-frontend/model"
	"github.com/pmyge/humo-tezkor-frontend/thirdparty/storeapi"
	"github.com/pmyge/humo-tezkor-frontend/utils/errors"
	"github.com/pmyge/humo-tezkor-frontend/utils/logger"
	validatorx "github.com/pmyge/humo-tezkor-frontend/utils/validator"
	"go.uber.org/zap"
)

const phonePrefix = "+998"

// ProfileApp covers the user-facing profile operations: fetching the server
// record, phone registration, field-level edits and language switching. All
// server results flow through the identity cache so the device mirror stays
// current.
type ProfileApp interface {
	Fetch(ctx context.Context, deviceID string, telegramUserID int64) (*model.User, error)
	RegisterPhone(ctx context.Context, deviceID string, telegramUserID int64, tg *model.TelegramUser, req *model.RegisterPhoneRequest) (*model.User, error)
	UpdateProfile(ctx context.Context, deviceID string, telegramUserID int64, req *model.UpdateProfileRequest) (*model.User, error)
	ChangeLanguage(ctx context.Context, deviceID string, telegramUserID int64, language string) error
	SyncTelegramName(ctx context.Context, deviceID string, telegramUserID int64, tg *model.TelegramUser, server *model.User) (*model.User, error)
	Logout(ctx context.Context, deviceID string) error
}

type profileAppImpl struct {
	api   storeapi.Client
	cache identity.Cache
}

func NewProfileApp(api storeapi.Client, cache identity.Cache) ProfileApp {
	return &profileAppImpl{api: api, cache: cache}
}

// Fetch loads the server record and replaces the cached one with it (server
// always wins). A missing server record returns nil without touching the
// cache.
func (s *profileAppImpl) Fetch(ctx context.Context, deviceID string, telegramUserID int64) (*model.User, error) {
	userData, err := s.api.GetUserInfo(ctx, telegramUserID)
	if err != nil {
		logger.Error("[Profile] fetch user", zap.String("error", err.Error()),
			zap.Int64("telegram_user_id", telegramUserID))
		return nil, err
	}
	if userData == nil {
		return nil, nil
	}
	return s.cache.Merge(ctx, deviceID, userData, identity.SourceServer)
}

// RegisterPhone validates the national number locally, registers it with the
// server and caches the returned record.
func (s *profileAppImpl) RegisterPhone(ctx context.Context, deviceID string, telegramUserID int64, tg *model.TelegramUser, req *model.RegisterPhoneRequest) (*model.User, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	verify := &model.PhoneVerifyRequest{
		TelegramUserID: telegramUserID,
		PhoneNumber:    phonePrefix + req.PhoneNumber,
	}
	if tg != nil {
		verify.FirstName = tg.FirstName
		verify.LastName = tg.LastName
		verify.Username = tg.Username
	}

	userData, err := s.api.RegisterPhone(ctx, verify)
	if err != nil {
		logger.Error("[Profile] phone verify", zap.String("error", err.Error()),
			zap.Int64("telegram_user_id", telegramUserID))
		return nil, err
	}
	return s.cache.Merge(ctx, deviceID, userData, identity.SourceServer)
}

// UpdateProfile issues a field-level PATCH and caches the server echo.
func (s *profileAppImpl) UpdateProfile(ctx context.Context, deviceID string, telegramUserID int64, req *model.UpdateProfileRequest) (*model.User, error) {
	if req.FirstName == "" && req.LastName == "" && req.Username == "" {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	userData, err := s.api.UpdateUser(ctx, telegramUserID, req)
	if err != nil {
		logger.Error("[Profile] update", zap.String("error", err.Error()),
			zap.Int64("telegram_user_id", telegramUserID))
		return nil, err
	}
	return s.cache.Merge(ctx, deviceID, userData, identity.SourceServer)
}

func (s *profileAppImpl) ChangeLanguage(ctx context.Context, deviceID string, telegramUserID int64, language string) error {
	if language != constant.LanguageUz && language != constant.LanguageRu {
		return errors.SetCustomError(constant.ErrValidation)
	}
	if err := s.api.ChangeLanguage(ctx, telegramUserID, language); err != nil {
		logger.Error("[Profile] change language", zap.String("error", err.Error()),
			zap.Int64("telegram_user_id", telegramUserID))
		return err
	}
	_, err := s.cache.Merge(ctx, deviceID, &model.User{Language: language}, identity.SourceLocal)
	return err
}

// SyncTelegramName pushes the Telegram profile name to the server when it
// drifted from the stored record, keeping chat-visible names current.
func (s *profileAppImpl) SyncTelegramName(ctx context.Context, deviceID string, telegramUserID int64, tg *model.TelegramUser, server *model.User) (*model.User, error) {
	if tg == nil || server == nil || tg.FirstName == "" || tg.FirstName == server.FirstName {
		return server, nil
	}
	updated, err := s.api.UpdateUser(ctx, telegramUserID, &model.UpdateProfileRequest{
		FirstName: tg.FirstName,
		LastName:  tg.LastName,
		Username:  tg.Username,
	})
	if err != nil {
		// drift sync is best effort; the fetched record stands
		logger.Warn("[Profile] name sync", zap.String("error", err.Error()),
			zap.Int64("telegram_user_id", telegramUserID))
		return server, nil
	}
	return s.cache.Merge(ctx, deviceID, updated, identity.SourceServer)
}

// Logout clears the cached identity record.
func (s *profileAppImpl) Logout(ctx context.Context, deviceID string) error {
	return s.cache.Clear(ctx, deviceID)
}
