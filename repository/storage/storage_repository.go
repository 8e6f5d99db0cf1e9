package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	redisclient "github.com/pmyge/humo-tezkor-frontend/cmd/redis"
	"github.com/redis/go-redis/v9"
)

// Repository is the device-scoped key-value storage collaborator. Each
// (deviceID, record) pair is an independent last-write-wins entry; there are
// no transactional guarantees. A missing record is ("", nil), never an error.
type Repository interface {
	Get(ctx context.Context, deviceID, record string) (string, error)
	Set(ctx context.Context, deviceID, record, value string) error
	Delete(ctx context.Context, deviceID, record string) error
	SetSession(ctx context.Context, sessionID, deviceID string, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type storage struct {
}

// NewRepository returns a Repository backed by the shared Redis client.
func NewRepository() Repository {
	return &storage{}
}

func recordKey(deviceID, record string) string {
	return fmt.Sprintf("device:%s:%s", deviceID, record)
}

// Get retrieves a device record. A missing key is a cache miss, not a failure.
func (s *storage) Get(ctx context.Context, deviceID, record string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.Get(ctx, recordKey(deviceID, record)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Set overwrites a device record.
func (s *storage) Set(ctx context.Context, deviceID, record, value string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, recordKey(deviceID, record), value, 0).Err()
}

// Delete removes a device record.
func (s *storage) Delete(ctx context.Context, deviceID, record string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, recordKey(deviceID, record)).Err()
}

// SetSession maps a token id to its device for the token's lifetime.
func (s *storage) SetSession(ctx context.Context, sessionID, deviceID string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, "session:"+sessionID, deviceID, ttl).Err()
}

// GetSession returns the device id for a token id, or empty when expired.
func (s *storage) GetSession(ctx context.Context, sessionID string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.Get(ctx, "session:"+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// DeleteSession revokes a token id.
func (s *storage) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, "session:"+sessionID).Err()
}
