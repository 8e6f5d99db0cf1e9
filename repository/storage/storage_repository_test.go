package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redisclient "github.com/pmyge/humo-tezkor-frontend/cmd/redis"
	"github.com/pmyge/humo-tezkor-frontend/constant"
	"github.com/pmyge/humo-tezkor-frontend/repository/storage"
	"github.com/redis/go-redis/v9"
)

func newTestRepository(t *testing.T) (storage.Repository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	redisclient.SetClient(client)
	t.Cleanup(func() {
		redisclient.SetClient(nil)
		_ = client.Close()
	})
	return storage.NewRepository(), mr
}

func TestRepository_GetSetDelete(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	// a missing record is a miss, not an error
	val, err := repo.Get(ctx, "dev-1", constant.RecordUser)
	if err != nil || val != "" {
		t.Fatalf("Get(missing) = (%q, %v), want (\"\", nil)", val, err)
	}

	if err := repo.Set(ctx, "dev-1", constant.RecordUser, `{"telegram_user_id":123}`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	val, err = repo.Get(ctx, "dev-1", constant.RecordUser)
	if err != nil || val != `{"telegram_user_id":123}` {
		t.Fatalf("Get() = (%q, %v)", val, err)
	}

	// records are scoped per device
	val, err = repo.Get(ctx, "dev-2", constant.RecordUser)
	if err != nil || val != "" {
		t.Fatalf("Get(other device) = (%q, %v), want (\"\", nil)", val, err)
	}

	if err := repo.Delete(ctx, "dev-1", constant.RecordUser); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	val, err = repo.Get(ctx, "dev-1", constant.RecordUser)
	if err != nil || val != "" {
		t.Fatalf("Get(deleted) = (%q, %v), want (\"\", nil)", val, err)
	}
}

func TestRepository_LastWriteWins(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	if err := repo.Set(ctx, "dev-1", constant.RecordTheme, constant.ThemeLight); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := repo.Set(ctx, "dev-1", constant.RecordTheme, constant.ThemeDark); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	val, err := repo.Get(ctx, "dev-1", constant.RecordTheme)
	if err != nil || val != constant.ThemeDark {
		t.Fatalf("Get() = (%q, %v), want dark", val, err)
	}
}

func TestRepository_Sessions(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()

	if err := repo.SetSession(ctx, "jti-1", "dev-1", time.Minute); err != nil {
		t.Fatalf("SetSession() error = %v", err)
	}

	deviceID, err := repo.GetSession(ctx, "jti-1")
	if err != nil || deviceID != "dev-1" {
		t.Fatalf("GetSession() = (%q, %v), want dev-1", deviceID, err)
	}

	// sessions expire with the token
	mr.FastForward(2 * time.Minute)
	deviceID, err = repo.GetSession(ctx, "jti-1")
	if err != nil || deviceID != "" {
		t.Fatalf("GetSession(expired) = (%q, %v), want (\"\", nil)", deviceID, err)
	}

	if err := repo.SetSession(ctx, "jti-2", "dev-2", time.Minute); err != nil {
		t.Fatalf("SetSession() error = %v", err)
	}
	if err := repo.DeleteSession(ctx, "jti-2"); err != nil {
		t.Fatalf("DeleteSession() error = %v", err)
	}
	deviceID, err = repo.GetSession(ctx, "jti-2")
	if err != nil || deviceID != "" {
		t.Fatalf("GetSession(revoked) = (%q, %v), want (\"\", nil)", deviceID, err)
	}
}
