package identity_test

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/pmyge/humo-tezkor-frontend/application/identity"
	"github.com/pmyge/humo-tezkor-frontend/constant"
	storagemocks "github.com/pmyge/humo-tezkor-frontend/mocks/repository/storage"
	"github.com/pmyge/humo-tezkor-frontend/model"
	"github.com/stretchr/testify/mock"
)

func mustJSON(t *testing.T, u *model.User) string {
	t.Helper()
	encoded, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(encoded)
}

func TestCache_Load(t *testing.T) {
	type fields struct {
		storageRepo *storagemocks.StorageRepository
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		want     *model.User
		wantErr  bool
	}{
		{
			name:   "success: cached record",
			fields: fields{storageRepo: storagemocks.NewStorageRepository(t)},
			mockCall: func(f fields) {
				f.storageRepo.
					On("Get", mock.Anything, "dev-1", constant.RecordUser).
					Return(`{"telegram_user_id":123,"first_name":"Ann","phone_number":"998901234567"}`, nil).
					Once()
			},
			want: &model.User{TelegramUserID: 123, FirstName: "Ann", PhoneNumber: "998901234567"},
		},
		{
			name:   "success: empty storage is a miss",
			fields: fields{storageRepo: storagemocks.NewStorageRepository(t)},
			mockCall: func(f fields) {
				f.storageRepo.
					On("Get", mock.Anything, "dev-1", constant.RecordUser).
					Return("", nil).
					Once()
			},
			want: nil,
		},
		{
			name:   "success: malformed record is a miss, not an error",
			fields: fields{storageRepo: storagemocks.NewStorageRepository(t)},
			mockCall: func(f fields) {
				f.storageRepo.
					On("Get", mock.Anything, "dev-1", constant.RecordUser).
					Return(`{"telegram_user_id":`, nil).
					Once()
			},
			want: nil,
		},
		{
			name:   "error: storage failure",
			fields: fields{storageRepo: storagemocks.NewStorageRepository(t)},
			mockCall: func(f fields) {
				f.storageRepo.
					On("Get", mock.Anything, "dev-1", constant.RecordUser).
					Return("", errors.New("redis down")).
					Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			cache := identity.NewCache(tt.fields.storageRepo)

			got, err := cache.Load(context.Background(), "dev-1")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Load() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCache_Merge(t *testing.T) {
	type fields struct {
		storageRepo *storagemocks.StorageRepository
	}
	type args struct {
		incoming *model.User
		source   identity.Source
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(t *testing.T, f fields)
		want     *model.User
		wantErr  bool
	}{
		{
			name:   "server record fully replaces the cached one",
			fields: fields{storageRepo: storagemocks.NewStorageRepository(t)},
			args: args{
				incoming: &model.User{TelegramUserID: 123, FirstName: "Server", Language: "ru"},
				source:   identity.SourceServer,
			},
			mockCall: func(t *testing.T, f fields) {
				want := &model.User{TelegramUserID: 123, FirstName: "Server", Language: "ru"}
				f.storageRepo.
					On("Set", mock.Anything, "dev-1", constant.RecordUser, mustJSON(t, want)).
					Return(nil).
					Once()
			},
			want: &model.User{TelegramUserID: 123, FirstName: "Server", Language: "ru"},
		},
		{
			name:   "server record clears fields the cache had",
			fields: fields{storageRepo: storagemocks.NewStorageRepository(t)},
			args: args{
				incoming: &model.User{TelegramUserID: 123, FirstName: "Server"},
				source:   identity.SourceServer,
			},
			mockCall: func(t *testing.T, f fields) {
				// no Load for server source: the incoming record is the truth
				want := &model.User{TelegramUserID: 123, FirstName: "Server"}
				f.storageRepo.
					On("Set", mock.Anything, "dev-1", constant.RecordUser, mustJSON(t, want)).
					Return(nil).
					Once()
			},
			want: &model.User{TelegramUserID: 123, FirstName: "Server"},
		},
		{
			name:   "local edit merges field by field",
			fields: fields{storageRepo: storagemocks.NewStorageRepository(t)},
			args: args{
				incoming: &model.User{FirstName: "Edited"},
				source:   identity.SourceLocal,
			},
			mockCall: func(t *testing.T, f fields) {
				cached := &model.User{TelegramUserID: 123, FirstName: "Ann", LastName: "Lee", PhoneNumber: "998901234567"}
				f.storageRepo.
					On("Get", mock.Anything, "dev-1", constant.RecordUser).
					Return(mustJSON(t, cached), nil).
					Once()
				want := &model.User{TelegramUserID: 123, FirstName: "Edited", LastName: "Lee", PhoneNumber: "998901234567"}
				f.storageRepo.
					On("Set", mock.Anything, "dev-1", constant.RecordUser, mustJSON(t, want)).
					Return(nil).
					Once()
			},
			want: &model.User{TelegramUserID: 123, FirstName: "Edited", LastName: "Lee", PhoneNumber: "998901234567"},
		},
		{
			name:   "local edit with no identity is returned but not written",
			fields: fields{storageRepo: storagemocks.NewStorageRepository(t)},
			args: args{
				incoming: &model.User{Language: "ru"},
				source:   identity.SourceLocal,
			},
			mockCall: func(t *testing.T, f fields) {
				// no Set expectation: an anonymous record never hits storage
				f.storageRepo.
					On("Get", mock.Anything, "dev-1", constant.RecordUser).
					Return("", nil).
					Once()
			},
			want: &model.User{Language: "ru"},
		},
		{
			name:   "dash phone marker normalizes to empty",
			fields: fields{storageRepo: storagemocks.NewStorageRepository(t)},
			args: args{
				incoming: &model.User{TelegramUserID: 123, FirstName: "Ann", PhoneNumber: constant.EmptyPhoneMarker},
				source:   identity.SourceServer,
			},
			mockCall: func(t *testing.T, f fields) {
				want := &model.User{TelegramUserID: 123, FirstName: "Ann"}
				f.storageRepo.
					On("Set", mock.Anything, "dev-1", constant.RecordUser, mustJSON(t, want)).
					Return(nil).
					Once()
			},
			want: &model.User{TelegramUserID: 123, FirstName: "Ann"},
		},
		{
			name:   "legacy id purges the record instead of writing",
			fields: fields{storageRepo: storagemocks.NewStorageRepository(t)},
			args: args{
				incoming: &model.User{TelegramUserID: constant.LegacyIDThreshold + 1},
				source:   identity.SourceServer,
			},
			mockCall: func(t *testing.T, f fields) {
				f.storageRepo.
					On("Delete", mock.Anything, "dev-1", constant.RecordUser).
					Return(nil).
					Once()
			},
			want: nil,
		},
		{
			name:   "nil incoming reads through to the cache",
			fields: fields{storageRepo: storagemocks.NewStorageRepository(t)},
			args: args{
				incoming: nil,
				source:   identity.SourceServer,
			},
			mockCall: func(t *testing.T, f fields) {
				cached := &model.User{TelegramUserID: 42}
				f.storageRepo.
					On("Get", mock.Anything, "dev-1", constant.RecordUser).
					Return(mustJSON(t, cached), nil).
					Once()
			},
			want: &model.User{TelegramUserID: 42},
		},
		{
			name:   "error: persist failure surfaces",
			fields: fields{storageRepo: storagemocks.NewStorageRepository(t)},
			args: args{
				incoming: &model.User{TelegramUserID: 123},
				source:   identity.SourceServer,
			},
			mockCall: func(t *testing.T, f fields) {
				f.storageRepo.
					On("Set", mock.Anything, "dev-1", constant.RecordUser, mock.AnythingOfType("string")).
					Return(errors.New("redis down")).
					Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(t, tt.fields)
			}
			cache := identity.NewCache(tt.fields.storageRepo)

			got, err := cache.Merge(context.Background(), "dev-1", tt.args.incoming, tt.args.source)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Merge() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Merge() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCache_Clear(t *testing.T) {
	storageRepo := storagemocks.NewStorageRepository(t)
	storageRepo.
		On("Delete", mock.Anything, "dev-1", constant.RecordUser).
		Return(nil).
		Once()

	cache := identity.NewCache(storageRepo)
	if err := cache.Clear(context.Background(), "dev-1"); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
}
