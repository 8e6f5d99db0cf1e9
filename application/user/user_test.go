package user_test

import (
	"context"
	"testing"

	"github.com/pmyge/humo-tezkor-frontend/application/identity"
	appuser "github.com/pmyge/humo-tezkor-frontend/application/user"
	"github.com/pmyge/humo-tezkor-frontend/constant"
	cachemocks "github.com/pmyge/humo-tezkor-frontend/mocks/application/identity"
	apimocks "github.com/pmyge/humo-tezkor-frontend/mocks/thirdparty/storeapi"
	"github.com/pmyge/humo-tezkor-frontend/model"
	cerr "github.com/pmyge/humo-tezkor-frontend/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestProfileApp_Fetch(t *testing.T) {
	type fields struct {
		api   *apimocks.Client
		cache *cachemocks.Cache
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		want     *model.User
		wantErr  bool
	}{
		{
			name:   "success: server record replaces the cache",
			fields: fields{api: apimocks.NewClient(t), cache: cachemocks.NewCache(t)},
			mockCall: func(f fields) {
				server := &model.User{TelegramUserID: 123, FirstName: "Ann", PhoneNumber: "998901234567"}
				f.api.
					On("GetUserInfo", mock.Anything, int64(123)).
					Return(server, nil).
					Once()
				f.cache.
					On("Merge", mock.Anything, "dev-1", server, identity.SourceServer).
					Return(server, nil).
					Once()
			},
			want: &model.User{TelegramUserID: 123, FirstName: "Ann", PhoneNumber: "998901234567"},
		},
		{
			name:   "success: unknown user leaves the cache alone",
			fields: fields{api: apimocks.NewClient(t), cache: cachemocks.NewCache(t)},
			mockCall: func(f fields) {
				f.api.
					On("GetUserInfo", mock.Anything, int64(123)).
					Return(nil, nil).
					Once()
			},
			want: nil,
		},
		{
			name:   "error: transport failure surfaces",
			fields: fields{api: apimocks.NewClient(t), cache: cachemocks.NewCache(t)},
			mockCall: func(f fields) {
				f.api.
					On("GetUserInfo", mock.Anything, int64(123)).
					Return(nil, cerr.SetCustomError(constant.ErrTimeout)).
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
			app := appuser.NewProfileApp(tt.fields.api, tt.fields.cache)

			got, err := app.Fetch(context.Background(), "dev-1", 123)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Fetch() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("Fetch() = %+v, want %+v", got, tt.want)
			}
			if got != nil && got.TelegramUserID != tt.want.TelegramUserID {
				t.Fatalf("Fetch() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProfileApp_RegisterPhone(t *testing.T) {
	type fields struct {
		api   *apimocks.Client
		cache *cachemocks.Cache
	}
	type args struct {
		tg  *model.TelegramUser
		req *model.RegisterPhoneRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errType  constant.ErrorType
	}{
		{
			name:   "success: national number gets the fixed prefix",
			fields: fields{api: apimocks.NewClient(t), cache: cachemocks.NewCache(t)},
			args: args{
				tg:  &model.TelegramUser{ID: 123, FirstName: "Ann", Username: "ann"},
				req: &model.RegisterPhoneRequest{PhoneNumber: "901234567"},
			},
			mockCall: func(f fields) {
				registered := &model.User{TelegramUserID: 123, PhoneNumber: "+998901234567"}
				f.api.
					On("RegisterPhone", mock.Anything, &model.PhoneVerifyRequest{
						TelegramUserID: 123,
						PhoneNumber:    "+998901234567",
						FirstName:      "Ann",
						Username:       "ann",
					}).
					Return(registered, nil).
					Once()
				f.cache.
					On("Merge", mock.Anything, "dev-1", registered, identity.SourceServer).
					Return(registered, nil).
					Once()
			},
		},
		{
			name:   "error: non numeric number fails validation before any request",
			fields: fields{api: apimocks.NewClient(t), cache: cachemocks.NewCache(t)},
			args: args{
				req: &model.RegisterPhoneRequest{PhoneNumber: "90-12-34"},
			},
			wantErr: true,
			errType: constant.ErrValidation,
		},
		{
			name:   "error: empty number fails validation",
			fields: fields{api: apimocks.NewClient(t), cache: cachemocks.NewCache(t)},
			args: args{
				req: &model.RegisterPhoneRequest{PhoneNumber: ""},
			},
			wantErr: true,
			errType: constant.ErrValidation,
		},
		{
			name:   "error: server rejection surfaces",
			fields: fields{api: apimocks.NewClient(t), cache: cachemocks.NewCache(t)},
			args: args{
				req: &model.RegisterPhoneRequest{PhoneNumber: "901234567"},
			},
			mockCall: func(f fields) {
				f.api.
					On("RegisterPhone", mock.Anything, mock.Anything).
					Return(nil, cerr.SetCustomError(constant.ErrServerRejected)).
					Once()
			},
			wantErr: true,
			errType: constant.ErrServerRejected,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewProfileApp(tt.fields.api, tt.fields.cache)

			_, err := app.RegisterPhone(context.Background(), "dev-1", 123, tt.args.tg, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RegisterPhone() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !cerr.IsType(err, tt.errType) {
				t.Fatalf("error = %v, want type %v", err, tt.errType)
			}
		})
	}
}

func TestProfileApp_ChangeLanguage(t *testing.T) {
	t.Run("success: server then local cache merge", func(t *testing.T) {
		api := apimocks.NewClient(t)
		cache := cachemocks.NewCache(t)
		api.
			On("ChangeLanguage", mock.Anything, int64(123), "ru").
			Return(nil).
			Once()
		cache.
			On("Merge", mock.Anything, "dev-1", &model.User{Language: "ru"}, identity.SourceLocal).
			Return(&model.User{TelegramUserID: 123, Language: "ru"}, nil).
			Once()

		app := appuser.NewProfileApp(api, cache)
		if err := app.ChangeLanguage(context.Background(), "dev-1", 123, "ru"); err != nil {
			t.Fatalf("ChangeLanguage() error = %v", err)
		}
	})

	t.Run("error: unsupported language", func(t *testing.T) {
		app := appuser.NewProfileApp(apimocks.NewClient(t), cachemocks.NewCache(t))
		err := app.ChangeLanguage(context.Background(), "dev-1", 123, "en")
		if !cerr.IsType(err, constant.ErrValidation) {
			t.Fatalf("error = %v, want ErrValidation", err)
		}
	})
}

func TestProfileApp_SyncTelegramName(t *testing.T) {
	server := &model.User{TelegramUserID: 123, FirstName: "Old", PhoneNumber: "998901234567"}

	t.Run("no drift is a no-op", func(t *testing.T) {
		app := appuser.NewProfileApp(apimocks.NewClient(t), cachemocks.NewCache(t))
		got, err := app.SyncTelegramName(context.Background(), "dev-1", 123,
			&model.TelegramUser{ID: 123, FirstName: "Old"}, server)
		if err != nil || got != server {
			t.Fatalf("SyncTelegramName() = (%+v, %v), want server record unchanged", got, err)
		}
	})

	t.Run("drifted name is pushed and cached", func(t *testing.T) {
		api := apimocks.NewClient(t)
		cache := cachemocks.NewCache(t)
		updated := &model.User{TelegramUserID: 123, FirstName: "New", PhoneNumber: "998901234567"}
		api.
			On("UpdateUser", mock.Anything, int64(123), &model.UpdateProfileRequest{FirstName: "New"}).
			Return(updated, nil).
			Once()
		cache.
			On("Merge", mock.Anything, "dev-1", updated, identity.SourceServer).
			Return(updated, nil).
			Once()

		app := appuser.NewProfileApp(api, cache)
		got, err := app.SyncTelegramName(context.Background(), "dev-1", 123,
			&model.TelegramUser{ID: 123, FirstName: "New"}, server)
		if err != nil || got == nil || got.FirstName != "New" {
			t.Fatalf("SyncTelegramName() = (%+v, %v)", got, err)
		}
	})

	t.Run("push failure keeps the fetched record", func(t *testing.T) {
		api := apimocks.NewClient(t)
		api.
			On("UpdateUser", mock.Anything, int64(123), mock.Anything).
			Return(nil, cerr.SetCustomError(constant.ErrNetwork)).
			Once()

		app := appuser.NewProfileApp(api, cachemocks.NewCache(t))
		got, err := app.SyncTelegramName(context.Background(), "dev-1", 123,
			&model.TelegramUser{ID: 123, FirstName: "New"}, server)
		if err != nil || got != server {
			t.Fatalf("SyncTelegramName() = (%+v, %v), want best-effort fallback", got, err)
		}
	})
}

func TestProfileApp_UpdateProfile(t *testing.T) {
	t.Run("error: empty edit", func(t *testing.T) {
		app := appuser.NewProfileApp(apimocks.NewClient(t), cachemocks.NewCache(t))
		_, err := app.UpdateProfile(context.Background(), "dev-1", 123, &model.UpdateProfileRequest{})
		if !cerr.IsType(err, constant.ErrValidation) {
			t.Fatalf("error = %v, want ErrValidation", err)
		}
	})

	t.Run("success: echo is cached", func(t *testing.T) {
		api := apimocks.NewClient(t)
		cache := cachemocks.NewCache(t)
		req := &model.UpdateProfileRequest{FirstName: "Anna"}
		updated := &model.User{TelegramUserID: 123, FirstName: "Anna"}
		api.
			On("UpdateUser", mock.Anything, int64(123), req).
			Return(updated, nil).
			Once()
		cache.
			On("Merge", mock.Anything, "dev-1", updated, identity.SourceServer).
			Return(updated, nil).
			Once()

		app := appuser.NewProfileApp(api, cache)
		got, err := app.UpdateProfile(context.Background(), "dev-1", 123, req)
		if err != nil || got == nil || got.FirstName != "Anna" {
			t.Fatalf("UpdateProfile() = (%+v, %v)", got, err)
		}
	})
}

func TestProfileApp_Logout(t *testing.T) {
	cache := cachemocks.NewCache(t)
	cache.
		On("Clear", mock.Anything, "dev-1").
		Return(nil).
		Once()

	app := appuser.NewProfileApp(apimocks.NewClient(t), cache)
	if err := app.Logout(context.Background(), "dev-1"); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
}
