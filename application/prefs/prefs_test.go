package prefs_test

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/pmyge/humo-tezkor-frontend/application/prefs"
	"github.com/pmyge/humo-tezkor-frontend/constant"
	storagemocks "github.com/pmyge/humo-tezkor-frontend/mocks/repository/storage"
	"github.com/pmyge/humo-tezkor-frontend/model"
	"github.com/stretchr/testify/mock"
)

func TestPrefsApp_Location(t *testing.T) {
	loc := &model.DeliveryLocation{Latitude: 41.311, Longitude: 69.279, Address: "Tashkent"}
	encoded, _ := json.Marshal(loc)

	type fields struct {
		storageRepo *storagemocks.StorageRepository
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		want     *model.DeliveryLocation
	}{
		{
			name:   "success: stored location",
			fields: fields{storageRepo: storagemocks.NewStorageRepository(t)},
			mockCall: func(f fields) {
				f.storageRepo.
					On("Get", mock.Anything, "dev-1", constant.RecordLocation).
					Return(string(encoded), nil).
					Once()
			},
			want: loc,
		},
		{
			name:   "success: none chosen yet",
			fields: fields{storageRepo: storagemocks.NewStorageRepository(t)},
			mockCall: func(f fields) {
				f.storageRepo.
					On("Get", mock.Anything, "dev-1", constant.RecordLocation).
					Return("", nil).
					Once()
			},
			want: nil,
		},
		{
			name:   "success: malformed record is a miss",
			fields: fields{storageRepo: storagemocks.NewStorageRepository(t)},
			mockCall: func(f fields) {
				f.storageRepo.
					On("Get", mock.Anything, "dev-1", constant.RecordLocation).
					Return("{broken", nil).
					Once()
			},
			want: nil,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := prefs.NewPrefsApp(tt.fields.storageRepo)

			got, err := app.Location(context.Background(), "dev-1")
			if err != nil {
				t.Fatalf("Location() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Location() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPrefsApp_SetLocation(t *testing.T) {
	loc := &model.DeliveryLocation{Latitude: 41.311, Longitude: 69.279, Address: "Tashkent"}
	encoded, _ := json.Marshal(loc)

	storageRepo := storagemocks.NewStorageRepository(t)
	storageRepo.
		On("Set", mock.Anything, "dev-1", constant.RecordLocation, string(encoded)).
		Return(nil).
		Once()

	app := prefs.NewPrefsApp(storageRepo)
	if err := app.SetLocation(context.Background(), "dev-1", loc); err != nil {
		t.Fatalf("SetLocation() error = %v", err)
	}
}

func TestPrefsApp_ThemeDefaultsToLight(t *testing.T) {
	storageRepo := storagemocks.NewStorageRepository(t)
	storageRepo.
		On("Get", mock.Anything, "dev-1", constant.RecordTheme).
		Return("", nil).
		Once()

	app := prefs.NewPrefsApp(storageRepo)
	theme, err := app.Theme(context.Background(), "dev-1")
	if err != nil || theme != constant.ThemeLight {
		t.Fatalf("Theme() = (%q, %v), want light", theme, err)
	}
}

func TestPrefsApp_LanguageDefaultsToUz(t *testing.T) {
	storageRepo := storagemocks.NewStorageRepository(t)
	storageRepo.
		On("Get", mock.Anything, "dev-1", constant.RecordLanguage).
		Return("", nil).
		Once()

	app := prefs.NewPrefsApp(storageRepo)
	language, err := app.Language(context.Background(), "dev-1")
	if err != nil || language != constant.DefaultLanguage {
		t.Fatalf("Language() = (%q, %v), want %q", language, err, constant.DefaultLanguage)
	}
}

func TestPrefsApp_SetTheme(t *testing.T) {
	storageRepo := storagemocks.NewStorageRepository(t)
	storageRepo.
		On("Set", mock.Anything, "dev-1", constant.RecordTheme, constant.ThemeDark).
		Return(nil).
		Once()
	storageRepo.
		On("Get", mock.Anything, "dev-1", constant.RecordTheme).
		Return(constant.ThemeDark, nil).
		Once()

	app := prefs.NewPrefsApp(storageRepo)
	if err := app.SetTheme(context.Background(), "dev-1", constant.ThemeDark); err != nil {
		t.Fatalf("SetTheme() error = %v", err)
	}
	theme, err := app.Theme(context.Background(), "dev-1")
	if err != nil || theme != constant.ThemeDark {
		t.Fatalf("Theme() = (%q, %v), want dark", theme, err)
	}
}
