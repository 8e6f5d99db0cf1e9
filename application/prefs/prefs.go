package prefs

import (
	"context"
	"encoding/json"

	"github.com/pmyge/humo-tezkor-frontend/constant"
	"github.com/pmyge/humo-tezkor-frontend/model"
	"github.com/pmyge/humo-tezkor-frontend/repository/storage"
	"github.com/pmyge/humo-tezkor-frontend/utils/logger"
	"go.uber.org/zap"
)

// PrefsApp holds the remaining device-scoped records: the delivery location
// (replace-only), UI theme and language. Each is an independent
// last-write-wins entry.
type PrefsApp interface {
	Location(ctx context.Context, deviceID string) (*model.DeliveryLocation, error)
	SetLocation(ctx context.Context, deviceID string, loc *model.DeliveryLocation) error
	Theme(ctx context.Context, deviceID string) (string, error)
	SetTheme(ctx context.Context, deviceID, theme string) error
	Language(ctx context.Context, deviceID string) (string, error)
	SetLanguage(ctx context.Context, deviceID, language string) error
}

type prefsAppImpl struct {
	storageRepo storage.Repository
}

func NewPrefsApp(storageRepo storage.Repository) PrefsApp {
	return &prefsAppImpl{storageRepo: storageRepo}
}

// Location returns the stored delivery point, nil when none was chosen yet.
// A malformed record is a miss.
func (s *prefsAppImpl) Location(ctx context.Context, deviceID string) (*model.DeliveryLocation, error) {
	raw, err := s.storageRepo.Get(ctx, deviceID, constant.RecordLocation)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	var loc model.DeliveryLocation
	if err := json.Unmarshal([]byte(raw), &loc); err != nil {
		return nil, nil
	}
	return &loc, nil
}

// SetLocation overwrites the whole record; there are no partial updates.
func (s *prefsAppImpl) SetLocation(ctx context.Context, deviceID string, loc *model.DeliveryLocation) error {
	encoded, err := json.Marshal(loc)
	if err != nil {
		logger.Error("[Prefs] marshal location", zap.String("error", err.Error()))
		return err
	}
	return s.storageRepo.Set(ctx, deviceID, constant.RecordLocation, string(encoded))
}

func (s *prefsAppImpl) Theme(ctx context.Context, deviceID string) (string, error) {
	theme, err := s.storageRepo.Get(ctx, deviceID, constant.RecordTheme)
	if err != nil {
		return "", err
	}
	if theme == "" {
		return constant.ThemeLight, nil
	}
	return theme, nil
}

func (s *prefsAppImpl) SetTheme(ctx context.Context, deviceID, theme string) error {
	return s.storageRepo.Set(ctx, deviceID, constant.RecordTheme, theme)
}

func (s *prefsAppImpl) Language(ctx context.Context, deviceID string) (string, error) {
	language, err := s.storageRepo.Get(ctx, deviceID, constant.RecordLanguage)
	if err != nil {
		return "", err
	}
	if language == "" {
		return constant.DefaultLanguage, nil
	}
	return language, nil
}

func (s *prefsAppImpl) SetLanguage(ctx context.Context, deviceID, language string) error {
	return s.storageRepo.Set(ctx, deviceID, constant.RecordLanguage, language)
}
