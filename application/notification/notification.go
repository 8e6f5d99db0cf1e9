package notification

import (
	"context"

	"github.com/pmyge/humo-tezkor-frontend/model"
	"github.com/pmyge/humo-tezkor-frontend/thirdparty/storeapi"
	"github.com/pmyge/humo-tezkor-frontend/utils/logger"
	"go.uber.org/zap"
)

type NotificationApp interface {
	List(ctx context.Context, telegramUserID int64) ([]model.Notification, error)
	MarkRead(ctx context.Context, telegramUserID int64, notificationID uint64) error
}

type notificationAppImpl struct {
	api storeapi.Client
}

func NewNotificationApp(api storeapi.Client) NotificationApp {
	return &notificationAppImpl{api: api}
}

func (s *notificationAppImpl) List(ctx context.Context, telegramUserID int64) ([]model.Notification, error) {
	notifications, err := s.api.GetNotifications(ctx, telegramUserID)
	if err != nil {
		logger.Error("[Notifications] list", zap.String("error", err.Error()),
			zap.Int64("telegram_user_id", telegramUserID))
		return nil, err
	}
	return notifications, nil
}

func (s *notificationAppImpl) MarkRead(ctx context.Context, telegramUserID int64, notificationID uint64) error {
	if err := s.api.MarkNotificationRead(ctx, telegramUserID, notificationID); err != nil {
		logger.Error("[Notifications] mark read", zap.String("error", err.Error()),
			zap.Uint64("notification_id", notificationID))
		return err
	}
	return nil
}
