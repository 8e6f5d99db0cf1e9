package model

import "time"

type Notification struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

type MarkNotificationReadRequest struct {
	NotificationID uint64 `json:"notification_id" validate:"required"`
}
