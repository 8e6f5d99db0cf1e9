package model

import "time"

type ChatMessage struct {
	ID          uint64    `json:"id"`
	Message     string    `json:"message"`
	IsFromAdmin bool      `json:"is_from_admin"`
	CreatedAt   time.Time `json:"created_at"`
}

type ChatHistory struct {
	Messages []ChatMessage `json:"messages"`
}

type SendChatMessageRequest struct {
	Message string `json:"message" validate:"required"`
}
