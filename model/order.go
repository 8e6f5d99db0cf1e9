package model

import "time"

type OrderItem struct {
	ProductID uint64 `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest is the body of POST /orders/create/.
type CreateOrderRequest struct {
	TelegramUserID  int64       `json:"telegram_user_id"`
	Items           []OrderItem `json:"items"`
	Latitude        float64     `json:"latitude"`
	Longitude       float64     `json:"longitude"`
	DeliveryAddress string      `json:"delivery_address"`
	PhoneNumber     string      `json:"phone_number"`
}

type CreateOrderResponse struct {
	ID uint64 `json:"id"`
}

type OrderLineItem struct {
	ID            uint64  `json:"id"`
	ProductName   string  `json:"product_name"`
	ProductNameRu string  `json:"product_name_ru"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
}

type Order struct {
	ID          uint64          `json:"id"`
	Status      string          `json:"status"`
	TotalAmount string          `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	Items       []OrderLineItem `json:"items"`
}

type OrderList struct {
	Orders []Order `json:"orders"`
}
