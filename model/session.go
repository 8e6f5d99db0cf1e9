package model

// OpenSessionRequest is posted by the webview when it starts. InitData is the
// raw tgWebAppData query-string supplied by the host runtime; PageURL is the
// full webview URL including query and fragment. DeviceID is the id the
// webview persisted from a previous session, empty on first run.
type OpenSessionRequest struct {
	DeviceID string `json:"device_id"`
	InitData string `json:"init_data"`
	PageURL  string `json:"page_url"`
}

type SessionResponse struct {
	Token          string `json:"token"`
	DeviceID       string `json:"device_id"`
	TelegramUserID int64  `json:"telegram_user_id,omitempty"`
	User           *User  `json:"user,omitempty"`
	Language       string `json:"language"`
	Theme          string `json:"theme"`
}

type CheckoutStatusResponse struct {
	State string               `json:"state"`
	Order *CreateOrderResponse `json:"order,omitempty"`
}
