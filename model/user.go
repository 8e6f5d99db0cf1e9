package model

// User mirrors the store API user record. TelegramUserID is the canonical
// identifier; anything at or above constant.LegacyIDThreshold is a corrupted
// placeholder and must not survive a cache write.
type User struct {
	TelegramUserID int64  `json:"telegram_user_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Username       string `json:"username"`
	PhoneNumber    string `json:"phone_number"`
	Language       string `json:"language"`
}

// HasPhone reports whether the record carries a usable phone number. The
// server uses "-" as an empty marker.
func (u *User) HasPhone() bool {
	return u != nil && u.PhoneNumber != "" && u.PhoneNumber != "-"
}

// TelegramUser is the user object embedded in the host runtime init payload.
type TelegramUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// PhoneVerifyRequest is the body of POST /users/phone-verify/.
type PhoneVerifyRequest struct {
	TelegramUserID int64  `json:"telegram_user_id"`
	PhoneNumber    string `json:"phone_number"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Username       string `json:"username"`
}

// RegisterPhoneRequest is the gateway request for phone registration.
// The number is the national part; the +998 prefix is fixed.
type RegisterPhoneRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,min=3,phone_digits"`
}

// UpdateProfileRequest carries a field-level profile edit. Empty fields are
// left untouched.
type UpdateProfileRequest struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

type ChangeLanguageRequest struct {
	Language string `json:"language" validate:"required,oneof=uz ru"`
}
