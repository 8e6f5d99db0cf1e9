package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrNetwork
	ErrTimeout
	ErrServerRejected
	ErrIdentityUnresolved
	ErrValidation
	ErrEmptyCart
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "error internal",
	ErrNotFound:           "data not found",
	ErrInvalidRequest:     "invalid request",
	ErrUnauthorize:        "unauthorize request",
	ErrNetwork:            "request could not complete, please retry",
	ErrTimeout:            "request timed out",
	ErrServerRejected:     "request rejected by server",
	ErrIdentityUnresolved: "no usable user identity, reopen the app from Telegram",
	ErrValidation:         "validation failed",
	ErrEmptyCart:          "cart is empty",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusBadRequest,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthorize:        http.StatusUnauthorized,
	ErrNetwork:            http.StatusBadGateway,
	ErrTimeout:            http.StatusGatewayTimeout,
	ErrServerRejected:     http.StatusBadGateway,
	ErrIdentityUnresolved: http.StatusUnauthorized,
	ErrValidation:         http.StatusBadRequest,
	ErrEmptyCart:          http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNotFound:           "0002",
	ErrInvalidRequest:     "0003",
	ErrUnauthorize:        "0004",
	ErrNetwork:            "0005",
	ErrTimeout:            "0006",
	ErrServerRejected:     "0007",
	ErrIdentityUnresolved: "0008",
	ErrValidation:         "0009",
	ErrEmptyCart:          "0010",
}
