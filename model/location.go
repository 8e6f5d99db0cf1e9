package model

// DeliveryLocation is the single active delivery point for a device.
// Replace-only: re-picking overwrites the whole record.
type DeliveryLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

type SetLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	Address   string  `json:"address" validate:"required"`
}
