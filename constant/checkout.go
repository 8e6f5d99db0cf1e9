package constant

type CheckoutState int

const (
	CheckoutIdle CheckoutState = iota
	CheckoutAwaitingPhone
	CheckoutAwaitingLocation
	CheckoutSubmitting
)

var checkoutStateName = map[CheckoutState]string{
	CheckoutIdle:             "idle",
	CheckoutAwaitingPhone:    "awaiting_phone",
	CheckoutAwaitingLocation: "awaiting_location",
	CheckoutSubmitting:       "submitting",
}

func (s CheckoutState) String() string {
	return checkoutStateName[s]
}
