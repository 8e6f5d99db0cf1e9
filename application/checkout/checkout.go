package checkout

import (
	"context"

	cartapp "github.com/pmyge/humo-tezkor-frontend/application/cart"
	"github.com/pmyge/humo-tezkor-frontend/constant"
	"github.com/pmyge/humo-tezkor-frontend/model"
	"github.com/pmyge/humo-tezkor-frontend/thirdparty/storeapi"
	"github.com/pmyge/humo-tezkor-frontend/utils/errors"
	"github.com/pmyge/humo-tezkor-frontend/utils/logger"
	"go.uber.org/zap"
)

// Sequencer drives order submission through its prerequisites: a registered
// phone, then a chosen delivery location, then exactly one order-create
// request. Phone always gates location. A nil response with a nil error means
// a prerequisite is pending; State tells which.
//
// One sequencer belongs to one session and relies on the session's
// serialization of UI events.
type Sequencer interface {
	// Submit starts (or restarts) an order submission for the current cart.
	Submit(ctx context.Context, user *model.User, location *model.DeliveryLocation) (*model.CreateOrderResponse, error)
	// PhoneRegistered advances a pending submission after phone registration.
	PhoneRegistered(ctx context.Context, user *model.User, location *model.DeliveryLocation) (*model.CreateOrderResponse, error)
	// LocationChosen advances a pending submission after location selection.
	LocationChosen(ctx context.Context, user *model.User, location *model.DeliveryLocation) (*model.CreateOrderResponse, error)
	// Cancel abandons a pending submission; the cart is untouched.
	Cancel()
	State() constant.CheckoutState
}

type sequencerImpl struct {
	api  storeapi.Client
	cart *cartapp.Cart

	state constant.CheckoutState
	// pending records that a submission was requested and is waiting on a
	// prerequisite. It lives here, on the sequencer state, never as an
	// ambient flag shared across the app.
	pending bool
}

func NewSequencer(api storeapi.Client, cart *cartapp.Cart) Sequencer {
	return &sequencerImpl{
		api:   api,
		cart:  cart,
		state: constant.CheckoutIdle,
	}
}

func (s *sequencerImpl) State() constant.CheckoutState {
	return s.state
}

func (s *sequencerImpl) Submit(ctx context.Context, user *model.User, location *model.DeliveryLocation) (*model.CreateOrderResponse, error) {
	if s.state == constant.CheckoutSubmitting {
		// one submission at a time; repeated taps are ignored
		return nil, nil
	}
	if s.cart.IsEmpty() {
		return nil, errors.SetCustomError(constant.ErrEmptyCart)
	}
	if !usableIdentity(user) {
		return nil, errors.SetCustomError(constant.ErrIdentityUnresolved)
	}

	if !user.HasPhone() {
		s.state = constant.CheckoutAwaitingPhone
		s.pending = true
		return nil, nil
	}
	if location == nil {
		s.state = constant.CheckoutAwaitingLocation
		s.pending = true
		return nil, nil
	}
	return s.submit(ctx, user, location)
}

func (s *sequencerImpl) PhoneRegistered(ctx context.Context, user *model.User, location *model.DeliveryLocation) (*model.CreateOrderResponse, error) {
	if s.state != constant.CheckoutAwaitingPhone || !s.pending {
		return nil, nil
	}
	if !usableIdentity(user) {
		s.reset()
		return nil, errors.SetCustomError(constant.ErrIdentityUnresolved)
	}
	if location == nil {
		s.state = constant.CheckoutAwaitingLocation
		return nil, nil
	}
	return s.submit(ctx, user, location)
}

func (s *sequencerImpl) LocationChosen(ctx context.Context, user *model.User, location *model.DeliveryLocation) (*model.CreateOrderResponse, error) {
	if s.state != constant.CheckoutAwaitingLocation || !s.pending {
		return nil, nil
	}
	if location == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if !usableIdentity(user) {
		s.reset()
		return nil, errors.SetCustomError(constant.ErrIdentityUnresolved)
	}
	return s.submit(ctx, user, location)
}

// Cancel handles the user closing the phone drawer or location picker while
// a submission is pending.
func (s *sequencerImpl) Cancel() {
	if s.state == constant.CheckoutAwaitingPhone || s.state == constant.CheckoutAwaitingLocation {
		s.reset()
	}
}

// submit issues the single order-create request. On success the cart is
// cleared; on failure it is preserved so the user can retry. Either way the
// sequencer returns to idle.
func (s *sequencerImpl) submit(ctx context.Context, user *model.User, location *model.DeliveryLocation) (*model.CreateOrderResponse, error) {
	s.state = constant.CheckoutSubmitting
	s.pending = false
	defer func() { s.state = constant.CheckoutIdle }()

	req := &model.CreateOrderRequest{
		TelegramUserID:  user.TelegramUserID,
		Items:           s.cart.Items(),
		Latitude:        location.Latitude,
		Longitude:       location.Longitude,
		DeliveryAddress: location.Address,
		PhoneNumber:     user.PhoneNumber,
	}

	resp, err := s.api.CreateOrder(ctx, req)
	if err != nil {
		logger.Error("[Checkout] order create", zap.String("error", err.Error()),
			zap.Int64("telegram_user_id", user.TelegramUserID))
		return nil, err
	}

	s.cart.Clear()
	logger.Info("[Checkout] order created", zap.Uint64("order_id", resp.ID),
		zap.Int64("telegram_user_id", user.TelegramUserID))
	return resp, nil
}

func (s *sequencerImpl) reset() {
	s.state = constant.CheckoutIdle
	s.pending = false
}

func usableIdentity(user *model.User) bool {
	return user != nil && user.TelegramUserID > 0 && user.TelegramUserID < constant.LegacyIDThreshold
}
