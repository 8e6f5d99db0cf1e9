package transport

import (
	"encoding/json"
	"net/http"

	"github.com/pmyge/humo-tezkor-frontend/constant"
	"github.com/pmyge/humo-tezkor-frontend/model"
	"github.com/pmyge/humo-tezkor-frontend/utils/errors"
	validatorx "github.com/pmyge/humo-tezkor-frontend/utils/validator"
)

// GetCart handler
// @Summary Current cart contents and running total
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.CartResponse
// @Router /cart [get]
func (s *RestHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	writeSuccess(w, model.CartResponse{Lines: sess.Cart.Lines(), Total: sess.Cart.Total()})
}

// AddToCart handler
// @Summary Add a product to the cart
// @Description Repeated adds of the same product sum quantity into one line
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.AddToCartRequest true "Product snapshot"
// @Success 200 {object} model.CartResponse
// @Router /cart/items [post]
func (s *RestHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req model.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}

	sess.Lock()
	defer sess.Unlock()

	sess.Cart.Add(model.CartLine{
		ProductID: req.ProductID,
		Name:      req.Name,
		NameRu:    req.NameRu,
		Price:     req.Price,
		Image:     req.Image,
	}, req.Quantity)

	writeSuccess(w, model.CartResponse{Lines: sess.Cart.Lines(), Total: sess.Cart.Total()})
}

// CheckoutStatus handler
// @Summary Current checkout state
// @Tags Checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.CheckoutStatusResponse
// @Router /checkout [get]
func (s *RestHandler) CheckoutStatus(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	writeSuccess(w, model.CheckoutStatusResponse{State: sess.Checkout.State().String()})
}

// SubmitOrder handler
// @Summary Request order submission
// @Description Starts the prerequisite sequence; the response state tells the webview whether to open the phone drawer, the location picker, or show the confirmation
// @Tags Checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.CheckoutStatusResponse
// @Failure 400 {object} transport.apiResponse
// @Router /checkout/submit [post]
func (s *RestHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.identified(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	location, err := s.PrefsApp.Location(r.Context(), sess.DeviceID)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	order, err := sess.Checkout.Submit(r.Context(), sess.User, location)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, model.CheckoutStatusResponse{State: sess.Checkout.State().String(), Order: order})
}

// CheckoutPhone handler
// @Summary Register a phone number during checkout
// @Description Registers the phone with the server and resumes a pending submission
// @Tags Checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.RegisterPhoneRequest true "National phone number"
// @Success 200 {object} model.CheckoutStatusResponse
// @Router /checkout/phone [post]
func (s *RestHandler) CheckoutPhone(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.identified(w, r)
	if !ok {
		return
	}

	var req model.RegisterPhoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	sess.Lock()
	defer sess.Unlock()

	user, err := s.ProfileApp.RegisterPhone(r.Context(), sess.DeviceID, sess.TelegramUserID, sess.TelegramUser, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	sess.User = user

	location, err := s.PrefsApp.Location(r.Context(), sess.DeviceID)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	order, err := sess.Checkout.PhoneRegistered(r.Context(), user, location)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, model.CheckoutStatusResponse{State: sess.Checkout.State().String(), Order: order})
}

// CheckoutLocation handler
// @Summary Choose a delivery location during checkout
// @Description Persists the location (replace-only) and resumes a pending submission
// @Tags Checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.SetLocationRequest true "Delivery location"
// @Success 200 {object} model.CheckoutStatusResponse
// @Router /checkout/location [post]
func (s *RestHandler) CheckoutLocation(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.identified(w, r)
	if !ok {
		return
	}

	var req model.SetLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}

	sess.Lock()
	defer sess.Unlock()

	location := &model.DeliveryLocation{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Address:   req.Address,
	}
	if err := s.PrefsApp.SetLocation(r.Context(), sess.DeviceID, location); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	order, err := sess.Checkout.LocationChosen(r.Context(), sess.User, location)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, model.CheckoutStatusResponse{State: sess.Checkout.State().String(), Order: order})
}

// CheckoutCancel handler
// @Summary Cancel a pending checkout prerequisite
// @Description Closing the phone drawer or location picker abandons the pending submission; the cart is untouched
// @Tags Checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.CheckoutStatusResponse
// @Router /checkout/cancel [post]
func (s *RestHandler) CheckoutCancel(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	sess.Checkout.Cancel()
	writeSuccess(w, model.CheckoutStatusResponse{State: sess.Checkout.State().String()})
}
