package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pmyge/humo-tezkor-frontend/application/order"
	"github.com/pmyge/humo-tezkor-frontend/constant"
	"github.com/pmyge/humo-tezkor-frontend/model"
	"github.com/pmyge/humo-tezkor-frontend/utils/errors"
	validatorx "github.com/pmyge/humo-tezkor-frontend/utils/validator"
)

// ListFavorites handler
// @Summary Favorite product ids for this device
// @Tags Favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} integer
// @Router /favorites [get]
func (s *RestHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	ids, err := s.FavoritesApp.List(r.Context(), sess.DeviceID)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}
	writeSuccess(w, ids)
}

// ToggleFavorite handler
// @Summary Toggle a product in the favorite set
// @Tags Favorites
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} transport.apiResponse
// @Router /favorites/{id}/toggle [post]
func (s *RestHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	productID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	added, err := s.FavoritesApp.Toggle(r.Context(), sess.DeviceID, productID)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}
	writeSuccess(w, map[string]bool{"favorite": added})
}

// GetLocation handler
// @Summary Stored delivery location
// @Tags Location
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.DeliveryLocation
// @Router /location [get]
func (s *RestHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	location, err := s.PrefsApp.Location(r.Context(), sess.DeviceID)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}
	writeSuccess(w, location)
}

// SetLocation handler
// @Summary Store the delivery location outside checkout
// @Tags Location
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.SetLocationRequest true "Delivery location"
// @Success 200 {object} model.DeliveryLocation
// @Router /location [put]
func (s *RestHandler) SetLocation(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
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

	location := &model.DeliveryLocation{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Address:   req.Address,
	}
	if err := s.PrefsApp.SetLocation(r.Context(), sess.DeviceID, location); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}
	writeSuccess(w, location)
}

// SetTheme handler
// @Summary Persist the UI theme
// @Tags Preferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} transport.apiResponse
// @Router /theme [put]
func (s *RestHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req struct {
		Theme string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if req.Theme != constant.ThemeLight && req.Theme != constant.ThemeDark {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}
	if err := s.PrefsApp.SetTheme(r.Context(), sess.DeviceID, req.Theme); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}
	writeSuccess(w, nil)
}

// ListOrders handler
// @Summary Order listings
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param tab query string false "active, confirmed or all"
// @Success 200 {object} model.OrderList
// @Router /orders [get]
func (s *RestHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.identified(w, r)
	if !ok {
		return
	}
	tab := order.Tab(r.URL.Query().Get("tab"))
	list, err := s.OrderApp.List(r.Context(), sess.TelegramUserID, tab)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, list)
}

// ListNotifications handler
// @Summary User notifications
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Notification
// @Router /notifications [get]
func (s *RestHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.identified(w, r)
	if !ok {
		return
	}
	notifications, err := s.NotificationApp.List(r.Context(), sess.TelegramUserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, notifications)
}

// MarkNotificationRead handler
// @Summary Mark a notification as read
// @Tags Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.MarkNotificationReadRequest true "Notification id"
// @Success 200 {object} transport.apiResponse
// @Router /notifications/mark-read [post]
func (s *RestHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.identified(w, r)
	if !ok {
		return
	}

	var req model.MarkNotificationReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}

	if err := s.NotificationApp.MarkRead(r.Context(), sess.TelegramUserID, req.NotificationID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// OpenChat handler
// @Summary Enter the support chat view, starting the message poller
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} transport.apiResponse
// @Router /chat/open [post]
func (s *RestHandler) OpenChat(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.identified(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	sess.Chat().Start()
	writeSuccess(w, nil)
}

// CloseChat handler
// @Summary Leave the support chat view, stopping the poller
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} transport.apiResponse
// @Router /chat/close [post]
func (s *RestHandler) CloseChat(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.identified(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	sess.Chat().Stop()
	writeSuccess(w, nil)
}

// ChatMessages handler
// @Summary Most recently polled chat history
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ChatHistory
// @Router /chat/messages [get]
func (s *RestHandler) ChatMessages(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.identified(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	writeSuccess(w, model.ChatHistory{Messages: sess.Chat().Messages()})
}

// SendChatMessage handler
// @Summary Send a support chat message
// @Tags Chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.SendChatMessageRequest true "Message"
// @Success 200 {object} model.ChatMessage
// @Router /chat/messages [post]
func (s *RestHandler) SendChatMessage(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.identified(w, r)
	if !ok {
		return
	}

	var req model.SendChatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}

	sess.Lock()
	poller := sess.Chat()
	sess.Unlock()

	sent, err := poller.Send(r.Context(), req.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, sent)
}
