package transport

import (
	"encoding/json"
	"net/http"

	"github.com/pmyge/humo-tezkor-frontend/constant"
	"github.com/pmyge/humo-tezkor-frontend/model"
	"github.com/pmyge/humo-tezkor-frontend/utils/errors"
	validatorx "github.com/pmyge/humo-tezkor-frontend/utils/validator"
)

// GetProfile handler
// @Summary Current user record
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Router /profile [get]
func (s *RestHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.identified(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	user, err := s.ProfileApp.Fetch(r.Context(), sess.DeviceID, sess.TelegramUserID)
	if err != nil {
		writeError(w, err)
		return
	}
	if user != nil {
		sess.User = user
	} else {
		user = sess.User
	}
	if user == nil {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
		return
	}
	writeSuccess(w, user)
}

// UpdateProfile handler
// @Summary Field-level profile edit
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} model.User
// @Router /profile [patch]
func (s *RestHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.identified(w, r)
	if !ok {
		return
	}

	var req model.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	sess.Lock()
	defer sess.Unlock()

	user, err := s.ProfileApp.UpdateProfile(r.Context(), sess.DeviceID, sess.TelegramUserID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	sess.User = user
	writeSuccess(w, user)
}

// RegisterPhone handler
// @Summary Register a phone number from the profile view
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.RegisterPhoneRequest true "National phone number"
// @Success 200 {object} model.User
// @Router /profile/phone [post]
func (s *RestHandler) RegisterPhone(w http.ResponseWriter, r *http.Request) {
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
	writeSuccess(w, user)
}

// ChangeLanguage handler
// @Summary Switch the UI language
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ChangeLanguageRequest true "uz or ru"
// @Success 200 {object} transport.apiResponse
// @Router /profile/language [patch]
func (s *RestHandler) ChangeLanguage(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req model.ChangeLanguageRequest
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

	// the device preference always persists; the server sync needs a
	// resolved identity
	if err := s.PrefsApp.SetLanguage(r.Context(), sess.DeviceID, req.Language); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}
	if sess.TelegramUserID != 0 {
		if err := s.ProfileApp.ChangeLanguage(r.Context(), sess.DeviceID, sess.TelegramUserID, req.Language); err != nil {
			writeError(w, err)
			return
		}
	}
	writeSuccess(w, nil)
}
