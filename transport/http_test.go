package transport_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	cartapp "github.com/pmyge/humo-tezkor-frontend/application/cart"
	"github.com/pmyge/humo-tezkor-frontend/application/checkout"
	"github.com/pmyge/humo-tezkor-frontend/application/session"
	"github.com/pmyge/humo-tezkor-frontend/constant"
	sessionmocks "github.com/pmyge/humo-tezkor-frontend/mocks/application/session"
	apimocks "github.com/pmyge/humo-tezkor-frontend/mocks/thirdparty/storeapi"
	"github.com/pmyge/humo-tezkor-frontend/model"
	"github.com/pmyge/humo-tezkor-frontend/transport"
	"github.com/pmyge/humo-tezkor-frontend/utils/errors"
	"github.com/stretchr/testify/mock"
)

func liveSession(t *testing.T) *session.Session {
	t.Helper()
	c := cartapp.New()
	return &session.Session{
		DeviceID:       "dev-1",
		TelegramUserID: 123,
		User:           &model.User{TelegramUserID: 123, FirstName: "Ann", PhoneNumber: "998901234567"},
		Cart:           c,
		Checkout:       checkout.NewSequencer(apimocks.NewClient(t), c),
	}
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) (string, json.RawMessage) {
	t.Helper()
	var body struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
	}
	return body.Code, body.Data
}

func TestOpenSessionEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		sessionApp := sessionmocks.NewSessionApp(t)
		sessionApp.
			On("Open", mock.Anything, &model.OpenSessionRequest{DeviceID: "dev-1", InitData: "user=..."}).
			Return(&model.SessionResponse{Token: "tok", DeviceID: "dev-1", TelegramUserID: 123}, nil).
			Once()

		handler := transport.NewTransport(&transport.RestHandler{SessionApp: sessionApp})

		payload, _ := json.Marshal(model.OpenSessionRequest{DeviceID: "dev-1", InitData: "user=..."})
		req := httptest.NewRequest(http.MethodPost, "/session", bytes.NewReader(payload))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
		code, data := decodeResponse(t, rec)
		if code != constant.ErrorTypeCode[constant.Successful] {
			t.Fatalf("code = %s", code)
		}
		var resp model.SessionResponse
		if err := json.Unmarshal(data, &resp); err != nil || resp.Token != "tok" {
			t.Fatalf("data = %s", data)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		handler := transport.NewTransport(&transport.RestHandler{SessionApp: sessionmocks.NewSessionApp(t)})

		req := httptest.NewRequest(http.MethodPost, "/session", bytes.NewReader([]byte("{broken")))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("missing bearer token", func(t *testing.T) {
		handler := transport.NewTransport(&transport.RestHandler{SessionApp: sessionmocks.NewSessionApp(t)})

		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
		code, _ := decodeResponse(t, rec)
		if code != constant.ErrorTypeCode[constant.ErrUnauthorize] {
			t.Fatalf("code = %s", code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		sessionApp := sessionmocks.NewSessionApp(t)
		sessionApp.
			On("ValidateToken", mock.Anything, "bad").
			Return(nil, errors.SetCustomError(constant.ErrUnauthorize)).
			Once()
		handler := transport.NewTransport(&transport.RestHandler{SessionApp: sessionApp})

		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		req.Header.Set("Authorization", "Bearer bad")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("valid token reaches the handler", func(t *testing.T) {
		sess := liveSession(t)
		sess.Cart.Add(model.CartLine{ProductID: 7, Name: "Plov", Price: 35000}, 2)

		sessionApp := sessionmocks.NewSessionApp(t)
		sessionApp.
			On("ValidateToken", mock.Anything, "good").
			Return(sess, nil).
			Once()
		handler := transport.NewTransport(&transport.RestHandler{SessionApp: sessionApp})

		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		req.Header.Set("Authorization", "Bearer good")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
		_, data := decodeResponse(t, rec)
		var cart model.CartResponse
		if err := json.Unmarshal(data, &cart); err != nil {
			t.Fatalf("decode cart: %v", err)
		}
		if len(cart.Lines) != 1 || cart.Total != 70000 {
			t.Fatalf("cart = %+v", cart)
		}
	})
}

func TestAddToCartEndpoint(t *testing.T) {
	sess := liveSession(t)
	sessionApp := sessionmocks.NewSessionApp(t)
	sessionApp.
		On("ValidateToken", mock.Anything, "good").
		Return(sess, nil).
		Twice()
	handler := transport.NewTransport(&transport.RestHandler{SessionApp: sessionApp})

	t.Run("valid snapshot", func(t *testing.T) {
		payload, _ := json.Marshal(model.AddToCartRequest{ProductID: 7, Name: "Plov", Price: 35000, Quantity: 2})
		req := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewReader(payload))
		req.Header.Set("Authorization", "Bearer good")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
		if sess.Cart.IsEmpty() {
			t.Fatalf("cart still empty")
		}
	})

	t.Run("zero quantity fails validation", func(t *testing.T) {
		payload, _ := json.Marshal(model.AddToCartRequest{ProductID: 7, Name: "Plov", Price: 35000, Quantity: 0})
		req := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewReader(payload))
		req.Header.Set("Authorization", "Bearer good")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		code, _ := decodeResponse(t, rec)
		if code != constant.ErrorTypeCode[constant.ErrValidation] {
			t.Fatalf("code = %s", code)
		}
	})
}

func TestSubmitOrderRequiresIdentity(t *testing.T) {
	sess := liveSession(t)
	sess.TelegramUserID = 0
	sess.User = nil

	sessionApp := sessionmocks.NewSessionApp(t)
	sessionApp.
		On("ValidateToken", mock.Anything, "good").
		Return(sess, nil).
		Once()
	handler := transport.NewTransport(&transport.RestHandler{SessionApp: sessionApp})

	req := httptest.NewRequest(http.MethodPost, "/checkout/submit", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	code, _ := decodeResponse(t, rec)
	if code != constant.ErrorTypeCode[constant.ErrIdentityUnresolved] {
		t.Fatalf("code = %s", code)
	}
}

func TestCheckoutStatusEndpoint(t *testing.T) {
	sess := liveSession(t)
	sessionApp := sessionmocks.NewSessionApp(t)
	sessionApp.
		On("ValidateToken", mock.Anything, "good").
		Return(sess, nil).
		Once()
	handler := transport.NewTransport(&transport.RestHandler{SessionApp: sessionApp})

	req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	_, data := decodeResponse(t, rec)
	var status model.CheckoutStatusResponse
	if err := json.Unmarshal(data, &status); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if status.State != "idle" {
		t.Fatalf("state = %s, want idle", status.State)
	}
}
