package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pmyge/humo-tezkor-frontend/application/catalog"
	"github.com/pmyge/humo-tezkor-frontend/application/favorites"
	"github.com/pmyge/humo-tezkor-frontend/application/notification"
	"github.com/pmyge/humo-tezkor-frontend/application/order"
	"github.com/pmyge/humo-tezkor-frontend/application/prefs"
	"github.com/pmyge/humo-tezkor-frontend/application/session"
	userapp "github.com/pmyge/humo-tezkor-frontend/application/user"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	SessionApp      session.SessionApp
	CatalogApp      catalog.CatalogApp
	ProfileApp      userapp.ProfileApp
	OrderApp        order.OrderApp
	NotificationApp notification.NotificationApp
	FavoritesApp    favorites.FavoritesApp
	PrefsApp        prefs.PrefsApp
}

func NewTransport(rh *RestHandler) http.Handler {
	router := mux.NewRouter()

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public: session open
	router.HandleFunc("/session", rh.OpenSession).Methods(http.MethodPost)

	// Catalog
	router.HandleFunc("/catalog/categories", rh.Categories).Methods(http.MethodGet)
	router.HandleFunc("/catalog/categories/{id:[0-9]+}/products", rh.CategoryProducts).Methods(http.MethodGet)
	router.HandleFunc("/catalog/products", rh.Products).Methods(http.MethodGet)

	// Cart and checkout
	router.HandleFunc("/cart", rh.GetCart).Methods(http.MethodGet)
	router.HandleFunc("/cart/items", rh.AddToCart).Methods(http.MethodPost)
	router.HandleFunc("/checkout", rh.CheckoutStatus).Methods(http.MethodGet)
	router.HandleFunc("/checkout/submit", rh.SubmitOrder).Methods(http.MethodPost)
	router.HandleFunc("/checkout/phone", rh.CheckoutPhone).Methods(http.MethodPost)
	router.HandleFunc("/checkout/location", rh.CheckoutLocation).Methods(http.MethodPost)
	router.HandleFunc("/checkout/cancel", rh.CheckoutCancel).Methods(http.MethodPost)

	// Favorites and preferences
	router.HandleFunc("/favorites", rh.ListFavorites).Methods(http.MethodGet)
	router.HandleFunc("/favorites/{id:[0-9]+}/toggle", rh.ToggleFavorite).Methods(http.MethodPost)
	router.HandleFunc("/location", rh.GetLocation).Methods(http.MethodGet)
	router.HandleFunc("/location", rh.SetLocation).Methods(http.MethodPut)
	router.HandleFunc("/theme", rh.SetTheme).Methods(http.MethodPut)

	// Profile
	router.HandleFunc("/profile", rh.GetProfile).Methods(http.MethodGet)
	router.HandleFunc("/profile", rh.UpdateProfile).Methods(http.MethodPatch)
	router.HandleFunc("/profile/phone", rh.RegisterPhone).Methods(http.MethodPost)
	router.HandleFunc("/profile/language", rh.ChangeLanguage).Methods(http.MethodPatch)
	router.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)

	// Orders, notifications, chat
	router.HandleFunc("/orders", rh.ListOrders).Methods(http.MethodGet)
	router.HandleFunc("/notifications", rh.ListNotifications).Methods(http.MethodGet)
	router.HandleFunc("/notifications/mark-read", rh.MarkNotificationRead).Methods(http.MethodPost)
	router.HandleFunc("/chat/open", rh.OpenChat).Methods(http.MethodPost)
	router.HandleFunc("/chat/close", rh.CloseChat).Methods(http.MethodPost)
	router.HandleFunc("/chat/messages", rh.ChatMessages).Methods(http.MethodGet)
	router.HandleFunc("/chat/messages", rh.SendChatMessage).Methods(http.MethodPost)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(rh.SessionApp))

	return router
}
