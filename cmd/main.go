package main

import (
	"net/http"

	"github.com/pmyge/humo-tezkor-frontend/application/catalog"
	"github.com/pmyge/humo-tezkor-frontend/application/favorites"
	"github.com/pmyge/humo-tezkor-frontend/application/identity"
	"github.com/pmyge/humo-tezkor-frontend/application/notification"
	"github.com/pmyge/humo-tezkor-frontend/application/order"
	"github.com/pmyge/humo-tezkor-frontend/application/prefs"
	"github.com/pmyge/humo-tezkor-frontend/application/session"
	userapp "github.com/pmyge/humo-tezkor-frontend/application/user"
	"github.com/pmyge/humo-tezkor-frontend/cmd/config"
	redisclient "github.com/pmyge/humo-tezkor-frontend/cmd/redis"
	_ "github.com/pmyge/humo-tezkor-frontend/docs"
	storageRepo "github.com/pmyge/humo-tezkor-frontend/repository/storage"
	"github.com/pmyge/humo-tezkor-frontend/thirdparty/storeapi"
	"github.com/pmyge/humo-tezkor-frontend/transport"
	"github.com/pmyge/humo-tezkor-frontend/utils/logger"
	validatorx "github.com/pmyge/humo-tezkor-frontend/utils/validator"
	"go.uber.org/zap"
)

// @title HUMO TEZKOR MINI-APP GATEWAY
// @version 1.0
// @description Session gateway for the Humo Tezkor Telegram mini-app storefront
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting gateway", zap.String("env", cfg.Environment))

	validatorx.Init()

	// Redis backs the device-scoped storage records and session mirror
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// External store API collaborator
	api := storeapi.NewClient(cfg.StoreAPI.BaseURL, cfg.StoreAPI.Timeout)

	// Initialize repositories
	StorageRepo := storageRepo.NewRepository()

	// Initialize application layers
	identityCache := identity.NewCache(StorageRepo)
	ProfileApp := userapp.NewProfileApp(api, identityCache)
	PrefsApp := prefs.NewPrefsApp(StorageRepo)
	SessionApp := session.NewSessionApp(cfg, api, StorageRepo, identityCache, ProfileApp, PrefsApp)
	CatalogApp := catalog.NewCatalogApp(api)
	OrderApp := order.NewOrderApp(api)
	NotificationApp := notification.NewNotificationApp(api)
	FavoritesApp := favorites.NewFavoritesApp(StorageRepo)

	httpTransport := transport.NewTransport(&transport.RestHandler{
		SessionApp:      SessionApp,
		CatalogApp:      CatalogApp,
		ProfileApp:      ProfileApp,
		OrderApp:        OrderApp,
		NotificationApp: NotificationApp,
		FavoritesApp:    FavoritesApp,
		PrefsApp:        PrefsApp,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err := server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
