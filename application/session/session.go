package session

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	cartapp "github.com/pmyge/humo-tezkor-frontend/application/cart"
	"github.com/pmyge/humo-tezkor-frontend/application/chat"
	"github.com/pmyge/humo-tezkor-frontend/application/checkout"
	"github.com/pmyge/humo-tezkor-frontend/application/identity"
	"github.com/pmyge/humo-tezkor-frontend/application/prefs"
	userapp "github.com/pmyge/humo-tezkor-frontend/application/user"
	"github.com/pmyge/humo-tezkor-frontend/cmd/config"
	"github.com/pmyge/humo-tezkor-frontend/constant"
	"github.com/pmyge/humo-tezkor-frontend/model"
	"github.com/pmyge/humo-tezkor-frontend/repository/storage"
	"github.com/pmyge/humo-tezkor-frontend/thirdparty/storeapi"
	"github.com/pmyge/humo-tezkor-frontend/utils/errors"
	"github.com/pmyge/humo-tezkor-frontend/utils/logger"
	"go.uber.org/zap"
)

// Session is the in-memory state of one device: its cart, its checkout
// sequencer, its chat poller and the last resolved identity. All UI events
// for a device serialize through its mutex, which is the Go rendition of the
// single-threaded event loop the webview runs on.
type Session struct {
	mu sync.Mutex

	DeviceID       string
	TelegramUserID int64
	TelegramUser   *model.TelegramUser
	User           *model.User

	Cart     *cartapp.Cart
	Checkout checkout.Sequencer

	api          storeapi.Client
	chatInterval time.Duration
	chatPoller   *chat.Poller
}

// Lock serializes one UI event for this device.
func (s *Session) Lock() { s.mu.Lock() }

func (s *Session) Unlock() { s.mu.Unlock() }

// Chat returns the session's poller, creating it on first use. Requires a
// resolved identity.
func (s *Session) Chat() *chat.Poller {
	if s.chatPoller == nil {
		s.chatPoller = chat.NewPoller(s.api, s.TelegramUserID, s.chatInterval)
	}
	return s.chatPoller
}

// resetChat stops and drops the poller so the next chat open targets the
// current identity. Callers hold the session lock.
func (s *Session) resetChat() {
	if s.chatPoller != nil {
		s.chatPoller.Stop()
		s.chatPoller = nil
	}
}

// SessionApp opens webview sessions, resolving identity from the ambient
// context, and validates session tokens on subsequent requests.
type SessionApp interface {
	Open(ctx context.Context, req *model.OpenSessionRequest) (*model.SessionResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*Session, error)
	Logout(ctx context.Context, sess *Session) error
}

type sessionAppImpl struct {
	config      *config.Config
	api         storeapi.Client
	storageRepo storage.Repository
	cache       identity.Cache
	profile     userapp.ProfileApp
	prefsApp    prefs.PrefsApp

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionApp(cfg *config.Config, api storeapi.Client, storageRepo storage.Repository, cache identity.Cache, profile userapp.ProfileApp, prefsApp prefs.PrefsApp) SessionApp {
	return &sessionAppImpl{
		config:      cfg,
		api:         api,
		storageRepo: storageRepo,
		cache:       cache,
		profile:     profile,
		prefsApp:    prefsApp,
		sessions:    make(map[string]*Session),
	}
}

// Open resolves the device identity and issues a session token. A session
// opens even when identity stays unresolved: browsing needs no identity, and
// server-bound mutations are blocked individually later.
func (s *sessionAppImpl) Open(ctx context.Context, req *model.OpenSessionRequest) (*model.SessionResponse, error) {
	deviceID := req.DeviceID
	if deviceID == "" {
		newUUID, _ := uuid.NewRandom()
		deviceID = newUUID.String()
	}

	cached, err := s.cache.Load(ctx, deviceID)
	if err != nil {
		logger.Error("[Session] cache load", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	tgUser := identity.InitDataUser(req.InitData, req.PageURL)
	userID, resolveErr := identity.Resolve(identity.ResolveInput{
		InitData: req.InitData,
		PageURL:  req.PageURL,
		Cached:   cached,
	})
	if resolveErr != nil {
		logger.Info("[Session] identity unresolved, browse-only session", zap.String("device_id", deviceID))
	}

	current := cached
	if resolveErr == nil {
		current = s.refreshUser(ctx, deviceID, userID, tgUser, cached)
	}

	resolvedID := int64(0)
	if resolveErr == nil {
		resolvedID = userID
	}

	sess := s.ensureSession(deviceID)
	sess.Lock()
	if sess.TelegramUserID != resolvedID {
		sess.resetChat()
	}
	sess.TelegramUserID = resolvedID
	sess.TelegramUser = tgUser
	sess.User = current
	sess.Unlock()

	token, err := s.generateToken(ctx, deviceID, sess.TelegramUserID)
	if err != nil {
		logger.Error("[Session] token", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	language, theme := s.loadPrefs(ctx, deviceID, current)

	resp := &model.SessionResponse{
		Token:          token,
		DeviceID:       deviceID,
		TelegramUserID: sess.TelegramUserID,
		User:           current,
		Language:       language,
		Theme:          theme,
	}
	return resp, nil
}

// refreshUser fetches the server record (server always wins over the cache)
// and syncs Telegram name drift. When the API is unreachable, or the server
// has no record for this user yet, the cached record stands; with no cache at
// all the resolved id and init payload basics are seeded as a local-source
// record, so an unregistered user still carries a phoneless identity and
// checkout can ask for the phone.
func (s *sessionAppImpl) refreshUser(ctx context.Context, deviceID string, userID int64, tgUser *model.TelegramUser, cached *model.User) *model.User {
	fetched, err := s.profile.Fetch(ctx, deviceID, userID)
	if err != nil || fetched == nil {
		if cached != nil {
			return cached
		}
		return s.seedLocalRecord(ctx, deviceID, userID, tgUser)
	}
	synced, err := s.profile.SyncTelegramName(ctx, deviceID, userID, tgUser, fetched)
	if err != nil {
		return fetched
	}
	return synced
}

func (s *sessionAppImpl) seedLocalRecord(ctx context.Context, deviceID string, userID int64, tgUser *model.TelegramUser) *model.User {
	seed := &model.User{TelegramUserID: userID}
	if tgUser != nil {
		seed.FirstName = tgUser.FirstName
		seed.LastName = tgUser.LastName
		seed.Username = tgUser.Username
	}
	merged, err := s.cache.Merge(ctx, deviceID, seed, identity.SourceLocal)
	if err != nil || merged == nil {
		return seed
	}
	return merged
}

func (s *sessionAppImpl) loadPrefs(ctx context.Context, deviceID string, user *model.User) (string, string) {
	language := ""
	if user != nil {
		language = user.Language
	}
	if language == "" {
		language, _ = s.prefsApp.Language(ctx, deviceID)
	} else {
		_ = s.prefsApp.SetLanguage(ctx, deviceID, language)
	}
	theme, _ := s.prefsApp.Theme(ctx, deviceID)
	return language, theme
}

// ValidateToken checks the token signature and its live session mirror, then
// returns the in-memory session. A token that outlived the process restarts
// as unauthorized; the webview reopens its session.
func (s *sessionAppImpl) ValidateToken(ctx context.Context, tokenString string) (*Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	deviceID, err := s.storageRepo.GetSession(ctx, claims.ID)
	if err != nil || deviceID == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	s.mu.RLock()
	sess := s.sessions[deviceID]
	s.mu.RUnlock()
	if sess == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	return sess, nil
}

// Logout clears the cached identity record and the in-memory identity; the
// device keeps browsing anonymously.
func (s *sessionAppImpl) Logout(ctx context.Context, sess *Session) error {
	if err := s.profile.Logout(ctx, sess.DeviceID); err != nil {
		logger.Error("[Session] logout", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	sess.User = nil
	sess.TelegramUserID = 0
	sess.resetChat()
	return nil
}

func (s *sessionAppImpl) ensureSession(deviceID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[deviceID]; ok {
		return sess
	}
	c := cartapp.New()
	sess := &Session{
		DeviceID:     deviceID,
		Cart:         c,
		Checkout:     checkout.NewSequencer(s.api, c),
		api:          s.api,
		chatInterval: s.config.Chat.PollInterval,
	}
	s.sessions[deviceID] = sess
	return sess
}

// generateToken mirrors the token shape used across our services: subject is
// the resolved user id, jti is a fresh uuid mirrored in the session store for
// revocation and expiry.
func (s *sessionAppImpl) generateToken(ctx context.Context, deviceID string, userID int64) (string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", err
	}
	if err := s.storageRepo.SetSession(ctx, claims.ID, deviceID, s.config.Auth.SessionExpTime); err != nil {
		return "", err
	}
	return signed, nil
}
