package identity

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/pmyge/humo-tezkor-frontend/constant"
	"github.com/pmyge/humo-tezkor-frontend/model"
	"github.com/pmyge/humo-tezkor-frontend/utils/errors"
)

// ResolveInput is the ambient context identity can be read from. All sources
// are untrusted and possibly absent.
type ResolveInput struct {
	// InitData is the raw tgWebAppData query-string from the host runtime.
	InitData string
	// PageURL is the full webview URL including query and fragment.
	PageURL string
	// Cached is the last-known user record from device storage.
	Cached *model.User
}

// Resolve produces the canonical telegram user id from the first source that
// yields a valid one. Precedence: host init payload, tid query parameter,
// user object in the URL fragment, cached record. Ids at or above the legacy
// threshold are rejected at every step; callers must never substitute a
// fabricated placeholder. Pure read, no side effects.
func Resolve(in ResolveInput) (int64, error) {
	resolvers := []func(ResolveInput) int64{
		fromInitData,
		fromQuery,
		fromFragment,
		fromCache,
	}
	for _, resolve := range resolvers {
		if id := resolve(in); validID(id) {
			return id, nil
		}
	}
	return 0, errors.SetCustomError(constant.ErrIdentityUnresolved)
}

// InitDataUser extracts the structured Telegram user from the host init
// payload, falling back to the URL fragment encoding. Nil when neither
// carries one.
func InitDataUser(initData, pageURL string) *model.TelegramUser {
	if u := parseUserParam(initData); u != nil {
		return u
	}
	return fragmentUser(pageURL)
}

func validID(id int64) bool {
	return id > 0 && id < constant.LegacyIDThreshold
}

func fromInitData(in ResolveInput) int64 {
	if u := parseUserParam(in.InitData); u != nil {
		return u.ID
	}
	return 0
}

func fromQuery(in ResolveInput) int64 {
	u, err := url.Parse(in.PageURL)
	if err != nil {
		return 0
	}
	tid := u.Query().Get("tid")
	if tid == "" {
		return 0
	}
	id, err := strconv.ParseInt(tid, 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// fromFragment handles host runtimes that fail to inject init data directly:
// the payload then survives only in the URL fragment, either nested under
// tgWebAppData or as a bare user parameter.
func fromFragment(in ResolveInput) int64 {
	if u := fragmentUser(in.PageURL); u != nil {
		return u.ID
	}
	return 0
}

func fromCache(in ResolveInput) int64 {
	if in.Cached == nil {
		return 0
	}
	return in.Cached.TelegramUserID
}

func fragmentUser(pageURL string) *model.TelegramUser {
	u, err := url.Parse(pageURL)
	if err != nil || u.Fragment == "" {
		return nil
	}
	params, err := url.ParseQuery(u.Fragment)
	if err != nil {
		return nil
	}
	source := params.Encode()
	if nested := params.Get("tgWebAppData"); nested != "" {
		source = nested
	}
	return parseUserParam(source)
}

func parseUserParam(encoded string) *model.TelegramUser {
	if encoded == "" {
		return nil
	}
	params, err := url.ParseQuery(encoded)
	if err != nil {
		return nil
	}
	raw := params.Get("user")
	if raw == "" {
		return nil
	}
	var user model.TelegramUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil
	}
	if user.ID == 0 {
		return nil
	}
	return &user
}
