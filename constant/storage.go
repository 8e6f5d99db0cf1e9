package constant

// Device-scoped storage record names. Each record is an independent
// last-write-wins key, mirroring the web build's localStorage entries.
const (
	RecordUser      = "user"
	RecordFavorites = "favorites"
	RecordLocation  = "location"
	RecordTheme     = "theme"
	RecordLanguage  = "language"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type contextKey int

const (
	SessionKey contextKey = iota
)
