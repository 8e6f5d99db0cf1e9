package constant

// LegacyIDThreshold is the lower bound of client-fabricated placeholder ids
// that older builds derived from phone digits. Ids at or above it are never
// persisted and never sent to the server.
const LegacyIDThreshold int64 = 10_000_000_000

// EmptyPhoneMarker is the value the server returns for users without a
// registered phone. It normalizes to an empty string on every cache write.
const EmptyPhoneMarker = "-"

const (
	LanguageUz = "uz"
	LanguageRu = "ru"
)

const DefaultLanguage = LanguageUz
