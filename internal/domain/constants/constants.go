// Package constants holds keys shared by the service and the shell.
package constants

const (
	// MemoriesStorageKey is the device key of the photo memory document.
	MemoriesStorageKey = "what-was-here-memories"

	// UserPlacesStorageKey is the device key of user-contributed places.
	UserPlacesStorageKey = "what-was-here-user-places"

	// QuotesStorageKey is the device key of the quote memory mapping.
	QuotesStorageKey = "what-was-here-quotes"

	// LegacyQuoteKeyPrefix prefixes the older one-key-per-place quote entries.
	LegacyQuoteKeyPrefix = "what-was-here-memory-"

	// AudioContentType is the media type of narration audio.
	AudioContentType = "audio/mpeg"
)
