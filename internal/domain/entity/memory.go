package entity

import (
	"bytes"
	"cmp"
	"encoding/json"
	"slices"
	"time"

	"whatwashere/internal/errors"
)

const (
	// MaxCaptionLength is the caption limit of a photo memory, in characters.
	MaxCaptionLength = 200
	// MaxQuoteLength is the text limit of a quote memory, in characters.
	MaxQuoteLength = 500
)

// PhotoMemory is one dated photo and caption attached to a place.
type PhotoMemory struct {
	ID          string `json:"id"`
	PlaceID     string `json:"placeId"`
	ImageBase64 string `json:"imageBase64"`
	Caption     string `json:"caption"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	CreatedAt   int64  `json:"createdAt"` // Unix milliseconds
}

// MemoryMap is the whole photo memory document keyed by place ID.
type MemoryMap map[string][]PhotoMemory

// Clone copies the map and every list so mutations never leak between callers.
func (m MemoryMap) Clone() MemoryMap {
	out := make(MemoryMap, len(m))
	for placeID, list := range m {
		out[placeID] = slices.Clone(list)
	}

	return out
}

// ErrMalformedMemoryMap is returned for documents that are not an object of lists.
var ErrMalformedMemoryMap = errors.New("memory document must be an object of place IDs to lists")

// DecodeMemoryMap parses a memory document, rejecting any other JSON shape.
func DecodeMemoryMap(data []byte) (MemoryMap, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(ErrMalformedMemoryMap, err.Error())
	}
	if raw == nil {
		return nil, ErrMalformedMemoryMap
	}

	out := make(MemoryMap, len(raw))
	for placeID, list := range raw {
		if !bytes.HasPrefix(bytes.TrimSpace(list), []byte("[")) {
			return nil, errors.Wrapf(ErrMalformedMemoryMap, "place %q", placeID)
		}
		var memories []PhotoMemory
		if err := json.Unmarshal(list, &memories); err != nil {
			return nil, errors.Wrapf(ErrMalformedMemoryMap, "place %q: %v", placeID, err)
		}
		out[placeID] = memories
	}

	return out, nil
}

// SortPhotoMemories orders memories by (year, month, createdAt) ascending.
func SortPhotoMemories(memories []PhotoMemory) []PhotoMemory {
	sorted := slices.Clone(memories)
	slices.SortStableFunc(sorted, func(a, b PhotoMemory) int {
		return cmp.Or(
			cmp.Compare(a.Year, b.Year),
			cmp.Compare(a.Month, b.Month),
			cmp.Compare(a.CreatedAt, b.CreatedAt),
		)
	})

	return sorted
}

// QuoteMemory is the single personal note a user keeps for a place.
type QuoteMemory struct {
	Memory    string     `json:"memory"`
	MonthYear string     `json:"monthYear,omitempty"`
	SavedAt   *time.Time `json:"savedAt,omitempty"`
}
