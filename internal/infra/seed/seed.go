// Package seed provides the authored place catalog compiled into the binary.
package seed

import (
	_ "embed"
	"encoding/json"

	"whatwashere/internal/domain/entity"
	"whatwashere/internal/errors"

	"github.com/paulmach/orb"
)

//go:embed places.json
var placesJSON []byte

// Map defaults for the continental US.
var (
	MapCenter = orb.Point{-98, 39}
	MapZoom   = 4
)

// Places decodes the seed catalog, stamps each entry as seed and validates it.
// Every call returns fresh copies.
func Places() ([]*entity.Place, error) {
	var places []*entity.Place
	if err := json.Unmarshal(placesJSON, &places); err != nil {
		return nil, errors.Wrap(err, "decode seed places")
	}

	seen := make(map[string]struct{}, len(places))
	for _, p := range places {
		p.Source = entity.PlaceSourceSeed
		if err := p.Validate(); err != nil {
			return nil, errors.Wrap(err, "invalid seed place")
		}
		if _, dup := seen[p.ID]; dup {
			return nil, errors.Errorf("duplicate seed place id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	return places, nil
}
