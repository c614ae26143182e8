// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"whatwashere/internal/errors"

	"github.com/paulmach/orb"
)

// PlaceStatus describes what happened to a place.
type PlaceStatus string

const (
	PlaceStatusActive     PlaceStatus = "active"
	PlaceStatusThreatened PlaceStatus = "threatened"
	PlaceStatusErased     PlaceStatus = "erased"
)

// IsValid reports whether s is one of the three known statuses.
func (s PlaceStatus) IsValid() bool {
	switch s {
	case PlaceStatusActive, PlaceStatusThreatened, PlaceStatusErased:
		return true
	}

	return false
}

// PlaceSource is the provenance of a place.
type PlaceSource string

const (
	PlaceSourceSeed PlaceSource = "seed"
	PlaceSourceUser PlaceSource = "user"
)

// UserPlaceIDPrefix namespaces user place identifiers away from seed slugs.
const UserPlaceIDPrefix = "user-"

// Place is a point of interest shown on the map.
type Place struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Latitude    float64     `json:"lat"`
	Longitude   float64     `json:"lng"`
	City        string      `json:"city,omitempty"`
	Status      PlaceStatus `json:"status"`
	Years       string      `json:"years,omitempty"`
	StartDate   string      `json:"startDate,omitempty"`
	EndDate     string      `json:"endDate,omitempty"`
	Reason      string      `json:"reason,omitempty"`
	Communities []string    `json:"communities,omitempty"`
	Story       string      `json:"story,omitempty"`
	Quote       string      `json:"quote,omitempty"`
	FullAddress string      `json:"fullAddress,omitempty"`
	Source      PlaceSource `json:"source"`
	CreatedAt   *time.Time  `json:"createdAt,omitempty"`
}

var (
	ErrInvalidLatitude  = errors.New("latitude must be within -90..90")
	ErrInvalidLongitude = errors.New("longitude must be within -180..180")
	ErrInvalidStatus    = errors.New("status must be active, threatened or erased")
	ErrMissingPlaceID   = errors.New("place id is required")
	ErrMissingAddress   = errors.New("user places require a geocoded address")
	ErrInvalidBound     = errors.New("bound must be minLng,minLat,maxLng,maxLat")
)

// Point returns the place location as an orb point (lng, lat).
func (p *Place) Point() orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

// Validate checks the fields every catalog entry must carry.
func (p *Place) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrMissingPlaceID
	}
	if !inRange(p.Latitude, 90) {
		return errors.Wrapf(ErrInvalidLatitude, "place %s", p.ID)
	}
	if !inRange(p.Longitude, 180) {
		return errors.Wrapf(ErrInvalidLongitude, "place %s", p.ID)
	}
	if !p.Status.IsValid() {
		return errors.Wrapf(ErrInvalidStatus, "place %s", p.ID)
	}
	if p.Source == PlaceSourceUser && strings.TrimSpace(p.FullAddress) == "" {
		return errors.Wrapf(ErrMissingAddress, "place %s", p.ID)
	}

	return nil
}

// inRange rejects NaN along with values outside -limit..limit.
func inRange(v, limit float64) bool {
	return !math.IsNaN(v) && v >= -limit && v <= limit
}

// YearsLabel renders the time range shown in the panel header.
func (p *Place) YearsLabel() string {
	if p.Years != "" {
		return p.Years
	}
	if p.StartDate == "" {
		return ""
	}
	if p.EndDate == "" {
		return p.StartDate + "–present"
	}

	return p.StartDate + "–" + p.EndDate
}

// Clone returns a deep copy so callers can hand places across goroutines.
func (p *Place) Clone() *Place {
	if p == nil {
		return nil
	}
	c := *p
	c.Communities = slices.Clone(p.Communities)
	if p.CreatedAt != nil {
		t := *p.CreatedAt
		c.CreatedAt = &t
	}

	return &c
}

// ParseBound parses a "minLng,minLat,maxLng,maxLat" viewport.
func ParseBound(raw string) (orb.Bound, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return orb.Bound{}, ErrInvalidBound
	}

	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return orb.Bound{}, errors.Wrap(ErrInvalidBound, err.Error())
		}
		v[i] = f
	}

	if v[0] > v[2] || v[1] > v[3] || v[0] < -180 || v[2] > 180 || v[1] < -90 || v[3] > 90 {
		return orb.Bound{}, ErrInvalidBound
	}

	return orb.Bound{Min: orb.Point{v[0], v[1]}, Max: orb.Point{v[2], v[3]}}, nil
}
