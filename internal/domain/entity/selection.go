package entity

// ExpansionState tracks story expansion for the current selection.
type ExpansionState string

const (
	ExpansionIdle      ExpansionState = "idle"
	ExpansionExpanding ExpansionState = "expanding"
	ExpansionExpanded  ExpansionState = "expanded"
)

// NarrationState tracks narration for the current selection.
type NarrationState string

const (
	NarrationNotRequested NarrationState = "not_requested"
	NarrationNarrating    NarrationState = "narrating"
	NarrationNarrated     NarrationState = "narrated"
)

// GeocodeResult is the first match of a forward geocoding lookup.
type GeocodeResult struct {
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lng"`
	FullAddress string  `json:"fullAddress"`
}
