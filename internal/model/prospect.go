package model

import "time"

// Source identifies where a prospect record came from.
type Source string

const (
	SourceGoogleMaps Source = "google_maps" // Places text search
	SourceDetails    Source = "details"     // Places details lookup
	SourceARES       Source = "ares"        // structured registry
	SourceRejstrik   Source = "rejstrik"    // obchodní rejstřík HTML
)

// PlaceCategories is the whitelist of Places types we classify prospects by.
// The first type on a raw result that appears here becomes the category.
var PlaceCategories = []string{
	"beauty_salon",
	"hair_care",
	"spa",
	"restaurant",
	"cafe",
	"store",
	"gym",
	"travel_agency",
}

// Owner is a person associated with a company's ownership or management,
// extracted heuristically from the rejstřík.
type Owner struct {
	Name string `json:"name"`
	Role string `json:"role,omitempty"` // e.g. "statutární orgán", "společník"
	ICO  string `json:"ico,omitempty"`
}

// Prospect is a discovered business candidate, optionally enriched with
// Czech registry data.
type Prospect struct {
	// Google Maps data
	Name          string  `json:"name"`
	Address       string  `json:"address,omitempty"`
	Phone         string  `json:"phone,omitempty"`
	Website       string  `json:"website,omitempty"`
	GoogleMapsURL string  `json:"google_maps_url,omitempty"`
	Category      string  `json:"category,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	ReviewsCount  int     `json:"reviews_count,omitempty"`

	// ARES / obchodní rejstřík data
	ICO              string     `json:"ico,omitempty"`
	LegalName        string     `json:"legal_name,omitempty"`
	Owners           []Owner    `json:"owners,omitempty"`
	RegistrationDate *time.Time `json:"registration_date,omitempty"`
	Status           string     `json:"status,omitempty"`

	// Lead metadata
	Source      Source     `json:"source"`
	FoundAt     time.Time  `json:"found_at"`
	Contacted   bool       `json:"contacted"`
	ContactedAt *time.Time `json:"contacted_at,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// NewProspect creates a prospect with its discovery timestamp set.
// Returns false when name is empty; a prospect without a name is never
// constructed.
func NewProspect(name string, source Source) (*Prospect, bool) {
	if name == "" {
		return nil, false
	}
	return &Prospect{
		Name:    name,
		Source:  source,
		FoundAt: time.Now().UTC(),
	}, true
}

// PrimaryOwner returns the first extracted owner, or nil when none exist.
func (p *Prospect) PrimaryOwner() *Owner {
	if len(p.Owners) == 0 {
		return nil
	}
	return &p.Owners[0]
}
