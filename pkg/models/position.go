package models

// PlanetPosition is one fully-resolved snapshot of a body (or of the
// ascendant point). It is built in a single pass by the sidereal resolver
// and never mutated afterwards.
type PlanetPosition struct {
	Planet      Planet    `json:"planet"`
	Name        string    `json:"name"`
	ShortName   string    `json:"short_name"`
	Latitude    float64   `json:"latitude"`           // apparent ecliptic latitude, degrees
	Longitude   float64   `json:"longitude"`          // apparent tropical longitude, degrees [0,360)
	DistanceKM  float64   `json:"distance"`           // distance from the observer, km
	SiderealLon float64   `json:"nirayana_longitude"` // tropical minus ayanamsa, degrees [0,360)
	Rasi        Rasi      `json:"rasi_occupied"`      // 1..12
	House       int       `json:"house_posited_at"`   // 1..12, relative to the ascendant
	AdvancedBy  float64   `json:"advanced_by"`        // degrees advanced within the rasi, [0,30)
	Nakshatra   Nakshatra `json:"natchaththiram"`     // 1..27
	Pada        int       `json:"paatham"`            // 1..4
	Retrograde  bool      `json:"retrograde"`
	IsAscendant bool      `json:"is_ascendant"`
}

// Kattam is one square of the chart: a house bound to the rasi that owns it.
// Exactly 12 are produced per chart, ordered by house number, with house 1
// on the ascendant's rasi.
type Kattam struct {
	Order        int              `json:"order"` // rasi number owning the square
	IsAscendant  bool             `json:"is_ascendant"`
	AscLongitude float64          `json:"asc_longitude"` // set only on the ascendant's square
	Owner        Planet           `json:"owner"`         // classical ruler of the rasi
	Rasi         Rasi             `json:"rasi"`
	House        int              `json:"house"` // 1..12 relative to the ascendant
	Planets      []PlanetPosition `json:"planets,omitempty"`
}

// BirthDetails is the display-only text block drawn in the chart centre.
// It plays no computational role.
type BirthDetails struct {
	Name  string `json:"name"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Place string `json:"place"`
}
