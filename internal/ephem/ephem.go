// Package ephem answers apparent topocentric ecliptic-frame position queries
// for the chart bodies. The default implementation computes planetary
// positions from a Keplerian-element dataset loaded once at startup and the
// lunar position from a truncated periodic series; the loaded dataset is
// immutable and safe for concurrent reads.
package ephem

import (
	"errors"
	"fmt"
	"time"

	"github.com/seenimoa/ndastro/pkg/models"
)

// AUKilometres is the astronomical unit in kilometres (IAU 2012).
const AUKilometres = 149597870.7

// observerElevationM is the fixed observer elevation above the reference
// ellipsoid used for the topocentric correction, in metres.
const observerElevationM = 0.0

// ErrUnsupportedBody is returned for bodies the provider has no solution
// for (the lunar nodes and the ascendant are derived elsewhere).
var ErrUnsupportedBody = errors.New("ephemeris: unsupported body")

// Provider answers position queries for a body at an instant as seen by a
// topocentric observer. Implementations must be safe for concurrent use.
type Provider interface {
	// Position returns the apparent ecliptic latitude and longitude in
	// degrees (longitude normalized to [0,360)) and the distance in
	// kilometres for the body at t (UTC), corrected for the observer at
	// geographic lat/lon in degrees.
	Position(body models.Planet, lat, lon float64, t time.Time) (latDeg, lonDeg, distKm float64, err error)
}

func unsupported(body models.Planet) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedBody, body)
}
