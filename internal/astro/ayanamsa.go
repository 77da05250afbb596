package astro

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/seenimoa/ndastro/internal/ephem"
)

// ErrUnknownAyanamsa is returned for ayanamsa systems the calculator does
// not implement. A silent 0° fallback would disable the sidereal conversion
// entirely, so unknown names are an input error.
var ErrUnknownAyanamsa = errors.New("unknown ayanamsa system")

// lahiriJ2000 is the Lahiri (Chitrapaksha) ayanamsa at J2000.0 in degrees.
const lahiriJ2000 = 23.85301

// Ayanamsa returns the sidereal correction angle in degrees for the named
// system at the given instant. Names are case-insensitive.
func Ayanamsa(name string, t time.Time) (float64, error) {
	switch strings.ToLower(name) {
	case "lahiri", "chitrapaksha":
		return lahiriAyanamsa(t), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAyanamsa, name)
	}
}

// lahiriAyanamsa evaluates the Lahiri value from the accumulated general
// precession in longitude (IAU 2006 series) on top of the J2000 offset.
func lahiriAyanamsa(t time.Time) float64 {
	T := ephem.JulianCenturiesTT(t)
	precessionArcsec := 5028.796195*T + 1.1054348*T*T
	return lahiriJ2000 + precessionArcsec/3600.0
}
