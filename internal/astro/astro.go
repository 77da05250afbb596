// Package astro implements the sidereal computation pipeline: ayanamsa
// correction, tropical positions, ascendant, lunar nodes, the sidereal
// resolver, house grouping and the sunrise/sunset search.
//
// All entry points hang off Engine, which carries the ephemeris provider
// and retrograde detector injected at startup. Every computation is a pure
// function of its arguments and the immutable loaded ephemeris, so an
// Engine is safe for concurrent use.
package astro

import (
	"errors"
	"fmt"
	"math"

	"github.com/seenimoa/ndastro/internal/ephem"
)

// Input validation errors.
var (
	ErrLatitudeRange  = errors.New("latitude must be within (-90, 90)")
	ErrLongitudeRange = errors.New("longitude must be within [-180, 180]")
)

// Engine computes chart positions against an ephemeris provider.
type Engine struct {
	eph   ephem.Provider
	retro Detector
}

// Option customizes an Engine.
type Option func(*Engine)

// WithDetector overrides the retrograde detector (the default samples the
// provider's apparent longitudes at two nearby instants).
func WithDetector(d Detector) Option {
	return func(e *Engine) { e.retro = d }
}

// New builds an Engine over the given provider.
func New(p ephem.Provider, opts ...Option) *Engine {
	e := &Engine{eph: p, retro: NewMotionDetector(p)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// validateObserver rejects out-of-range coordinates. Latitude ±90° is
// rejected as well: the ascendant formula has a tangent singularity at the
// poles and would propagate non-finite values.
func validateObserver(lat, lon float64) error {
	if math.IsNaN(lat) || lat <= -90 || lat >= 90 {
		return fmt.Errorf("%w: got %v", ErrLatitudeRange, lat)
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return fmt.Errorf("%w: got %v", ErrLongitudeRange, lon)
	}
	return nil
}
