package astro

import (
	"fmt"
	"math"
	"time"

	"github.com/seenimoa/ndastro/pkg/models"
	"github.com/seenimoa/ndastro/pkg/utils"
)

// degreesPerRasi divides the ecliptic into the 12 signs. The same divisor
// is used for the ascendant and the planets so both paths round boundaries
// identically.
const degreesPerRasi = 30.0

// nakshatraBand is the width of one lunar mansion, 13°20′.
const nakshatraBand = utils.DegreeMax / models.TotalNakshatras

// splitRasi returns the sign holding a sidereal longitude and the degrees
// advanced within it. Exact multiples of 30° belong to the lower sign, so
// 30° is still Aries and 0° wraps to Pisces.
func splitRasi(siderealLon float64) (models.Rasi, float64) {
	idx := int(siderealLon / degreesPerRasi)
	adv := siderealLon - float64(idx)*degreesPerRasi
	if adv > 0 {
		return models.Rasi(utils.WrapRasi(idx + 1)), adv
	}
	return models.Rasi(utils.WrapRasi(idx)), adv
}

// nakshatraPada returns the lunar mansion holding a sidereal longitude and
// the quarter within it. The band splits into four equal sub-bands with
// thresholds at 25%, 50% and 75%.
func nakshatraPada(siderealLon float64) (models.Nakshatra, int) {
	idx := int(math.Floor(siderealLon / nakshatraBand))
	if idx < 0 {
		idx = 0
	}
	if idx >= models.TotalNakshatras {
		idx = models.TotalNakshatras - 1
	}

	frac := (siderealLon - float64(idx)*nakshatraBand) / nakshatraBand
	var pada int
	switch {
	case frac < 0.25:
		pada = 1
	case frac < 0.5:
		pada = 2
	case frac < 0.75:
		pada = 3
	default:
		pada = 4
	}
	return models.Nakshatra(idx + 1), pada
}

// houseFor numbers a sign relative to the ascendant's sign: house 1 is the
// ascendant's rasi and houses proceed cyclically.
func houseFor(rasi, ascRasi models.Rasi) int {
	return (int(rasi)-int(ascRasi)+models.TotalRasis)%models.TotalRasis + 1
}

// resolve turns one raw tropical stage into a fully-populated sidereal
// position. No partially-filled value ever escapes this function.
func resolve(trop tropicalPosition, ayanamsa float64, ascRasi models.Rasi, retrograde bool) models.PlanetPosition {
	sidereal := utils.NormalizeDegree(trop.lon - ayanamsa)
	rasi, advancedBy := splitRasi(sidereal)
	nakshatra, pada := nakshatraPada(sidereal)

	return models.PlanetPosition{
		Planet:      trop.planet,
		Name:        trop.planet.String(),
		ShortName:   trop.planet.Short(),
		Latitude:    trop.lat,
		Longitude:   trop.lon,
		DistanceKM:  trop.distKm,
		SiderealLon: sidereal,
		Rasi:        rasi,
		House:       houseFor(rasi, ascRasi),
		AdvancedBy:  advancedBy,
		Nakshatra:   nakshatra,
		Pada:        pada,
		Retrograde:  retrograde,
	}
}

// PlanetPositions computes the sidereal positions of the seven ephemeris
// bodies plus the lunar nodes (the ascendant is not included; see
// Ascendant). House numbers are relative to the ascendant at the same
// instant and location.
func (e *Engine) PlanetPositions(lat, lon float64, t time.Time, ayanamsaName string) ([]models.PlanetPosition, error) {
	if err := validateObserver(lat, lon); err != nil {
		return nil, err
	}
	ayanamsa, err := Ayanamsa(ayanamsaName, t)
	if err != nil {
		return nil, err
	}

	asc, err := e.Ascendant(t, lat, lon, ayanamsaName)
	if err != nil {
		return nil, err
	}

	tropical, err := e.tropicalPositions(lat, lon, t)
	if err != nil {
		return nil, err
	}

	positions := make([]models.PlanetPosition, 0, len(tropical))
	for _, trop := range tropical {
		retrograde := true
		if !trop.planet.IsNode() {
			retrograde, err = e.retro.IsRetrograde(trop.planet, lat, lon, t)
			if err != nil {
				return nil, fmt.Errorf("retrograde check for %s: %w", trop.planet, err)
			}
		}
		positions = append(positions, resolve(trop, ayanamsa, asc.Rasi, retrograde))
	}
	return positions, nil
}

// Ascendant computes the sidereal ascendant point. It is resolved through
// the same rasi/nakshatra path as the planets, has no retrograde concept,
// and always occupies house 1.
func (e *Engine) Ascendant(t time.Time, lat, lon float64, ayanamsaName string) (models.PlanetPosition, error) {
	ayanamsa, err := Ayanamsa(ayanamsaName, t)
	if err != nil {
		return models.PlanetPosition{}, err
	}

	tropLon, err := e.TropicalAscendantLongitude(t, lat, lon)
	if err != nil {
		return models.PlanetPosition{}, err
	}

	sidereal := utils.NormalizeDegree(tropLon - ayanamsa)
	rasi, advancedBy := splitRasi(sidereal)
	nakshatra, pada := nakshatraPada(sidereal)

	return models.PlanetPosition{
		Planet:      models.Ascendant,
		Name:        models.Ascendant.String(),
		ShortName:   models.Ascendant.Short(),
		Longitude:   tropLon,
		SiderealLon: sidereal,
		Rasi:        rasi,
		House:       1,
		AdvancedBy:  advancedBy,
		Nakshatra:   nakshatra,
		Pada:        pada,
		IsAscendant: true,
	}, nil
}
