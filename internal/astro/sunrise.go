package astro

import (
	"math"
	"time"

	"github.com/seenimoa/ndastro/internal/ephem"
	"github.com/seenimoa/ndastro/pkg/models"
	"github.com/seenimoa/ndastro/pkg/utils"
)

// horizonAltitudeDeg is the solar altitude at rise/set: 34′ of standard
// refraction plus the 16′ solar semidiameter below the geometric horizon.
const horizonAltitudeDeg = -0.8333

// sunSampleStep is the coarse sampling interval of the discrete search.
// The altitude function has at most one rise and one set crossing per
// 10-minute window at non-polar latitudes.
const sunSampleStep = 10 * time.Minute

// SunTimes holds the rise and set instants found within a day window. A
// nil field means the event does not occur in the window (polar day or
// night); that is an absence, not an error.
type SunTimes struct {
	Sunrise *time.Time `json:"sunrise"`
	Sunset  *time.Time `json:"sunset"`
}

// SunriseSunset searches the UTC calendar day of date for the instants
// where the solar altitude crosses the horizon threshold.
func (e *Engine) SunriseSunset(lat, lon float64, date time.Time) (SunTimes, error) {
	if err := validateObserver(lat, lon); err != nil {
		return SunTimes{}, err
	}

	d := date.UTC()
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	var result SunTimes

	prevT := start
	prevAlt, err := e.solarAltitude(lat, lon, start)
	if err != nil {
		return SunTimes{}, err
	}

	for cur := start.Add(sunSampleStep); !cur.After(end); cur = cur.Add(sunSampleStep) {
		alt, err := e.solarAltitude(lat, lon, cur)
		if err != nil {
			return SunTimes{}, err
		}

		if prevAlt < horizonAltitudeDeg && alt >= horizonAltitudeDeg && result.Sunrise == nil {
			at, err := e.refineCrossing(lat, lon, prevT, cur)
			if err != nil {
				return SunTimes{}, err
			}
			result.Sunrise = &at
		}
		if prevAlt >= horizonAltitudeDeg && alt < horizonAltitudeDeg && result.Sunset == nil {
			at, err := e.refineCrossing(lat, lon, prevT, cur)
			if err != nil {
				return SunTimes{}, err
			}
			result.Sunset = &at
		}

		prevT, prevAlt = cur, alt
	}

	return result, nil
}

// refineCrossing bisects a bracketing interval down to one second.
func (e *Engine) refineCrossing(lat, lon float64, lo, hi time.Time) (time.Time, error) {
	loAlt, err := e.solarAltitude(lat, lon, lo)
	if err != nil {
		return time.Time{}, err
	}
	loBelow := loAlt < horizonAltitudeDeg

	for hi.Sub(lo) > time.Second {
		mid := lo.Add(hi.Sub(lo) / 2)
		alt, err := e.solarAltitude(lat, lon, mid)
		if err != nil {
			return time.Time{}, err
		}
		if (alt < horizonAltitudeDeg) == loBelow {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi.Truncate(time.Second), nil
}

// solarAltitude returns the Sun's altitude above the horizon in degrees
// for the observer at t.
func (e *Engine) solarAltitude(lat, lon float64, t time.Time) (float64, error) {
	sLat, sLon, _, err := e.eph.Position(models.Sun, lat, lon, t)
	if err != nil {
		return 0, err
	}

	eps := rad(ephem.MeanObliquity(t))
	beta := rad(sLat)
	lambda := rad(sLon)

	sinDec := math.Sin(beta)*math.Cos(eps) + math.Cos(beta)*math.Sin(eps)*math.Sin(lambda)
	dec := math.Asin(sinDec)
	ra := math.Atan2(math.Sin(lambda)*math.Cos(eps)-math.Tan(beta)*math.Sin(eps), math.Cos(lambda))

	lstDeg := utils.NormalizeDegree(ephem.GMSTHours(t)*15 + lon)
	hourAngle := rad(lstDeg) - ra

	sinAlt := math.Sin(rad(lat))*math.Sin(dec) + math.Cos(rad(lat))*math.Cos(dec)*math.Cos(hourAngle)
	return deg(math.Asin(sinAlt)), nil
}
