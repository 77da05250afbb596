package ephem

import (
	"math"
	"time"
)

// j2000 is the Julian date of the J2000.0 epoch (2000-01-01 12:00 TT).
const j2000 = 2451545.0

// ttOffsetSeconds is TT-UTC for the contemporary era (32.184s + 37 leap
// seconds). Adequate for the arcminute-level precision of this ephemeris.
const ttOffsetSeconds = 69.184

// JulianDay converts a UTC instant to the Julian date (UT).
func JulianDay(t time.Time) float64 {
	return float64(t.UTC().UnixNano())/1e9/86400.0 + 2440587.5
}

// JulianCenturiesTT returns Julian centuries of Terrestrial Time elapsed
// since J2000.0.
func JulianCenturiesTT(t time.Time) float64 {
	jdTT := JulianDay(t) + ttOffsetSeconds/86400.0
	return (jdTT - j2000) / 36525.0
}

// GMSTHours returns Greenwich mean sidereal time in hours [0,24).
func GMSTHours(t time.Time) float64 {
	d := JulianDay(t) - j2000
	gmst := math.Mod(18.697374558+24.06570982441908*d, 24)
	if gmst < 0 {
		gmst += 24
	}
	return gmst
}

// MeanObliquity returns the mean obliquity of the ecliptic in degrees
// (IAU 1980 expression).
func MeanObliquity(t time.Time) float64 {
	T := JulianCenturiesTT(t)
	return 23.4392911111 - (46.8150*T+0.00059*T*T-0.001813*T*T*T)/3600.0
}
