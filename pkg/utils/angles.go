// Package utils provides small angular and formatting helpers shared across
// the computation pipeline.
package utils

import "math"

// DegreeMax is one full circle.
const DegreeMax = 360.0

// NormalizeDegree wraps any finite angle into [0,360).
func NormalizeDegree(deg float64) float64 {
	d := math.Mod(deg, DegreeMax)
	if d < 0 {
		d += DegreeMax
	}
	return d
}

// SignedDelta returns the signed angular difference b-a in (-180,180].
func SignedDelta(a, b float64) float64 {
	d := math.Mod(b-a+540, DegreeMax) - 180
	if d == -180 {
		return 180
	}
	return d
}

// WrapRasi wraps an integer sign/house position into [1,12].
func WrapRasi(n int) int {
	n %= 12
	if n <= 0 {
		n += 12
	}
	return n
}

// DMSToDecimal converts degrees, arcminutes and arcseconds to decimal
// degrees. The sign of the degrees part carries through.
func DMSToDecimal(degrees int, minutes int, seconds float64) float64 {
	s := 1.0
	if degrees < 0 {
		s = -1.0
		degrees = -degrees
	}
	return s * (float64(degrees) + float64(minutes)/60 + seconds/3600)
}

// DecimalToDMS splits decimal degrees into whole degrees, arcminutes and
// arcseconds, discarding the sign.
func DecimalToDMS(deg float64) (d int, m int, s float64) {
	deg = math.Abs(deg)
	d = int(deg)
	rem := (deg - float64(d)) * 60
	m = int(rem)
	s = (rem - float64(m)) * 60
	return d, m, s
}
