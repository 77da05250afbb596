package ephem

import (
	"math"
	"time"

	"github.com/seenimoa/ndastro/pkg/utils"
)

// Earth ellipsoid constants for the parallax correction.
const (
	earthEquatorialRadiusKm = 6378.137
	earthFlatteningFactor   = 0.99664719 // 1 - f, polar/equatorial ratio
)

// topocentric shifts a geocentric ecliptic position to the observer at
// geographic lat/lon (degrees) and the fixed elevation constant. The shift
// is the diurnal parallax; it is significant for the Moon (up to ~1°) and
// negligible but harmless for the planets.
func topocentric(latDeg, lonDeg, distKm, obsLat, obsLon float64, t time.Time) (float64, float64) {
	eps := rad(MeanObliquity(t))
	beta := rad(latDeg)
	lambda := rad(lonDeg)

	// Ecliptic -> equatorial.
	sinDec := math.Sin(beta)*math.Cos(eps) + math.Cos(beta)*math.Sin(eps)*math.Sin(lambda)
	dec := math.Asin(sinDec)
	ra := math.Atan2(math.Sin(lambda)*math.Cos(eps)-math.Tan(beta)*math.Sin(eps), math.Cos(lambda))

	// Observer's geocentric position on the ellipsoid.
	phi := rad(obsLat)
	u := math.Atan(earthFlatteningFactor * math.Tan(phi))
	hRatio := observerElevationM / 1000 / earthEquatorialRadiusKm
	rhoSinPhi := earthFlatteningFactor*math.Sin(u) + hRatio*math.Sin(phi)
	rhoCosPhi := math.Cos(u) + hRatio*math.Cos(phi)

	// Equatorial horizontal parallax and local hour angle.
	sinPi := earthEquatorialRadiusKm / distKm
	lstDeg := utils.NormalizeDegree(GMSTHours(t)*15 + obsLon)
	H := rad(lstDeg) - ra

	dRA := math.Atan2(-rhoCosPhi*sinPi*math.Sin(H), math.Cos(dec)-rhoCosPhi*sinPi*math.Cos(H))
	raTopo := ra + dRA
	decTopo := math.Atan2((math.Sin(dec)-rhoSinPhi*sinPi)*math.Cos(dRA),
		math.Cos(dec)-rhoCosPhi*sinPi*math.Cos(H))

	// Equatorial -> ecliptic.
	lonTopo := math.Atan2(math.Sin(raTopo)*math.Cos(eps)+math.Tan(decTopo)*math.Sin(eps), math.Cos(raTopo))
	latTopo := math.Asin(math.Sin(decTopo)*math.Cos(eps) - math.Cos(decTopo)*math.Sin(eps)*math.Sin(raTopo))

	return deg(latTopo), utils.NormalizeDegree(deg(lonTopo))
}
