package ephem

import (
	"math"
	"time"

	"github.com/seenimoa/ndastro/pkg/utils"
)

// moonTerm is one periodic term of the truncated ELP-style lunar theory.
// Arguments are integer multipliers of D, M, M' and F; coefL is in 1e-6
// degrees, coefR in metres.
type moonTerm struct {
	d, m, mp, f int
	coefL       float64
	coefR       float64
}

// Principal longitude/distance terms (Meeus, Astronomical Algorithms,
// ch. 47, truncated). Enough for arcminute-level longitudes, which is what
// the rasi/nakshatra resolution needs.
var moonLonTerms = []moonTerm{
	{0, 0, 1, 0, 6288774, -20905355},
	{2, 0, -1, 0, 1274027, -3699111},
	{2, 0, 0, 0, 658314, -2955968},
	{0, 0, 2, 0, 213618, -569925},
	{0, 1, 0, 0, -185116, 48888},
	{0, 0, 0, 2, -114332, -3149},
	{2, 0, -2, 0, 58793, 246158},
	{2, -1, -1, 0, 57066, -152138},
	{2, 0, 1, 0, 53322, -170733},
	{2, -1, 0, 0, 45758, -204586},
	{0, 1, -1, 0, -40923, -129620},
	{1, 0, 0, 0, -34720, 108743},
	{0, 1, 1, 0, -30383, 104755},
	{2, 0, 0, -2, 15327, 10321},
	{0, 0, 1, 2, -12528, 0},
	{0, 0, 1, -2, 10980, 79661},
	{4, 0, -1, 0, 10675, -34782},
	{0, 0, 3, 0, 10034, -23210},
	{4, 0, -2, 0, 8548, -21636},
	{2, 1, -1, 0, -7888, 24208},
	{2, 1, 0, 0, -6766, 30824},
	{1, 0, -1, 0, -5163, -8379},
	{1, 1, 0, 0, 4987, -16675},
	{2, -1, 1, 0, 4036, -12831},
	{2, 0, 2, 0, 3994, -10445},
	{4, 0, 0, 0, 3861, -11650},
	{2, 0, -3, 0, 3665, 14403},
	{0, 1, -2, 0, -2689, -7003},
	{2, 0, -1, 2, -2602, 0},
	{2, -1, -2, 0, 2390, 10056},
	{1, 0, 1, 0, -2348, 6322},
	{2, -2, 0, 0, 2236, -9884},
}

// Principal latitude terms, coefB in 1e-6 degrees.
var moonLatTerms = []moonTerm{
	{0, 0, 0, 1, 5128122, 0},
	{0, 0, 1, 1, 280602, 0},
	{0, 0, 1, -1, 277693, 0},
	{2, 0, 0, -1, 173237, 0},
	{2, 0, -1, 1, 55413, 0},
	{2, 0, -1, -1, 46271, 0},
	{2, 0, 0, 1, 32573, 0},
	{0, 0, 2, 1, 17198, 0},
	{2, 0, 1, -1, 9266, 0},
	{0, 0, 2, -1, 8822, 0},
	{2, -1, 0, -1, 8216, 0},
	{2, 0, -2, -1, 4324, 0},
	{2, 0, 1, 1, 4200, 0},
	{2, 1, 0, -1, -3359, 0},
	{2, -1, -1, 1, 2463, 0},
	{2, -1, 0, 1, 2211, 0},
	{2, -1, -1, -1, 2065, 0},
	{0, 1, -1, -1, -1870, 0},
	{4, 0, -1, -1, 1828, 0},
	{0, 1, 0, 1, -1794, 0},
}

// moonGeocentric returns the geocentric ecliptic latitude/longitude in
// degrees and the distance in km of the Moon at t.
func moonGeocentric(t time.Time) (latDeg, lonDeg, distKm float64) {
	T := JulianCenturiesTT(t)

	// Fundamental arguments, degrees.
	Lp := 218.3164477 + 481267.88123421*T - 0.0015786*T*T + T*T*T/538841 - T*T*T*T/65194000
	D := 297.8501921 + 445267.1114034*T - 0.0018819*T*T + T*T*T/545868 - T*T*T*T/113065000
	M := 357.5291092 + 35999.0502909*T - 0.0001536*T*T + T*T*T/24490000
	Mp := 134.9633964 + 477198.8675055*T + 0.0087414*T*T + T*T*T/69699 - T*T*T*T/14712000
	F := 93.2720950 + 483202.0175233*T - 0.0036539*T*T - T*T*T/3526000 + T*T*T*T/863310000

	// Eccentricity damping for terms involving the solar anomaly.
	E := 1 - 0.002516*T - 0.0000074*T*T

	var sumL, sumR, sumB float64
	for _, tm := range moonLonTerms {
		arg := rad(float64(tm.d)*D + float64(tm.m)*M + float64(tm.mp)*Mp + float64(tm.f)*F)
		e := eFactor(E, tm.m)
		sumL += tm.coefL * e * math.Sin(arg)
		sumR += tm.coefR * e * math.Cos(arg)
	}
	for _, tm := range moonLatTerms {
		arg := rad(float64(tm.d)*D + float64(tm.m)*M + float64(tm.mp)*Mp + float64(tm.f)*F)
		sumB += tm.coefL * eFactor(E, tm.m) * math.Sin(arg)
	}

	lonDeg = utils.NormalizeDegree(Lp + sumL/1e6)
	latDeg = sumB / 1e6
	distKm = 385000.56 + sumR/1000
	return latDeg, lonDeg, distKm
}

func eFactor(E float64, m int) float64 {
	switch m {
	case 1, -1:
		return E
	case 2, -2:
		return E * E
	default:
		return 1
	}
}

// MeanLunarNode returns the mean longitude of the Moon's ascending node in
// degrees [0,360) at t.
func MeanLunarNode(t time.Time) float64 {
	T := JulianCenturiesTT(t)
	omega := 125.0445479 - 1934.1362891*T + 0.0020754*T*T + T*T*T/467441 - T*T*T*T/60616000
	return utils.NormalizeDegree(omega)
}
