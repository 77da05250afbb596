package ephem

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/seenimoa/ndastro/pkg/models"
	"github.com/seenimoa/ndastro/pkg/utils"
)

//go:embed elements.json
var embeddedElements []byte

// orbitalElements holds mean Keplerian elements at J2000 and their
// per-century rates (JPL approximate planetary elements, 1800–2050 AD).
// Angles in degrees, semi-major axis in AU.
type orbitalElements struct {
	Body  string  `json:"body"`
	A     float64 `json:"a"`
	ARate float64 `json:"a_rate"`
	E     float64 `json:"e"`
	ERate float64 `json:"e_rate"`
	I     float64 `json:"i"`
	IRate float64 `json:"i_rate"`
	L     float64 `json:"l"`
	LRate float64 `json:"l_rate"`
	W     float64 `json:"w"` // longitude of perihelion
	WRate float64 `json:"w_rate"`
	O     float64 `json:"o"` // longitude of the ascending node
	ORate float64 `json:"o_rate"`
}

type elementsFile struct {
	Name      string            `json:"name"`
	ValidFrom int               `json:"valid_from"`
	ValidTo   int               `json:"valid_to"`
	Bodies    []orbitalElements `json:"bodies"`
}

// Kernel is the default Provider. It carries the planetary element table,
// loaded once and read-only for the remainder of the process lifetime.
type Kernel struct {
	name  string
	elems map[models.Planet]orbitalElements
}

// elementBodies maps dataset body names onto chart bodies. Earth stands in
// for the Earth-Moon barycenter and anchors every geocentric conversion.
var elementBodies = map[string]models.Planet{
	"Mercury": models.Mercury,
	"Venus":   models.Venus,
	"Earth":   models.PlanetNone, // keyed separately, see Load
	"Mars":    models.Mars,
	"Jupiter": models.Jupiter,
	"Saturn":  models.Saturn,
}

// earthKey is the private map slot for the Earth elements.
const earthKey = models.Planet(-1)

// Load builds a Kernel from the dataset at path, or from the embedded copy
// when path is empty. A missing or corrupt dataset is a fatal startup
// condition: no computation is possible without it.
func Load(path string) (*Kernel, error) {
	data := embeddedElements
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("ephemeris: reading dataset: %w", err)
		}
		data = b
	}

	var f elementsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("ephemeris: parsing dataset: %w", err)
	}

	k := &Kernel{name: f.Name, elems: make(map[models.Planet]orbitalElements, len(f.Bodies))}
	for _, el := range f.Bodies {
		p, ok := elementBodies[el.Body]
		if !ok {
			return nil, fmt.Errorf("ephemeris: dataset names unknown body %q", el.Body)
		}
		if el.A <= 0 || el.E < 0 || el.E >= 1 {
			return nil, fmt.Errorf("ephemeris: dataset has invalid elements for %q", el.Body)
		}
		if el.Body == "Earth" {
			k.elems[earthKey] = el
		} else {
			k.elems[p] = el
		}
	}

	if _, ok := k.elems[earthKey]; !ok {
		return nil, fmt.Errorf("ephemeris: dataset %q is missing the Earth elements", f.Name)
	}
	for name, p := range elementBodies {
		if name == "Earth" {
			continue
		}
		if _, ok := k.elems[p]; !ok {
			return nil, fmt.Errorf("ephemeris: dataset %q is missing %s", f.Name, name)
		}
	}

	return k, nil
}

// Name returns the dataset identifier the kernel was built from.
func (k *Kernel) Name() string { return k.name }

// Position implements Provider.
func (k *Kernel) Position(body models.Planet, lat, lon float64, t time.Time) (float64, float64, float64, error) {
	var latDeg, lonDeg, distKm float64

	switch body {
	case models.Moon:
		latDeg, lonDeg, distKm = moonGeocentric(t)
	case models.Sun:
		latDeg, lonDeg, distKm = k.sunGeocentric(t)
	case models.Mercury, models.Venus, models.Mars, models.Jupiter, models.Saturn:
		latDeg, lonDeg, distKm = k.planetGeocentric(body, t)
	default:
		return 0, 0, 0, unsupported(body)
	}

	latDeg, lonDeg = topocentric(latDeg, lonDeg, distKm, lat, lon, t)
	return latDeg, utils.NormalizeDegree(lonDeg), distKm, nil
}

// heliocentric returns the J2000-ecliptic heliocentric rectangular
// coordinates of the body in AU at Julian centuries T.
func (k *Kernel) heliocentric(key models.Planet, T float64) (x, y, z float64) {
	el := k.elems[key]

	a := el.A + el.ARate*T
	e := el.E + el.ERate*T
	i := rad(el.I + el.IRate*T)
	L := el.L + el.LRate*T
	wBar := el.W + el.WRate*T
	o := rad(el.O + el.ORate*T)

	// Mean anomaly and argument of perihelion.
	w := rad(wBar) - o
	M := rad(utils.NormalizeDegree(L-wBar)) // [0,2π)

	E := solveKepler(M, e)

	// Position in the orbital plane, perihelion along +x'.
	xp := a * (math.Cos(E) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(E)

	cw, sw := math.Cos(w), math.Sin(w)
	co, so := math.Cos(o), math.Sin(o)
	ci, si := math.Cos(i), math.Sin(i)

	x = (cw*co-sw*so*ci)*xp + (-sw*co-cw*so*ci)*yp
	y = (cw*so+sw*co*ci)*xp + (-sw*so+cw*co*ci)*yp
	z = (sw*si)*xp + (cw*si)*yp
	return x, y, z
}

// solveKepler solves E - e·sin(E) = M by Newton iteration. M in radians.
func solveKepler(M, e float64) float64 {
	E := M + e*math.Sin(M)
	for i := 0; i < 20; i++ {
		dM := M - (E - e*math.Sin(E))
		dE := dM / (1 - e*math.Cos(E))
		E += dE
		if math.Abs(dE) < 1e-12 {
			break
		}
	}
	return E
}

// sunGeocentric returns the apparent geocentric ecliptic position of the Sun.
func (k *Kernel) sunGeocentric(t time.Time) (latDeg, lonDeg, distKm float64) {
	T := JulianCenturiesTT(t)
	ex, ey, ez := k.heliocentric(earthKey, T)
	return vectorToSpherical(-ex, -ey, -ez)
}

// planetGeocentric returns the apparent geocentric ecliptic position of a
// planet, with a single light-time iteration.
func (k *Kernel) planetGeocentric(body models.Planet, t time.Time) (latDeg, lonDeg, distKm float64) {
	T := JulianCenturiesTT(t)
	ex, ey, ez := k.heliocentric(earthKey, T)

	px, py, pz := k.heliocentric(body, T)
	gx, gy, gz := px-ex, py-ey, pz-ez
	distAU := math.Sqrt(gx*gx + gy*gy + gz*gz)

	// One light-time iteration: re-evaluate the planet at emission time.
	tau := distAU * AUKilometres / 299792.458 // seconds
	Tau := T - tau/(86400.0*36525.0)
	px, py, pz = k.heliocentric(body, Tau)
	gx, gy, gz = px-ex, py-ey, pz-ez

	return vectorToSpherical(gx, gy, gz)
}

// vectorToSpherical converts an ecliptic rectangular vector in AU to
// latitude/longitude in degrees and distance in km.
func vectorToSpherical(x, y, z float64) (latDeg, lonDeg, distKm float64) {
	r := math.Sqrt(x*x + y*y + z*z)
	lonDeg = utils.NormalizeDegree(deg(math.Atan2(y, x)))
	latDeg = deg(math.Asin(z / r))
	return latDeg, lonDeg, r * AUKilometres
}

func rad(d float64) float64 { return d * math.Pi / 180 }
func deg(r float64) float64 { return r * 180 / math.Pi }
