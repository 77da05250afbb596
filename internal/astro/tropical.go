package astro

import (
	"fmt"
	"math"
	"time"

	"github.com/seenimoa/ndastro/internal/ephem"
	"github.com/seenimoa/ndastro/pkg/models"
	"github.com/seenimoa/ndastro/pkg/utils"
)

// chartBodies is the fixed order bodies appear in chart output. The lunar
// nodes are appended separately; they have no ephemeris solution of their
// own.
var chartBodies = []models.Planet{
	models.Sun, models.Moon, models.Mercury, models.Venus,
	models.Mars, models.Jupiter, models.Saturn,
}

// tropicalPosition is the raw stage of a body before the sidereal resolver
// runs: apparent ecliptic coordinates in the tropical frame.
type tropicalPosition struct {
	planet models.Planet
	lat    float64
	lon    float64
	distKm float64
}

// tropicalPositions queries the provider for the seven ephemeris bodies and
// appends the two lunar nodes.
func (e *Engine) tropicalPositions(lat, lon float64, t time.Time) ([]tropicalPosition, error) {
	out := make([]tropicalPosition, 0, len(chartBodies)+2)
	for _, body := range chartBodies {
		bLat, bLon, bDist, err := e.eph.Position(body, lat, lon, t)
		if err != nil {
			return nil, fmt.Errorf("tropical position of %s: %w", body, err)
		}
		out = append(out, tropicalPosition{planet: body, lat: bLat, lon: bLon, distKm: bDist})
	}

	rahu, kethu := e.LunarNodes(t)
	out = append(out,
		tropicalPosition{planet: models.Rahu, lon: rahu.Longitude},
		tropicalPosition{planet: models.Kethu, lon: kethu.Longitude},
	)
	return out, nil
}

// TropicalAscendantLongitude computes the rising-point ecliptic longitude
// from local sidereal time and the mean obliquity. The two-argument
// arctangent resolves the quadrant; a plain atan is insufficient.
func (e *Engine) TropicalAscendantLongitude(t time.Time, lat, lon float64) (float64, error) {
	if err := validateObserver(lat, lon); err != nil {
		return 0, err
	}

	oer := rad(ephem.MeanObliquity(t))

	lst := math.Mod(ephem.GMSTHours(t)+lon/15, 24)
	if lst < 0 {
		lst += 24
	}
	lstr := rad(lst * 15)

	ascr := math.Atan2(math.Cos(lstr), -(math.Sin(lstr)*math.Cos(oer) + math.Tan(rad(lat))*math.Sin(oer)))
	return utils.NormalizeDegree(deg(ascr)), nil
}

func rad(d float64) float64 { return d * math.Pi / 180 }
func deg(r float64) float64 { return r * 180 / math.Pi }
