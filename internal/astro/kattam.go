package astro

import (
	"time"

	"github.com/seenimoa/ndastro/pkg/models"
	"github.com/seenimoa/ndastro/pkg/utils"
)

// Kattams computes the 12 squares of the chart for the given observer and
// instant. The result is all-or-nothing: exactly 12 records ordered by
// house number, house 1 on the ascendant's rasi, or an error.
//
// Grouping is a single O(n) pass over the resolved positions; the
// ascendant point itself is grouped into its square alongside any planets
// sharing the rasi.
func (e *Engine) Kattams(lat, lon float64, t time.Time, ayanamsaName string) ([]models.Kattam, error) {
	asc, err := e.Ascendant(t, lat, lon, ayanamsaName)
	if err != nil {
		return nil, err
	}
	positions, err := e.PlanetPositions(lat, lon, t, ayanamsaName)
	if err != nil {
		return nil, err
	}

	byRasi := make(map[models.Rasi][]models.PlanetPosition, models.TotalRasis)
	for _, p := range positions {
		byRasi[p.Rasi] = append(byRasi[p.Rasi], p)
	}
	byRasi[asc.Rasi] = append(byRasi[asc.Rasi], asc)

	kattams := make([]models.Kattam, 0, models.TotalRasis)
	for house := 1; house <= models.TotalRasis; house++ {
		rasi := models.Rasi(utils.WrapRasi(int(asc.Rasi) + house - 1))
		k := models.Kattam{
			Order:       int(rasi),
			IsAscendant: rasi == asc.Rasi,
			Owner:       rasi.Owner(),
			Rasi:        rasi,
			House:       house,
			Planets:     byRasi[rasi],
		}
		if k.IsAscendant {
			k.AscLongitude = asc.Longitude
		}
		kattams = append(kattams, k)
	}
	return kattams, nil
}
