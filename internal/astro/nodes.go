package astro

import (
	"time"

	"github.com/seenimoa/ndastro/internal/ephem"
	"github.com/seenimoa/ndastro/pkg/models"
	"github.com/seenimoa/ndastro/pkg/utils"
)

// LunarNodes returns the tropical positions of Rahu and Kethu at t. Rahu is
// the ascending node of the lunar orbit; Kethu is exactly opposite. The
// call is ayanamsa-independent: only tropical longitudes are populated, and
// both nodes carry the by-definition retrograde flag. The nodes lie on the
// ecliptic, so their latitude is zero by construction.
func (e *Engine) LunarNodes(t time.Time) (rahu, kethu models.PlanetPosition) {
	rahuLon := ephem.MeanLunarNode(t)
	kethuLon := utils.NormalizeDegree(rahuLon + 180)

	rahu = models.PlanetPosition{
		Planet:     models.Rahu,
		Name:       models.Rahu.String(),
		ShortName:  models.Rahu.Short(),
		Longitude:  rahuLon,
		Retrograde: true,
	}
	kethu = models.PlanetPosition{
		Planet:     models.Kethu,
		Name:       models.Kethu.String(),
		ShortName:  models.Kethu.Short(),
		Longitude:  kethuLon,
		Retrograde: true,
	}
	return rahu, kethu
}
