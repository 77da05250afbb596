package astro

import (
	"time"

	"github.com/seenimoa/ndastro/internal/ephem"
	"github.com/seenimoa/ndastro/pkg/models"
	"github.com/seenimoa/ndastro/pkg/utils"
)

// motionSampleInterval is the spacing of the two longitude samples the
// default detector compares.
const motionSampleInterval = 6 * time.Hour

// Detector classifies apparent motion direction for a body. The lunar
// nodes never pass through a Detector: they are retrograde by definition.
type Detector interface {
	IsRetrograde(body models.Planet, lat, lon float64, t time.Time) (bool, error)
}

// motionDetector samples apparent longitude at two nearby instants and
// reports retrograde when the body moves westward against the zodiac.
type motionDetector struct {
	eph ephem.Provider
}

// NewMotionDetector builds the default ephemeris-backed Detector.
func NewMotionDetector(p ephem.Provider) Detector {
	return &motionDetector{eph: p}
}

func (d *motionDetector) IsRetrograde(body models.Planet, lat, lon float64, t time.Time) (bool, error) {
	_, lon1, _, err := d.eph.Position(body, lat, lon, t)
	if err != nil {
		return false, err
	}
	_, lon2, _, err := d.eph.Position(body, lat, lon, t.Add(motionSampleInterval))
	if err != nil {
		return false, err
	}
	return utils.SignedDelta(lon1, lon2) < 0, nil
}
