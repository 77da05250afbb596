package ephem

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/seenimoa/ndastro/pkg/models"
)

func TestLoadEmbedded(t *testing.T) {
	k, err := Load("")
	if err != nil {
		t.Fatalf("Load embedded dataset: %v", err)
	}
	if k.Name() == "" {
		t.Error("kernel has empty dataset name")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/elements.json"); err == nil {
		t.Fatal("expected error for missing dataset file")
	}
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for corrupt dataset file")
	}
}

func TestLoadIncompleteDataset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.json")
	partial := `{"name":"partial","bodies":[{"body":"Mercury","a":0.387,"e":0.2,"i":7,"l":252,"w":77,"o":48}]}`
	if err := os.WriteFile(path, []byte(partial), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for dataset missing Earth elements")
	}
}

func TestSunLongitudeAtJ2000(t *testing.T) {
	k := mustLoad(t)
	// Geometric solar longitude at J2000.0 is ~280.37°.
	_, lon, dist, err := k.Position(models.Sun, 0, 0, time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(lon-280.37) > 0.2 {
		t.Errorf("Sun longitude at J2000 = %.4f, want ~280.37", lon)
	}
	// Earth is near perihelion in early January: distance just under 1 AU.
	if dist < 0.97*AUKilometres || dist > 0.99*AUKilometres {
		t.Errorf("Sun distance at J2000 = %.0f km, want ~0.983 AU", dist)
	}
}

func TestSunLongitudeNearEquinox(t *testing.T) {
	k := mustLoad(t)
	// 2024 March equinox: 2024-03-20 03:06 UTC, solar longitude crosses 0°.
	_, lon, _, err := k.Position(models.Sun, 0, 0, time.Date(2024, 3, 20, 3, 6, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	// Wrap-aware distance from 0°.
	d := math.Min(lon, 360-lon)
	if d > 0.2 {
		t.Errorf("Sun longitude at 2024 equinox = %.4f, want within 0.2 of 0/360", lon)
	}
}

func TestMoonAgainstMeeus47a(t *testing.T) {
	// Meeus, Astronomical Algorithms, example 47.a: 1992 April 12.0 TD.
	// λ = 133.162655°, β = -3.229126°, Δ = 368409.7 km (full series).
	// The instant below is 1992-04-12 00:00 TT expressed in UTC using the
	// kernel's fixed TT offset.
	tt := time.Date(1992, 4, 12, 0, 0, 0, 0, time.UTC).Add(-time.Duration(ttOffsetSeconds * float64(time.Second)))
	lat, lon, dist := moonGeocentric(tt)

	if math.Abs(lon-133.1627) > 0.05 {
		t.Errorf("Moon longitude = %.4f, want 133.1627 ± 0.05", lon)
	}
	if math.Abs(lat-(-3.2291)) > 0.02 {
		t.Errorf("Moon latitude = %.4f, want -3.2291 ± 0.02", lat)
	}
	if math.Abs(dist-368409.7) > 500 {
		t.Errorf("Moon distance = %.1f km, want 368409.7 ± 500", dist)
	}
}

func TestMeanLunarNode(t *testing.T) {
	// Meeus example 47.a epoch: Ω ≈ 11.2531°.
	tt := time.Date(1992, 4, 12, 0, 0, 0, 0, time.UTC).Add(-time.Duration(ttOffsetSeconds * float64(time.Second)))
	if got := MeanLunarNode(tt); math.Abs(got-11.2531) > 0.01 {
		t.Errorf("MeanLunarNode = %.4f, want 11.2531 ± 0.01", got)
	}
}

func TestMoonTopocentricShift(t *testing.T) {
	k := mustLoad(t)
	at := time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)

	_, geoLon, _, err := k.Position(models.Moon, 0, 0, at)
	if err != nil {
		t.Fatal(err)
	}
	_, topoLon, _, err := k.Position(models.Moon, 60, 77, at)
	if err != nil {
		t.Fatal(err)
	}

	// The lunar parallax shifts the apparent longitude by up to ~1°,
	// and must differ between observers.
	diff := math.Abs(geoLon - topoLon)
	if diff > 180 {
		diff = 360 - diff
	}
	if diff == 0 {
		t.Error("topocentric correction had no effect on lunar longitude")
	}
	if diff > 1.5 {
		t.Errorf("lunar parallax shift = %.4f°, implausibly large", diff)
	}
}

func TestUnsupportedBody(t *testing.T) {
	k := mustLoad(t)
	for _, b := range []models.Planet{models.Rahu, models.Kethu, models.Ascendant, models.PlanetNone} {
		if _, _, _, err := k.Position(b, 0, 0, time.Now().UTC()); err == nil {
			t.Errorf("Position(%v) succeeded, want ErrUnsupportedBody", b)
		}
	}
}

func mustLoad(t *testing.T) *Kernel {
	t.Helper()
	k, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return k
}
