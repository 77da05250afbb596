package astro

import (
	"errors"
	"testing"
	"time"
)

func TestSunriseSunsetBangaloreSolstice(t *testing.T) {
	e := testEngine(t)
	date := time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC)

	got, err := e.SunriseSunset(testLat, testLon, date)
	if err != nil {
		t.Fatal(err)
	}
	if got.Sunrise == nil || got.Sunset == nil {
		t.Fatalf("expected both events at tropical latitude, got %+v", got)
	}
	if !got.Sunrise.Before(*got.Sunset) {
		t.Errorf("sunrise %v not before sunset %v", got.Sunrise, got.Sunset)
	}

	dayStart := date
	dayEnd := date.Add(24 * time.Hour)
	for _, at := range []*time.Time{got.Sunrise, got.Sunset} {
		if at.Before(dayStart) || !at.Before(dayEnd) {
			t.Errorf("event %v outside the searched day window", at)
		}
	}

	// Bangalore sunrise on the June solstice is a little after 00:20 UTC
	// (05:50 IST); sunset around 13:20 UTC (18:50 IST).
	if h := got.Sunrise.Hour(); h != 0 {
		t.Errorf("sunrise hour = %d UTC, want 0", h)
	}
	if h := got.Sunset.Hour(); h != 13 {
		t.Errorf("sunset hour = %d UTC, want 13", h)
	}
}

func TestSunriseSunsetPolarNight(t *testing.T) {
	e := testEngine(t)

	// Longyearbyen in late December: the sun never rises.
	got, err := e.SunriseSunset(78.22, 15.64, time.Date(2024, 12, 21, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if got.Sunrise != nil || got.Sunset != nil {
		t.Errorf("expected no events during polar night, got %+v", got)
	}

	// And never sets in late June.
	got, err = e.SunriseSunset(78.22, 15.64, time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if got.Sunrise != nil || got.Sunset != nil {
		t.Errorf("expected no events during polar day, got %+v", got)
	}
}

func TestSunriseSunsetRejectsPoles(t *testing.T) {
	e := testEngine(t)
	_, err := e.SunriseSunset(90, 0, time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC))
	if !errors.Is(err, ErrLatitudeRange) {
		t.Errorf("err = %v, want ErrLatitudeRange", err)
	}
}
