package models

import (
	"encoding/json"
	"testing"
)

func TestPlanetNames(t *testing.T) {
	tests := []struct {
		planet Planet
		name   string
		short  string
	}{
		{Sun, "Sun", "Su"},
		{Moon, "Moon", "Mo"},
		{Mars, "Mars", "Ma"},
		{Mercury, "Mercury", "Me"},
		{Jupiter, "Jupiter", "Ju"},
		{Venus, "Venus", "Ve"},
		{Saturn, "Saturn", "Sa"},
		{Rahu, "Rahu", "Ra"},
		{Kethu, "Kethu", "Ke"},
		{Ascendant, "Ascendant", "Asc"},
	}
	for _, tt := range tests {
		if got := tt.planet.String(); got != tt.name {
			t.Errorf("%v.String(): got %q, want %q", int(tt.planet), got, tt.name)
		}
		if got := tt.planet.Short(); got != tt.short {
			t.Errorf("%s.Short(): got %q, want %q", tt.name, got, tt.short)
		}
		if !tt.planet.Valid() {
			t.Errorf("%s should be valid", tt.name)
		}
	}

	if PlanetNone.Valid() {
		t.Error("PlanetNone should not be valid")
	}
	if got := Planet(99).String(); got != "" {
		t.Errorf("out-of-range planet name: got %q", got)
	}
}

func TestPlanetIsNode(t *testing.T) {
	if !Rahu.IsNode() || !Kethu.IsNode() {
		t.Error("Rahu and Kethu are the lunar nodes")
	}
	for _, p := range []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Ascendant} {
		if p.IsNode() {
			t.Errorf("%s should not be a node", p)
		}
	}
}

func TestPlanetFromName(t *testing.T) {
	tests := []struct {
		in   string
		want Planet
	}{
		{"Sun", Sun},
		{"sun", Sun},
		{"SU", Sun},
		{"kethu", Kethu},
		{"Asc", Ascendant},
		{"ascendant", Ascendant},
		{"Pluto", PlanetNone},
		{"", PlanetNone},
	}
	for _, tt := range tests {
		if got := PlanetFromName(tt.in); got != tt.want {
			t.Errorf("PlanetFromName(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRasiOwners(t *testing.T) {
	tests := []struct {
		rasi  Rasi
		owner Planet
	}{
		{Aries, Mars},
		{Taurus, Venus},
		{Gemini, Mercury},
		{Cancer, Moon},
		{Leo, Sun},
		{Virgo, Mercury},
		{Libra, Venus},
		{Scorpio, Mars},
		{Sagittarius, Jupiter},
		{Capricorn, Saturn},
		{Aquarius, Saturn},
		{Pisces, Jupiter},
	}
	for _, tt := range tests {
		if got := tt.rasi.Owner(); got != tt.owner {
			t.Errorf("%s.Owner(): got %v, want %v", tt.rasi, got, tt.owner)
		}
	}
	if got := Rasi(0).Owner(); got != PlanetNone {
		t.Errorf("invalid rasi owner: got %v", got)
	}
}

func TestRasiValidity(t *testing.T) {
	for r := Rasi(1); r <= TotalRasis; r++ {
		if !r.Valid() {
			t.Errorf("rasi %d should be valid", r)
		}
		if r.String() == "" {
			t.Errorf("rasi %d has no name", r)
		}
	}
	for _, r := range []Rasi{0, 13, -1} {
		if r.Valid() {
			t.Errorf("rasi %d should be invalid", r)
		}
	}
}

func TestNakshatraNames(t *testing.T) {
	if got := Nakshatra(1).String(); got != "Ashwini" {
		t.Errorf("first nakshatra: got %q, want Ashwini", got)
	}
	if got := Nakshatra(27).String(); got != "Revati" {
		t.Errorf("last nakshatra: got %q, want Revati", got)
	}
	for n := Nakshatra(1); n <= TotalNakshatras; n++ {
		if !n.Valid() || n.String() == "" {
			t.Errorf("nakshatra %d invalid or unnamed", n)
		}
	}
	if Nakshatra(0).Valid() || Nakshatra(28).Valid() {
		t.Error("out-of-range nakshatras should be invalid")
	}
}

func TestPlanetPositionJSONKeys(t *testing.T) {
	p := PlanetPosition{
		Planet:      Moon,
		Name:        "Moon",
		ShortName:   "Mo",
		SiderealLon: 123.45,
		Rasi:        Leo,
		House:       2,
		Nakshatra:   Nakshatra(10),
		Pada:        3,
	}
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}

	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{
		"nirayana_longitude", "rasi_occupied", "house_posited_at",
		"natchaththiram", "paatham", "retrograde",
	} {
		if _, ok := m[key]; !ok {
			t.Errorf("wire key %q missing: %s", key, data)
		}
	}
}
