// Package models defines the core value objects used throughout ndastro.
package models

import "strings"

// Planet identifies a chart body. The set is closed: the nine grahas of the
// traditional chart plus the ascendant point. The zero value marks an empty
// slot (e.g. the owner of nothing).
type Planet int

const (
	PlanetNone Planet = iota
	Sun
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu
	Kethu
	Ascendant
)

var planetNames = [...]string{
	"", "Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn",
	"Rahu", "Kethu", "Ascendant",
}

var planetShortNames = [...]string{
	"", "Su", "Mo", "Ma", "Me", "Ju", "Ve", "Sa", "Ra", "Ke", "Asc",
}

// String returns the English name of the planet.
func (p Planet) String() string {
	if p < 0 || int(p) >= len(planetNames) {
		return ""
	}
	return planetNames[p]
}

// Short returns the two-letter glyph code ("Su", "Mo", ...; "Asc" for the
// ascendant point).
func (p Planet) Short() string {
	if p < 0 || int(p) >= len(planetShortNames) {
		return ""
	}
	return planetShortNames[p]
}

// Valid reports whether p is one of the closed set of chart bodies.
func (p Planet) Valid() bool {
	return p > PlanetNone && int(p) < len(planetNames)
}

// IsNode reports whether p is one of the lunar nodes. The nodes are
// retrograde by definition and are conventionally never annotated as such.
func (p Planet) IsNode() bool {
	return p == Rahu || p == Kethu
}

// PlanetFromName resolves a planet by its English name or short code,
// case-insensitively. Returns PlanetNone when no body matches.
func PlanetFromName(name string) Planet {
	for i := 1; i < len(planetNames); i++ {
		if strings.EqualFold(name, planetNames[i]) || strings.EqualFold(name, planetShortNames[i]) {
			return Planet(i)
		}
	}
	return PlanetNone
}
