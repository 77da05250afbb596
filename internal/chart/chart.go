// Package chart renders kattam charts as self-contained SVG documents.
// Rendering is deterministic: identical inputs produce byte-identical
// markup.
package chart

import (
	"fmt"
	"strings"
)

// Translator resolves display strings for chart labels and planet glyphs.
// Keys that have no translation render as themselves.
type Translator interface {
	Translate(key string) string
}

// Config holds the rendering parameters of the square chart.
type Config struct {
	Size        float64 // logical viewbox edge
	FillColor   string  // chart background
	BorderColor string  // cell borders
	TextColor   string  // planet glyphs and centre text
	AccentColor string  // ascendant marks and its house numeral
}

// DefaultConfig returns the traditional yellow-paper palette.
func DefaultConfig() Config {
	return Config{
		Size:        100,
		FillColor:   "#fff59d",
		BorderColor: "#FF0000",
		TextColor:   "#000000",
		AccentColor: "red",
	}
}

// Grid geometry and placement constants.
const (
	cellCount   = 4
	borderWidth = 0.5

	// House numeral font shrinks once a cell holds more than
	// maxPlanetsPerCell glyphs.
	maxPlanetsPerCell = 4
	houseNumMaxFont   = 4.0
	houseNumMinFont   = 1.0

	// Planet glyphs sit along a diagonal fraction of the cell derived from
	// the degrees advanced within the rasi, clamped and nudged apart.
	planetFracMin          = 0.2
	planetFracMax          = 0.8
	planetTopOffset        = 0.3
	planetSlotHeightFactor = 0.6
	planetOverlapOffset    = 0.05

	// Ascendant double-tick diagonal offsets, as cell fractions.
	lagnaLineOffset1 = 0.2
	lagnaLineOffset2 = 0.25

	// Retrograde superscript.
	retroSuperscriptDy    = -1.5
	retroSuperscriptScale = 0.6

	// Centre birth-details block.
	centerTextFont        = 3.5
	centerTextLineSpacing = 2
)

// romanHouses maps house numbers 1..12 onto their numerals.
var romanHouses = [...]string{
	"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII",
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string { return xmlEscaper.Replace(s) }

// num formats a coordinate or size for SVG output with a fixed precision,
// keeping the byte stream stable across runs.
func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
