package chart

import (
	"fmt"
	"sort"
	"strings"

	"github.com/seenimoa/ndastro/pkg/models"
)

// southLayout fixes each rasi's (col,row) in the 4×4 grid of the
// traditional South Indian chart. Rasi positions never rotate; only house
// numbering and occupancy follow the ascendant.
var southLayout = map[models.Rasi][2]int{
	models.Aries:       {1, 0},
	models.Taurus:      {2, 0},
	models.Gemini:      {3, 0},
	models.Cancer:      {3, 1},
	models.Leo:         {3, 2},
	models.Virgo:       {3, 3},
	models.Libra:       {2, 3},
	models.Scorpio:     {1, 3},
	models.Sagittarius: {0, 3},
	models.Capricorn:   {0, 2},
	models.Aquarius:    {0, 1},
	models.Pisces:      {0, 0},
}

// centerCells is the 2×2 block reserved for the birth-details text.
var centerCells = map[[2]int]bool{
	{1, 1}: true, {1, 2}: true, {2, 1}: true, {2, 2}: true,
}

// placedGlyph is a planet glyph with its resolved diagonal fraction.
type placedGlyph struct {
	pos  models.PlanetPosition
	frac float64
}

// SouthIndianSVG renders the 12 kattams and birth details with the default
// palette.
func SouthIndianSVG(kattams []models.Kattam, birth models.BirthDetails, tr Translator) string {
	return RenderSouthIndian(kattams, birth, tr, DefaultConfig())
}

// RenderSouthIndian builds the complete SVG document. Cells are visited in
// fixed rasi order and every float is formatted with fixed precision, so
// the output is byte-identical for identical inputs.
func RenderSouthIndian(kattams []models.Kattam, birth models.BirthDetails, tr Translator, cfg Config) string {
	cell := cfg.Size / cellCount

	byRasi := make(map[models.Rasi]models.Kattam, len(kattams))
	var ascRasi models.Rasi
	for _, k := range kattams {
		byRasi[k.Rasi] = k
		if k.IsAscendant {
			ascRasi = k.Rasi
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="100%%" height="100%%" viewBox="0 0 %s %s">`,
		num(cfg.Size), num(cfg.Size)))
	sb.WriteString("\n<style>text{font-family:Arial;dominant-baseline:middle;}</style>\n")
	sb.WriteString(fmt.Sprintf(`<rect x="0" y="0" width="%s" height="%s" fill="%s"/>`,
		num(cfg.Size), num(cfg.Size), cfg.FillColor))
	sb.WriteString("\n")

	drawBorders(&sb, cfg, cell)

	for rasi := models.Rasi(1); rasi <= models.TotalRasis; rasi++ {
		drawHouse(&sb, cfg, cell, byRasi[rasi], ascRasi, tr)
	}

	drawCenterText(&sb, cfg, birth, tr)

	sb.WriteString("</svg>")
	return sb.String()
}

// drawBorders outlines the 12 outer cells, skipping the centre 2×2 block.
func drawBorders(sb *strings.Builder, cfg Config, cell float64) {
	for row := 0; row < cellCount; row++ {
		for col := 0; col < cellCount; col++ {
			if centerCells[[2]int{row, col}] {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" stroke="%s" fill="none" stroke-width="%s"/>`,
				num(float64(col)*cell), num(float64(row)*cell), num(cell), num(cell), cfg.BorderColor, num(borderWidth)))
			sb.WriteString("\n")
		}
	}
}

// drawHouse renders one cell: house numeral, ascendant marks and planet
// glyphs.
func drawHouse(sb *strings.Builder, cfg Config, cell float64, k models.Kattam, ascRasi models.Rasi, tr Translator) {
	layout := southLayout[k.Rasi]
	x0 := float64(layout[0]) * cell
	y0 := float64(layout[1]) * cell

	glyphs := placeGlyphs(k.Planets)

	fontSize := houseNumMaxFont
	if n := len(glyphs); n > maxPlanetsPerCell {
		fontSize = houseNumMaxFont * maxPlanetsPerCell / float64(n)
		if fontSize < houseNumMinFont {
			fontSize = houseNumMinFont
		}
	}

	// House numeral in the top-right corner.
	numeralColor := cfg.TextColor
	if k.Rasi == ascRasi {
		numeralColor = cfg.AccentColor
	}
	hx := x0 + cell - fontSize*0.5
	hy := y0 + fontSize*0.8
	sb.WriteString(fmt.Sprintf(`<text x="%s" y="%s" text-anchor="end" font-size="%s" fill="%s">%s</text>`,
		num(hx), num(hy), num(fontSize), numeralColor, romanHouses[k.House-1]))
	sb.WriteString("\n")

	// Ascendant diagonal double tick.
	if k.Rasi == ascRasi {
		for _, offset := range []float64{lagnaLineOffset1 * cell, lagnaLineOffset2 * cell} {
			sb.WriteString(fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`,
				num(x0), num(y0+offset), num(x0+offset), num(y0), cfg.AccentColor, num(borderWidth)))
			sb.WriteString("\n")
		}
	}

	if len(glyphs) == 0 {
		return
	}

	startY := y0 + planetTopOffset*cell
	slotHeight := cell * planetSlotHeightFactor / float64(len(glyphs))

	for i, g := range glyphs {
		px := x0 + cell*g.frac
		py := startY + float64(i)*slotHeight
		label := escapeXML(tr.Translate(g.pos.ShortName))

		if g.pos.Retrograde && !g.pos.Planet.IsNode() {
			sb.WriteString(fmt.Sprintf(`<text x="%s" y="%s" text-anchor="middle" font-size="%s" fill="%s">%s<tspan dy="%s" font-size="%s">℞</tspan></text>`,
				num(px), num(py), num(fontSize), cfg.TextColor, label,
				num(retroSuperscriptDy), num(fontSize*retroSuperscriptScale)))
		} else {
			sb.WriteString(fmt.Sprintf(`<text x="%s" y="%s" text-anchor="middle" font-size="%s" fill="%s">%s</text>`,
				num(px), num(py), num(fontSize), cfg.TextColor, label))
		}
		sb.WriteString("\n")
	}
}

// placeGlyphs orders a cell's occupants by degrees advanced and assigns
// each a diagonal fraction, nudging near-coincident glyphs apart. Ties in
// advancement break by body identity so the order is total.
func placeGlyphs(planets []models.PlanetPosition) []placedGlyph {
	if len(planets) == 0 {
		return nil
	}

	sorted := make([]models.PlanetPosition, len(planets))
	copy(sorted, planets)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].AdvancedBy != sorted[j].AdvancedBy {
			return sorted[i].AdvancedBy < sorted[j].AdvancedBy
		}
		return sorted[i].Planet < sorted[j].Planet
	})

	glyphs := make([]placedGlyph, 0, len(sorted))
	taken := make([]float64, 0, len(sorted))
	for _, p := range sorted {
		frac := planetFracMin + planetSlotHeightFactor*(p.AdvancedBy/30.0)
		overlaps := 0
		for _, t := range taken {
			if abs(t-frac) < planetOverlapOffset {
				overlaps++
			}
		}
		if overlaps > 0 {
			frac += float64(overlaps) * planetOverlapOffset
		}
		if frac > planetFracMax {
			frac = planetFracMax
		}
		taken = append(taken, frac)
		glyphs = append(glyphs, placedGlyph{pos: p, frac: frac})
	}
	return glyphs
}

// drawCenterText writes the birth-details block into the centre 2×2 area.
func drawCenterText(sb *strings.Builder, cfg Config, birth models.BirthDetails, tr Translator) {
	cx := cfg.Size / 2
	cy := cfg.Size / 2

	lines := []string{
		birth.Name,
		fmt.Sprintf("%s: %s", tr.Translate("Date"), birth.Date),
		fmt.Sprintf("%s: %s", tr.Translate("Time"), birth.Time),
		fmt.Sprintf("%s: %s", tr.Translate("Place"), birth.Place),
	}
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		y := cy + float64(i-1)*centerTextFont*centerTextLineSpacing
		sb.WriteString(fmt.Sprintf(`<text x="%s" y="%s" text-anchor="middle" font-size="%s" fill="%s">%s</text>`,
			num(cx), num(y), num(centerTextFont), cfg.TextColor, escapeXML(line)))
		sb.WriteString("\n")
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
