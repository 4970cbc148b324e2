package render

import (
	"fmt"
	"strings"

	"github.com/couchcryptid/impact-sim/internal/cities"
	"github.com/couchcryptid/impact-sim/internal/config"
	"github.com/couchcryptid/impact-sim/internal/domain"
)

// Renderer formats ImpactResult values for the terminal.
type Renderer struct {
	mapWidth  int
	mapHeight int
	styles    Styles
}

// New builds a Renderer from the map dimensions and color preference in
// cfg.
func New(cfg *config.Config) *Renderer {
	styles := newStyles()
	if cfg.NoColor {
		styles = plainStyles()
	}
	return &Renderer{
		mapWidth:  cfg.MapWidth,
		mapHeight: cfg.MapHeight,
		styles:    styles,
	}
}

// zoneDisplay maps zone labels to their map glyph and human name, in
// severity order (innermost first).
var zoneDisplay = []struct {
	label domain.ZoneLabel
	glyph byte
	name  string
}{
	{domain.ZoneFireball, '*', "Fireball"},
	{domain.ZoneTotalDestruction, '#', "Total Destruction"},
	{domain.ZoneSevereDamage, 'O', "Severe Damage"},
	{domain.ZoneModerateDamage, 'o', "Moderate Damage"},
	{domain.ZoneLightDamage, '.', "Light Damage"},
}

// Summary renders the numeric impact analysis with units.
func (r *Renderer) Summary(result domain.ImpactResult) string {
	s := r.styles
	rule := s.Muted.Render(strings.Repeat("=", 70))

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString(s.Title.Render("IMPACT ANALYSIS") + "\n")
	b.WriteString(rule + "\n\n")

	p := result.Parameters
	b.WriteString(s.Section.Render("IMPACTOR PROPERTIES") + "\n")
	r.line(&b, "Diameter", fmt.Sprintf("%.1f meters", p.DiameterM))
	r.line(&b, "Velocity", fmt.Sprintf("%.1f m/s (%.1f km/h)", p.VelocityMps, p.VelocityMps*3.6))
	r.line(&b, "Material", string(p.Material))
	r.line(&b, "Density", fmt.Sprintf("%.0f kg/m³", result.DensityKgM3))
	r.line(&b, "Mass", fmt.Sprintf("%.2e kg (%.2e tonnes)", result.MassKg, result.MassKg/1000))

	b.WriteString("\n" + s.Section.Render("IMPACT EFFECTS") + "\n")
	r.line(&b, "Kinetic Energy", fmt.Sprintf("%.2e joules", result.KineticEnergyJ))
	r.line(&b, "TNT Equivalent", formatYield(result.TNTKilotons))
	r.line(&b, "Crater Diameter", formatDistanceM(result.CraterDiameterM))
	r.line(&b, "Crater Depth", formatDistanceM(result.CraterDepthM))
	r.line(&b, "Target Surface", string(p.Surface))

	b.WriteString("\n" + s.Section.Render("DESTRUCTION ZONES") + "\n")
	for _, zd := range zoneDisplay {
		for _, z := range result.Zones {
			if z.Label == zd.label {
				r.line(&b, zd.name, fmt.Sprintf("%.2f km", z.RadiusKm))
			}
		}
	}

	b.WriteString("\n" + rule + "\n")
	return b.String()
}

// Comparisons renders the historical-event section: the log-nearest
// event plus a multiple for every event the yield clears.
func (r *Renderer) Comparisons(result domain.ImpactResult) string {
	s := r.styles

	var b strings.Builder
	b.WriteString(s.Section.Render("COMPARISONS") + "\n")

	nearest := result.Comparison.Nearest
	nearestLine := fmt.Sprintf("Closest in scale to the %s (%s)",
		nearest.Name, formatYield(nearest.TNTKilotons))
	if nearest.Name == "Chicxulub impact" {
		b.WriteString("  " + s.Danger.Render(nearestLine) + "\n")
	} else {
		b.WriteString("  " + s.Value.Render(nearestLine) + "\n")
	}

	multiples, err := domain.EventMultiples(result.TNTKilotons)
	if err != nil || len(multiples) == 0 {
		b.WriteString(s.Muted.Render("  Impact too small for meaningful comparisons") + "\n")
		return b.String()
	}
	for _, m := range multiples {
		b.WriteString(fmt.Sprintf("  ≈ %s %s\n",
			s.Warning.Render(formatMultiple(m.Multiple)+"x"), m.Event.Name))
	}
	return b.String()
}

// Legend renders the map legend including the impact location, if any.
func (r *Renderer) Legend(result domain.ImpactResult) string {
	s := r.styles

	var b strings.Builder
	if result.Parameters.City != "" {
		if c, ok := cities.Get(result.Parameters.City); ok {
			b.WriteString(fmt.Sprintf("%s %s (%s)\n",
				s.Label.Render("Impact Location:"), c.Name, c.Country))
			b.WriteString(fmt.Sprintf("%s %.2f°%s, %.2f°%s\n",
				s.Label.Render("Coordinates:"),
				abs(c.Latitude), northSouth(c.Latitude),
				abs(c.Longitude), eastWest(c.Longitude)))
			b.WriteString(fmt.Sprintf("%s %s (Metro: %s)\n",
				s.Label.Render("Population:"),
				formatPopulation(c.Population), formatPopulation(c.MetroPopulation)))
		}
	}

	b.WriteString(s.Section.Render("Legend:") + "\n")
	b.WriteString("  X = Impact Point\n")
	for _, zd := range zoneDisplay {
		for _, z := range result.Zones {
			if z.Label == zd.label {
				b.WriteString(fmt.Sprintf("  %c = %s (%.1f km)\n", zd.glyph, zd.name, z.RadiusKm))
			}
		}
	}
	return b.String()
}

// Report renders the full textual report: summary, comparisons, map, and
// legend.
func (r *Renderer) Report(result domain.ImpactResult) string {
	var b strings.Builder
	b.WriteString(r.Summary(result))
	b.WriteString("\n")
	b.WriteString(r.Comparisons(result))
	b.WriteString("\n")
	b.WriteString(r.Map(result))
	b.WriteString("\n")
	b.WriteString(r.Legend(result))
	return b.String()
}

func (r *Renderer) line(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %s %s\n",
		r.styles.Label.Render(fmt.Sprintf("%-17s", label+":")),
		r.styles.Value.Render(value))
}

// formatYield picks kilotons or megatons depending on magnitude.
func formatYield(kt float64) string {
	switch {
	case kt >= 1e6:
		return fmt.Sprintf("%.2e megatons of TNT", kt/1000)
	case kt >= 1000:
		return fmt.Sprintf("%.2f megatons of TNT", kt/1000)
	default:
		return fmt.Sprintf("%.2f kilotons of TNT", kt)
	}
}

// formatDistanceM picks meters or kilometers depending on magnitude.
func formatDistanceM(m float64) string {
	if m >= 10_000 {
		return fmt.Sprintf("%.1f km", m/1000)
	}
	return fmt.Sprintf("%.1f meters", m)
}

// formatMultiple avoids rendering "0.00x" for very small multiples.
func formatMultiple(v float64) string {
	if v >= 0.01 && v < 1e6 {
		return fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("%.2e", v)
}

// formatPopulation adds thousands separators, e.g. 8336817 -> 8,336,817.
func formatPopulation(n int) string {
	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return b.String()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func northSouth(lat float64) string {
	if lat < 0 {
		return "S"
	}
	return "N"
}

func eastWest(lon float64) string {
	if lon < 0 {
		return "W"
	}
	return "E"
}
