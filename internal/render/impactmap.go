package render

import (
	"math"
	"strings"

	"github.com/couchcryptid/impact-sim/internal/domain"
)

// Map draws the destruction zones as concentric rings of characters
// centered on the impact point. Vertical distances are doubled to
// compensate for terminal character aspect ratio, and the scale is chosen
// so the largest zone just fits the grid.
func (r *Renderer) Map(result domain.ImpactResult) string {
	width, height := r.mapWidth, r.mapHeight

	grid := make([][]byte, height)
	for y := range grid {
		grid[y] = filledRow(' ', width)
	}

	centerX := width / 2
	centerY := height / 2

	var maxRadius float64
	for _, z := range result.Zones {
		if z.RadiusKm > maxRadius {
			maxRadius = z.RadiusKm
		}
	}

	// km per character cell.
	scale := 1.0
	if maxRadius > 0 {
		fit := min(width, height)/2 - 2
		if fit < 1 {
			fit = 1
		}
		scale = maxRadius / float64(fit)
	}

	// Paint outermost zone first so inner rings overwrite it.
	for i := len(zoneDisplay) - 1; i >= 0; i-- {
		zd := zoneDisplay[i]
		for _, z := range result.Zones {
			if z.Label != zd.label || z.RadiusKm <= 0 {
				continue
			}
			radiusCells := z.RadiusKm / scale
			for y := 0; y < height; y++ {
				for x := 0; x < width; x++ {
					dx := float64(x - centerX)
					dy := float64(y-centerY) * 2
					if math.Sqrt(dx*dx+dy*dy) <= radiusCells {
						grid[y][x] = zd.glyph
					}
				}
			}
		}
	}

	grid[centerY][centerX] = 'X'

	rows := make([]string, height)
	for y, row := range grid {
		rows[y] = string(row)
	}
	return strings.Join(rows, "\n") + "\n"
}

func filledRow(fill byte, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = fill
	}
	return b
}
