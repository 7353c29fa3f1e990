package report

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/coilworks/springpack/internal/spring"
)

// PackLayoutSVG draws the pack cross-section: each coil as an annulus on
// the bolt circle, the bolt circle dashed, the envelope as the outer ring.
// size is the image edge in pixels.
func PackLayoutSVG(g spring.Geometry, size int) string {
	packOD := g.PackOuterDiameter()
	if packOD <= 0 {
		return ""
	}

	// mm to px, 10% padding around the envelope
	scale := float64(size) / (packOD * 1.2)
	centre := float64(size) / 2

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, size, size, size, size))

	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="#444444" stroke-width="1"/>
`, centre, centre, packOD/2*scale))

	if g.PackCount > 1 && g.BoltCircleRadius > 0 {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="#888888" stroke-width="0.5" stroke-dasharray="4 4"/>
`, centre, centre, g.BoltCircleRadius*scale))
	}

	sb.WriteString(`<g fill="none" stroke="#00ff00" stroke-width="1.5">
`)
	for i := 0; i < g.PackCount; i++ {
		angle := 2 * math.Pi * float64(i) / float64(g.PackCount)
		cx := centre + g.BoltCircleRadius*scale*math.Cos(angle)
		cy := centre + g.BoltCircleRadius*scale*math.Sin(angle)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, g.OuterDiameter()/2*scale))
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, g.InnerDiameter()/2*scale))
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// ExportLayoutSVG writes the pack cross-section of one geometry to path.
func ExportLayoutSVG(path string, g spring.Geometry, size int) error {
	svg := PackLayoutSVG(g, size)
	if svg == "" {
		return fmt.Errorf("geometry has no drawable envelope")
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
