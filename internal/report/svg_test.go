package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/coilworks/springpack/internal/spring"
)

func TestPackLayoutSVG(t *testing.T) {
	g := spring.Geometry{
		WireDiameter: 3.5, MeanDiameter: 40, ActiveCoils: 4,
		PackCount: 6, BoltCircleRadius: 87,
	}

	svg := PackLayoutSVG(g, 400)
	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, "stroke-dasharray") {
		t.Error("multi-spring pack should draw the bolt circle")
	}
	// One envelope ring, one bolt circle, two circles per coil.
	if got := strings.Count(svg, "<circle"); got != 2+2*g.PackCount {
		t.Errorf("circle count = %d, want %d", got, 2+2*g.PackCount)
	}
}

func TestPackLayoutSVGSingleSpring(t *testing.T) {
	g := spring.Geometry{WireDiameter: 5, MeanDiameter: 40, ActiveCoils: 8, PackCount: 1}

	svg := PackLayoutSVG(g, 400)
	if strings.Contains(svg, "stroke-dasharray") {
		t.Error("single spring has no bolt circle")
	}
	if got := strings.Count(svg, "<circle"); got != 3 {
		t.Errorf("circle count = %d, want 3", got)
	}
}

func TestPackLayoutSVGInvalid(t *testing.T) {
	if svg := PackLayoutSVG(spring.Geometry{}, 400); svg != "" {
		t.Error("empty geometry should produce no drawing")
	}
}

func TestExportLayoutSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.svg")
	g := spring.Geometry{WireDiameter: 5, MeanDiameter: 40, ActiveCoils: 8, PackCount: 1}

	if err := ExportLayoutSVG(path, g, 300); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "</svg>") {
		t.Error("file is not a complete SVG document")
	}

	if err := ExportLayoutSVG(path, spring.Geometry{}, 300); err == nil {
		t.Error("expected error for undrawable geometry")
	}
}
