package spring

import (
	"errors"
	"math"
	"testing"
)

func testGeometry() Geometry {
	return Geometry{
		Type:         Compression,
		WireDiameter: 5,
		MeanDiameter: 40,
		ActiveCoils:  10,
		PackCount:    4,
		Arrangement:  Parallel,
	}
}

func TestEvaluateRate(t *testing.T) {
	eng := NewEngine(MusicWire)
	g := testGeometry()

	resp, err := eng.Evaluate(g, 10)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}

	d, dm, na := g.WireDiameter, g.MeanDiameter, g.ActiveCoils
	wantRate := MusicWire.ShearModulus * d * d * d * d / (8 * dm * dm * dm * na)
	if math.Abs(resp.Rate-wantRate) > 1e-9 {
		t.Errorf("rate = %f, want %f", resp.Rate, wantRate)
	}
	if math.Abs(resp.PackRate-4*wantRate) > 1e-9 {
		t.Errorf("parallel pack rate = %f, want %f", resp.PackRate, 4*wantRate)
	}
	if resp.Index != 8 {
		t.Errorf("index = %f, want 8", resp.Index)
	}
}

func TestEvaluateWahlFactor(t *testing.T) {
	eng := NewEngine(MusicWire)
	resp, err := eng.Evaluate(testGeometry(), 10)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}

	// C = 8: Kw = (4C-1)/(4C-4) + 0.615/C
	want := 31.0/28.0 + 0.615/8.0
	if math.Abs(resp.WahlFactor-want) > 1e-12 {
		t.Errorf("wahl = %f, want %f", resp.WahlFactor, want)
	}
	if math.Abs(resp.ShearCorrected-resp.ShearNominal*want) > 1e-9 {
		t.Error("corrected shear should be nominal times wahl factor")
	}
}

func TestEvaluateLoadsAndStress(t *testing.T) {
	eng := NewEngine(MusicWire)
	g := testGeometry()

	resp, err := eng.Evaluate(g, 10)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}

	if math.Abs(resp.PackLoad-resp.PackRate*10) > 1e-9 {
		t.Errorf("pack load = %f, want %f", resp.PackLoad, resp.PackRate*10)
	}
	if math.Abs(resp.SpringLoad-resp.PackLoad/4) > 1e-9 {
		t.Errorf("spring load = %f, want quarter of pack load", resp.SpringLoad)
	}

	wantNominal := 8 * resp.SpringLoad * g.MeanDiameter / (math.Pi * math.Pow(g.WireDiameter, 3))
	if math.Abs(resp.ShearNominal-wantNominal) > 1e-9 {
		t.Errorf("nominal shear = %f, want %f", resp.ShearNominal, wantNominal)
	}

	wantSF := MusicWire.AllowableShear / resp.ShearCorrected
	if math.Abs(resp.SafetyFactor-wantSF) > 1e-9 {
		t.Errorf("safety factor = %f, want %f", resp.SafetyFactor, wantSF)
	}
}

func TestEvaluateSeriesPack(t *testing.T) {
	eng := NewEngine(MusicWire)
	g := testGeometry()
	g.Arrangement = Series

	resp, err := eng.Evaluate(g, 10)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}

	if math.Abs(resp.PackRate-resp.Rate/4) > 1e-9 {
		t.Errorf("series pack rate = %f, want %f", resp.PackRate, resp.Rate/4)
	}
	if math.Abs(resp.PackSolidHeight-4*resp.SolidHeight) > 1e-9 {
		t.Errorf("series pack solid height = %f, want %f", resp.PackSolidHeight, 4*resp.SolidHeight)
	}
	// Each spring in series carries the full pack load.
	if math.Abs(resp.SpringLoad-resp.PackLoad) > 1e-9 {
		t.Error("series spring load should equal pack load")
	}
}

func TestEvaluateDerivedLengths(t *testing.T) {
	eng := NewEngine(MusicWire)
	g := testGeometry()

	resp, err := eng.Evaluate(g, 10)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}

	// Squared and ground: Nt = Na + 2, solid = Nt*d, default L0 = Nt*d*1.5.
	if resp.SolidHeight != 60 {
		t.Errorf("solid height = %f, want 60", resp.SolidHeight)
	}
	if resp.FreeLength != 90 {
		t.Errorf("free length = %f, want 90", resp.FreeLength)
	}

	// Stroke <= 0 evaluates at travel to solid.
	atSolid, err := eng.Evaluate(g, 0)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if atSolid.Stroke != 30 {
		t.Errorf("default stroke = %f, want 30", atSolid.Stroke)
	}
}

func TestEvaluateKeepsExplicitFreeLength(t *testing.T) {
	eng := NewEngine(MusicWire)
	g := testGeometry()
	g.FreeLength = 120

	resp, err := eng.Evaluate(g, 10)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if resp.FreeLength != 120 {
		t.Errorf("free length = %f, want 120", resp.FreeLength)
	}
}

func TestEvaluateInvalidGeometry(t *testing.T) {
	eng := NewEngine(MusicWire)

	tests := []struct {
		name   string
		mutate func(*Geometry)
	}{
		{"zero wire", func(g *Geometry) { g.WireDiameter = 0 }},
		{"negative wire", func(g *Geometry) { g.WireDiameter = -1 }},
		{"wire above mean", func(g *Geometry) { g.MeanDiameter = 4 }},
		{"zero coils", func(g *Geometry) { g.ActiveCoils = 0 }},
		{"zero pack", func(g *Geometry) { g.PackCount = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testGeometry()
			tt.mutate(&g)
			if _, err := eng.Evaluate(g, 10); !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("expected ErrInvalidGeometry, got %v", err)
			}
		})
	}
}

func TestEvaluateUnsupportedType(t *testing.T) {
	eng := NewEngine(MusicWire)
	g := testGeometry()
	g.Type = Torsion

	if _, err := eng.Evaluate(g, 10); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestEvaluateNonFinite(t *testing.T) {
	eng := NewEngine(MusicWire)
	g := testGeometry()
	g.ActiveCoils = 1e-310 // rate overflows to +Inf

	if _, err := eng.Evaluate(g, 10); !errors.Is(err, ErrNonFinite) {
		t.Errorf("expected ErrNonFinite, got %v", err)
	}
}

func TestTorsionBendingStress(t *testing.T) {
	g := Geometry{WireDiameter: 2, MeanDiameter: 16}
	c := 8.0
	ki := (4*c*c - c - 1) / (4 * c * (c - 1))
	want := ki * 32 * 100 / (math.Pi * 8)

	got := TorsionBendingStress(g, 100)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("torsion stress = %f, want %f", got, want)
	}
}

func TestPackDiameters(t *testing.T) {
	g := testGeometry()
	g.BoltCircleRadius = 100

	if g.OuterDiameter() != 45 {
		t.Errorf("OD = %f, want 45", g.OuterDiameter())
	}
	if g.InnerDiameter() != 35 {
		t.Errorf("ID = %f, want 35", g.InnerDiameter())
	}
	if g.PackOuterDiameter() != 245 {
		t.Errorf("pack OD = %f, want 245", g.PackOuterDiameter())
	}
	if g.PackInnerDiameter() != 155 {
		t.Errorf("pack ID = %f, want 155", g.PackInnerDiameter())
	}

	// Single spring on the axis ignores the bolt circle.
	g.PackCount = 1
	if g.PackOuterDiameter() != 45 || g.PackInnerDiameter() != 35 {
		t.Error("single spring should use coil diameters")
	}
}
