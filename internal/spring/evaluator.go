package spring

import (
	"errors"
	"math"
)

// Domain errors for spring evaluation.
var (
	// ErrInvalidGeometry indicates non-positive or inconsistent dimensions.
	ErrInvalidGeometry = errors.New("spring: invalid geometry")

	// ErrUnsupportedType indicates a spring type the rate model cannot size.
	ErrUnsupportedType = errors.New("spring: unsupported spring type")

	// ErrNonFinite indicates the model produced NaN or Inf.
	ErrNonFinite = errors.New("spring: non-finite result")
)

// Response is the mechanical response of one pack geometry. Loads and
// stresses are reported at the evaluated stroke.
type Response struct {
	Index           float64 `json:"index"`
	Rate            float64 `json:"rate"`            // per spring, N/mm
	PackRate        float64 `json:"packRate"`        // N/mm
	SolidHeight     float64 `json:"solidHeight"`     // per spring, mm
	PackSolidHeight float64 `json:"packSolidHeight"` // mm
	FreeLength      float64 `json:"freeLength"`      // mm
	Stroke          float64 `json:"stroke"`          // mm
	SpringLoad      float64 `json:"springLoad"`      // N
	PackLoad        float64 `json:"packLoad"`        // N
	WahlFactor      float64 `json:"wahlFactor"`
	ShearNominal    float64 `json:"shearNominal"`   // MPa
	ShearCorrected  float64 `json:"shearCorrected"` // MPa
	SafetyFactor    float64 `json:"safetyFactor"`
}

// Evaluator maps a geometry to its mechanical response. Implementations
// must be pure: same inputs, same outputs, no side effects.
type Evaluator interface {
	Evaluate(g Geometry, stroke float64) (Response, error)
}

// Engine is the closed-form default evaluator.
type Engine struct {
	mat Material
}

func NewEngine(mat Material) *Engine {
	return &Engine{mat: mat}
}

func (e *Engine) Material() Material { return e.mat }

// Evaluate computes the static response of a compression spring pack.
// A stroke <= 0 evaluates at full travel to solid, the worst case.
func (e *Engine) Evaluate(g Geometry, stroke float64) (Response, error) {
	if !g.Valid() {
		return Response{}, ErrInvalidGeometry
	}
	switch g.Type {
	case Compression, "":
	default:
		return Response{}, ErrUnsupportedType
	}

	d := g.WireDiameter
	dm := g.MeanDiameter
	na := g.ActiveCoils
	n := float64(g.PackCount)
	c := g.Index()

	rate := e.mat.ShearModulus * d * d * d * d / (8 * dm * dm * dm * na)

	packRate := rate * n
	solid := g.TotalCoils() * d
	packSolid := solid
	if g.Arrangement == Series {
		packRate = rate / n
		packSolid = solid * n
	}

	free := g.FreeLength
	if free <= 0 {
		free = g.TotalCoils() * d * 1.5
	}

	if stroke <= 0 {
		stroke = free - solid
		if g.Arrangement == Series {
			stroke *= n
		}
	}

	packLoad := packRate * stroke
	springLoad := packLoad / n
	if g.Arrangement == Series {
		springLoad = packLoad
	}

	wahl := 1.0
	if c > 1 {
		wahl = (4*c-1)/(4*c-4) + 0.615/c
	}
	nominal := 8 * springLoad * dm / (math.Pi * d * d * d)
	corrected := nominal * wahl

	sf := math.Inf(1)
	if corrected > 0 {
		sf = e.mat.AllowableShear / corrected
	}

	resp := Response{
		Index:           c,
		Rate:            rate,
		PackRate:        packRate,
		SolidHeight:     solid,
		PackSolidHeight: packSolid,
		FreeLength:      free,
		Stroke:          stroke,
		SpringLoad:      springLoad,
		PackLoad:        packLoad,
		WahlFactor:      wahl,
		ShearNominal:    nominal,
		ShearCorrected:  corrected,
		SafetyFactor:    sf,
	}
	if !resp.finite() {
		return Response{}, ErrNonFinite
	}
	return resp, nil
}

func (r Response) finite() bool {
	for _, v := range []float64{
		r.Index, r.Rate, r.PackRate, r.SolidHeight, r.PackSolidHeight,
		r.FreeLength, r.Stroke, r.SpringLoad, r.PackLoad,
		r.WahlFactor, r.ShearNominal, r.ShearCorrected,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	// SafetyFactor may legitimately be +Inf at zero stress.
	return !math.IsNaN(r.SafetyFactor)
}

// TorsionBendingStress returns the corrected bending stress (MPa) at the
// inner fibre of a torsion spring under moment M (N*mm):
// sigma = Ki * 32 * M / (pi * d^3), Ki = (4C^2 - C - 1) / (4C(C-1)).
func TorsionBendingStress(g Geometry, moment float64) float64 {
	d := g.WireDiameter
	c := g.Index()
	ki := 1.0
	if c > 1 {
		ki = (4*c*c - c - 1) / (4 * c * (c - 1))
	}
	return ki * 32 * moment / (math.Pi * d * d * d)
}
