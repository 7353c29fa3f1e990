package optimize

import (
	"github.com/coilworks/springpack/internal/audit"
	"github.com/coilworks/springpack/internal/spring"
)

type TargetKind string

const (
	TargetStiffness    TargetKind = "stiffness"
	TargetLoadAtStroke TargetKind = "loadAtStroke"
)

// Target is what the search optimizes toward.
type Target struct {
	Kind         TargetKind `yaml:"kind" json:"kind"`
	Value        float64    `yaml:"value" json:"value"`   // N/mm or N
	Stroke       float64    `yaml:"stroke" json:"stroke"` // mm, loadAtStroke only
	TolerancePct float64    `yaml:"tolerance_pct" json:"tolerancePct"`
}

// Envelope bounds the space a design must fit in. Zero means unset.
type Envelope struct {
	MaxOuterDiameter float64 `yaml:"max_outer_diameter" json:"maxOuterDiameter"`
	MinInnerDiameter float64 `yaml:"min_inner_diameter" json:"minInnerDiameter"`
	MaxSolidHeight   float64 `yaml:"max_solid_height" json:"maxSolidHeight"`
}

// Constraints bound the search itself.
type Constraints struct {
	MinSafetyFactor  float64    `yaml:"min_safety_factor" json:"minSafetyFactor"`
	WireIndexRange   [2]float64 `yaml:"wire_index_range" json:"wireIndexRange"`
	ActiveCoilsRange [2]float64 `yaml:"active_coils_range" json:"activeCoilsRange"`
	PackCountRange   [2]int     `yaml:"pack_count_range" json:"packCountRange"`
	MaxCandidates    int        `yaml:"max_candidates" json:"maxCandidates"`
	RequireAuditPass bool       `yaml:"require_audit_pass" json:"requireAuditPass"`
}

// Request is the immutable input to one optimization call. Base supplies
// the seed geometry: its mean diameter, arrangement and bolt circle anchor
// the enumeration.
type Request struct {
	Base        spring.Geometry `yaml:"base" json:"base"`
	Target      Target          `yaml:"target" json:"target"`
	Envelope    Envelope        `yaml:"envelope" json:"envelope"`
	Constraints Constraints     `yaml:"constraints" json:"constraints"`
}

type Bucket string

const (
	BucketTight      Bucket = "tight fit"
	BucketAcceptable Bucket = "acceptable"
	BucketMarginal   Bucket = "marginal"
)

type Score struct {
	TargetErrorPct float64 `json:"targetErrorPct"`
	Bucket         Bucket  `json:"bucket"`
}

// Candidate is one surviving design point. Immutable once built.
type Candidate struct {
	Geometry spring.Geometry `json:"geometry"`
	Response spring.Response `json:"response"`
	Audit    audit.Outcome   `json:"audit"`
	Score    Score           `json:"score"`
	Why      []string        `json:"why"`

	// Infeasible marks a design kept for diagnostics only: it violates the
	// solid-height or safety-factor constraint and survives solely because
	// the request did not require an audit pass.
	Infeasible bool `json:"infeasible"`
}

// Result is the ranked outcome of one call. An empty candidate list with a
// non-empty Reason is a normal outcome, not a fault.
type Result struct {
	Candidates []Candidate `json:"candidates"`
	Reason     string      `json:"reason,omitempty"`
}

// DefaultView hides marginal and infeasible entries; the full list stays
// in Candidates for transparency.
func (r *Result) DefaultView() []Candidate {
	view := make([]Candidate, 0, len(r.Candidates))
	for _, c := range r.Candidates {
		if c.Score.Bucket == BucketMarginal || c.Infeasible {
			continue
		}
		view = append(view, c)
	}
	return view
}
