package audit

import (
	"fmt"
	"math"
)

// Rule thresholds. Inferred from common spring design practice, kept as
// named constants so a deployment can tune them.
const (
	MinIndex       = 4.0  // below: severe curvature stress, hard to coil
	MaxIndex       = 16.0 // above: tangling, handling problems
	WarnUtilization = 0.85
	WarnSlenderness = 4.0 // L0/Dm, hinged-end buckling threshold
	FailSlenderness = 5.3 // fixed-end limit
)

func defaultRules() []Rule {
	return []Rule{
		indexRule,
		utilizationRule,
		slendernessRule,
		coilBindRule,
		packFitRule,
	}
}

func indexRule(in Input) *Finding {
	c := in.Response.Index
	switch {
	case c < MinIndex:
		return &Finding{
			Rule:     "spring_index",
			Severity: Fail,
			Message:  fmt.Sprintf("index %.2f below %.1f: excessive curvature stress", c, MinIndex),
		}
	case c > MaxIndex:
		return &Finding{
			Rule:     "spring_index",
			Severity: Warn,
			Message:  fmt.Sprintf("index %.2f above %.1f: coil tangling risk", c, MaxIndex),
		}
	}
	return nil
}

func utilizationRule(in Input) *Finding {
	sf := in.Response.SafetyFactor
	if math.IsInf(sf, 1) {
		return nil
	}
	util := 1 / sf
	switch {
	case util > 1:
		return &Finding{
			Rule:     "stress_utilization",
			Severity: Fail,
			Message:  fmt.Sprintf("corrected shear exceeds allowable (utilization %.0f%%)", util*100),
		}
	case util > WarnUtilization:
		return &Finding{
			Rule:     "stress_utilization",
			Severity: Warn,
			Message:  fmt.Sprintf("stress utilization %.0f%% above %.0f%%", util*100, WarnUtilization*100),
		}
	}
	return nil
}

func slendernessRule(in Input) *Finding {
	if in.Geometry.MeanDiameter <= 0 {
		return nil
	}
	ratio := in.Response.FreeLength / in.Geometry.MeanDiameter
	switch {
	case ratio > FailSlenderness:
		return &Finding{
			Rule:     "slenderness",
			Severity: Fail,
			Message:  fmt.Sprintf("slenderness %.2f above %.1f: buckling without guidance", ratio, FailSlenderness),
		}
	case ratio > WarnSlenderness:
		return &Finding{
			Rule:     "slenderness",
			Severity: Warn,
			Message:  fmt.Sprintf("slenderness %.2f above %.1f: guide the spring ends", ratio, WarnSlenderness),
		}
	}
	return nil
}

func coilBindRule(in Input) *Finding {
	travel := in.Response.FreeLength - in.Response.SolidHeight
	stroke := in.Response.Stroke
	if in.Geometry.Arrangement == "series" && in.Geometry.PackCount > 1 {
		travel *= float64(in.Geometry.PackCount)
	}
	if stroke > travel {
		return &Finding{
			Rule:     "coil_bind",
			Severity: Fail,
			Message:  fmt.Sprintf("stroke %.1f mm exceeds travel to solid %.1f mm", stroke, travel),
		}
	}
	return nil
}

// packFitRule checks that N coils fit around the bolt circle without
// touching: the chord between adjacent centres must clear one coil OD.
func packFitRule(in Input) *Finding {
	g := in.Geometry
	if g.PackCount <= 1 || g.BoltCircleRadius <= 0 {
		return nil
	}
	chord := 2 * g.BoltCircleRadius * math.Sin(math.Pi/float64(g.PackCount))
	// Relative slack: radii derived from the fit equation round-trip
	// through sin and can land an ulp short of the exact chord.
	if chord < g.OuterDiameter()*(1-1e-9) {
		return &Finding{
			Rule:     "pack_fit",
			Severity: Fail,
			Message: fmt.Sprintf("%d coils clash on bolt circle r=%.1f mm (chord %.1f < OD %.1f)",
				g.PackCount, g.BoltCircleRadius, chord, g.OuterDiameter()),
		}
	}
	return nil
}
