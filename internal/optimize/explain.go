package optimize

import (
	"fmt"
	"math"
)

const (
	maxWhy = 5
	// nearBindingFraction flags envelope bounds the design approaches.
	nearBindingFraction = 0.05
)

// explain derives the ordered "why" list from the same signals used for
// scoring. Deterministic: no state beyond the candidate and request.
func explain(req Request, c Candidate) []string {
	why := make([]string, 0, maxWhy)

	why = append(why, fmt.Sprintf("%s: %.1f%% from target %s",
		c.Score.Bucket, c.Score.TargetErrorPct, targetNoun(req.Target.Kind)))

	switch {
	case len(c.Audit.Findings) == 0:
		why = append(why, fmt.Sprintf("audit %s, no findings", c.Audit.Status))
	default:
		why = append(why, fmt.Sprintf("audit %s: %s",
			c.Audit.Status, c.Audit.Findings[0].Message))
	}

	if !math.IsInf(c.Response.SafetyFactor, 1) {
		if min := req.Constraints.MinSafetyFactor; min > 0 {
			why = append(why, fmt.Sprintf("safety factor %.2f against minimum %.2f",
				c.Response.SafetyFactor, min))
		} else {
			why = append(why, fmt.Sprintf("safety factor %.2f", c.Response.SafetyFactor))
		}
	}

	if c.Infeasible {
		why = append(why, "kept for diagnostics: violates solid height or safety constraint")
	}

	why = append(why, nearBindingNotes(req.Envelope, c)...)

	if len(why) > maxWhy {
		why = why[:maxWhy]
	}
	return why
}

func nearBindingNotes(env Envelope, c Candidate) []string {
	var notes []string
	if env.MaxOuterDiameter > 0 {
		od := c.Geometry.PackOuterDiameter()
		if od <= env.MaxOuterDiameter && od >= env.MaxOuterDiameter*(1-nearBindingFraction) {
			notes = append(notes, fmt.Sprintf("design risk: outer diameter %.1f mm near %.1f mm limit",
				od, env.MaxOuterDiameter))
		}
	}
	if env.MinInnerDiameter > 0 {
		id := c.Geometry.PackInnerDiameter()
		if id >= env.MinInnerDiameter && id <= env.MinInnerDiameter*(1+nearBindingFraction) {
			notes = append(notes, fmt.Sprintf("design risk: inner diameter %.1f mm near %.1f mm limit",
				id, env.MinInnerDiameter))
		}
	}
	if env.MaxSolidHeight > 0 {
		hs := c.Response.PackSolidHeight
		if hs <= env.MaxSolidHeight && hs >= env.MaxSolidHeight*(1-nearBindingFraction) {
			notes = append(notes, fmt.Sprintf("design risk: solid height %.1f mm near %.1f mm limit",
				hs, env.MaxSolidHeight))
		}
	}
	return notes
}

func targetNoun(kind TargetKind) string {
	if kind == TargetStiffness {
		return "stiffness"
	}
	return "load at stroke"
}
