package optimize

import (
	"math"

	"github.com/coilworks/springpack/internal/spring"
)

// Thresholds set the bucket boundaries as fractions of the request
// tolerance. They are deliberately configurable: the cut points are
// conventions, not physics.
type Thresholds struct {
	TightFraction      float64
	AcceptableFraction float64
}

var DefaultThresholds = Thresholds{
	TightFraction:      0.5,
	AcceptableFraction: 1.0,
}

// targetActual selects the computed quantity the target compares against.
func targetActual(t Target, resp spring.Response) float64 {
	if t.Kind == TargetStiffness {
		return resp.PackRate
	}
	return resp.PackLoad
}

func scoreCandidate(t Target, resp spring.Response, th Thresholds) Score {
	actual := targetActual(t, resp)
	errPct := math.Abs(actual-t.Value) / t.Value * 100

	bucket := BucketMarginal
	switch {
	case errPct <= th.TightFraction*t.TolerancePct:
		bucket = BucketTight
	case errPct <= th.AcceptableFraction*t.TolerancePct:
		bucket = BucketAcceptable
	}
	return Score{TargetErrorPct: errPct, Bucket: bucket}
}

// rankLess is the composite ordering: audit status dominates, then
// closeness to target, then higher safety margin.
func rankLess(a, b Candidate) bool {
	if ra, rb := a.Audit.Status.Rank(), b.Audit.Status.Rank(); ra != rb {
		return ra < rb
	}
	if a.Score.TargetErrorPct != b.Score.TargetErrorPct {
		return a.Score.TargetErrorPct < b.Score.TargetErrorPct
	}
	return a.Response.SafetyFactor > b.Response.SafetyFactor
}
