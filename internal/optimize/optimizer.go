package optimize

import (
	"context"
	"sort"
	"sync"

	"github.com/coilworks/springpack/internal/audit"
	"github.com/coilworks/springpack/internal/spring"
)

const defaultBatchSize = 64

// Optimizer drives the search. It holds only collaborators and tuning;
// all per-call state lives on the stack, so one Optimizer is safe for
// concurrent calls.
type Optimizer struct {
	eval       spring.Evaluator
	auditor    audit.Engine
	thresholds Thresholds
	batchSize  int
}

func New(eval spring.Evaluator, auditor audit.Engine) *Optimizer {
	return &Optimizer{
		eval:       eval,
		auditor:    auditor,
		thresholds: DefaultThresholds,
		batchSize:  defaultBatchSize,
	}
}

// WithThresholds overrides the bucket cut points.
func (o *Optimizer) WithThresholds(th Thresholds) *Optimizer {
	o.thresholds = th
	return o
}

// Optimize runs one search. It never returns a Go error: invalid requests
// and infeasible searches both yield an empty list with a Reason.
func (o *Optimizer) Optimize(ctx context.Context, req Request) *Result {
	if err := req.validate(); err != nil {
		return &Result{Candidates: []Candidate{}, Reason: err.Error()}
	}

	limit := req.Constraints.MaxCandidates
	gen := newGenerator(req)
	survivors := make([]Candidate, 0, limit)
	reason := ""

collect:
	for len(survivors) < limit {
		select {
		case <-ctx.Done():
			reason = "search canceled: " + ctx.Err().Error()
			break collect
		default:
		}

		geoms := gen.take(o.batchSize)
		if len(geoms) == 0 {
			break
		}

		// Parallel map over the batch; slot per index keeps enumeration
		// order intact regardless of goroutine interleaving.
		batch := make([]*Candidate, len(geoms))
		var wg sync.WaitGroup
		for i, geom := range geoms {
			wg.Add(1)
			go func(idx int, g spring.Geometry) {
				defer wg.Done()
				batch[idx] = o.evaluateOne(req, g)
			}(i, geom)
		}
		wg.Wait()

		for _, c := range batch {
			if c == nil {
				continue
			}
			survivors = append(survivors, *c)
			if len(survivors) >= limit {
				break
			}
		}
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		return rankLess(survivors[i], survivors[j])
	})
	if len(survivors) > limit {
		survivors = survivors[:limit]
	}
	if len(survivors) == 0 && reason == "" {
		reason = "no feasible design in the given ranges; relax constraints"
	}
	return &Result{Candidates: survivors, Reason: reason}
}

// evaluateOne runs physics, post-physics constraints, audit, scoring and
// explanation for a single geometry. A nil return drops the candidate.
// Collaborator panics are contained here so one bad candidate cannot
// abort the search.
func (o *Optimizer) evaluateOne(req Request, g spring.Geometry) (c *Candidate) {
	defer func() {
		if recover() != nil {
			c = nil
		}
	}()

	stroke := 0.0
	if req.Target.Kind == TargetLoadAtStroke {
		stroke = req.Target.Stroke
	}

	resp, err := o.eval.Evaluate(g, stroke)
	if err != nil {
		return nil
	}

	infeasible := false
	if h := req.Envelope.MaxSolidHeight; h > 0 && resp.PackSolidHeight > h {
		infeasible = true
	}
	if min := req.Constraints.MinSafetyFactor; min > 0 && resp.SafetyFactor < min {
		infeasible = true
	}
	if infeasible && req.Constraints.RequireAuditPass {
		return nil
	}

	outcome, err := o.auditor.Evaluate(audit.Input{
		Type:     g.Type,
		Geometry: g,
		Response: resp,
	})
	if err != nil {
		return nil
	}
	if outcome.Status == audit.Fail && req.Constraints.RequireAuditPass {
		return nil
	}

	cand := Candidate{
		Geometry:   g,
		Response:   resp,
		Audit:      outcome,
		Score:      scoreCandidate(req.Target, resp, o.thresholds),
		Infeasible: infeasible,
	}
	cand.Why = explain(req, cand)
	return &cand
}
