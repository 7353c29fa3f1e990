// Package audit evaluates a candidate spring design against engineering
// design rules and reports a PASS/WARN/FAIL status with findings.
//
// The optimizer consumes this package only through the [Engine] interface;
// rule thresholds live here and are not part of the optimizer's contract.
package audit

import (
	"errors"

	"github.com/coilworks/springpack/internal/spring"
)

type Status string

const (
	Pass Status = "PASS"
	Warn Status = "WARN"
	Fail Status = "FAIL"
)

// Rank orders statuses for sorting: PASS before WARN before FAIL.
func (s Status) Rank() int {
	switch s {
	case Pass:
		return 0
	case Warn:
		return 1
	default:
		return 2
	}
}

// Finding is one triggered rule.
type Finding struct {
	Rule     string `json:"rule"`
	Severity Status `json:"severity"`
	Message  string `json:"message"`
}

// Outcome is the aggregate audit result for one candidate.
type Outcome struct {
	Status   Status    `json:"status"`
	Findings []Finding `json:"findings"`
}

// Input carries everything a rule may inspect.
type Input struct {
	Type     spring.Type
	Geometry spring.Geometry
	Response spring.Response
}

// Engine is the audit collaborator boundary.
type Engine interface {
	Evaluate(in Input) (Outcome, error)
}

// ErrMalformedInput indicates an input no rule can reason about.
var ErrMalformedInput = errors.New("audit: malformed input")

// Rule checks one design aspect. A nil return means the rule is satisfied.
type Rule func(in Input) *Finding

// RuleEngine runs a fixed rule list and aggregates severities: any FAIL
// fails the design, otherwise any WARN downgrades it to WARN.
type RuleEngine struct {
	rules []Rule
}

// NewRuleEngine returns the default compression-pack rule set.
func NewRuleEngine() *RuleEngine {
	return &RuleEngine{rules: defaultRules()}
}

func (e *RuleEngine) Evaluate(in Input) (Outcome, error) {
	if !in.Geometry.Valid() {
		return Outcome{}, ErrMalformedInput
	}

	out := Outcome{Status: Pass}
	for _, rule := range e.rules {
		f := rule(in)
		if f == nil {
			continue
		}
		out.Findings = append(out.Findings, *f)
		if f.Severity.Rank() > out.Status.Rank() {
			out.Status = f.Severity
		}
	}
	return out, nil
}
