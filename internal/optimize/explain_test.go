package optimize

import (
	"strings"
	"testing"

	"github.com/coilworks/springpack/internal/audit"
	"github.com/coilworks/springpack/internal/spring"
)

func explainFixture() (Request, Candidate) {
	req := testRequest()
	c := Candidate{
		Geometry: spring.Geometry{
			WireDiameter: 5, MeanDiameter: 40, ActiveCoils: 8, PackCount: 4,
		},
		Response: spring.Response{
			PackSolidHeight: 50,
			SafetyFactor:    2.4,
		},
		Audit: audit.Outcome{Status: audit.Pass},
		Score: Score{TargetErrorPct: 3.2, Bucket: BucketTight},
	}
	return req, c
}

func TestExplainOrder(t *testing.T) {
	req, c := explainFixture()

	why := explain(req, c)
	if len(why) < 3 {
		t.Fatalf("expected at least 3 statements, got %v", why)
	}
	if !strings.Contains(why[0], "tight fit") || !strings.Contains(why[0], "3.2%") {
		t.Errorf("first statement should state target fit: %q", why[0])
	}
	if !strings.Contains(why[1], "audit PASS") {
		t.Errorf("second statement should summarize audit: %q", why[1])
	}
	if !strings.Contains(why[2], "safety factor 2.40") {
		t.Errorf("third statement should state safety margin: %q", why[2])
	}
}

func TestExplainAuditFinding(t *testing.T) {
	req, c := explainFixture()
	c.Audit = audit.Outcome{
		Status: audit.Warn,
		Findings: []audit.Finding{
			{Rule: "slenderness", Severity: audit.Warn, Message: "slenderness 4.50 above 4.0: guide the spring ends"},
		},
	}

	why := explain(req, c)
	if !strings.Contains(why[1], "audit WARN") || !strings.Contains(why[1], "slenderness") {
		t.Errorf("audit statement should carry the first finding: %q", why[1])
	}
}

func TestExplainNearBindingEnvelope(t *testing.T) {
	req, c := explainFixture()
	// Pack OD 45 against a 46 mm limit: within 5%.
	c.Geometry.PackCount = 1
	req.Envelope.MaxOuterDiameter = 46

	why := explain(req, c)
	found := false
	for _, w := range why {
		if strings.Contains(w, "design risk") && strings.Contains(w, "outer diameter") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected near-binding outer diameter note, got %v", why)
	}
}

func TestExplainFarFromBoundsHasNoRiskNote(t *testing.T) {
	req, c := explainFixture()

	for _, w := range explain(req, c) {
		if strings.Contains(w, "design risk") {
			t.Errorf("no bound is near-binding, got %q", w)
		}
	}
}

func TestExplainInfeasibleTag(t *testing.T) {
	req, c := explainFixture()
	c.Infeasible = true

	found := false
	for _, w := range explain(req, c) {
		if strings.Contains(w, "diagnostics") {
			found = true
		}
	}
	if !found {
		t.Error("infeasible candidate should carry a diagnostics note")
	}
}

func TestExplainCapped(t *testing.T) {
	req, c := explainFixture()
	// Make every envelope bound near-binding and the candidate infeasible
	// to overflow the statement list.
	c.Infeasible = true
	c.Geometry.PackCount = 1
	req.Envelope.MaxOuterDiameter = 45.5
	req.Envelope.MinInnerDiameter = 34.9
	req.Envelope.MaxSolidHeight = 50.5

	why := explain(req, c)
	if len(why) > maxWhy {
		t.Errorf("why list has %d entries, cap is %d", len(why), maxWhy)
	}
}
