package optimize

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/coilworks/springpack/internal/audit"
	"github.com/coilworks/springpack/internal/spring"
)

var _ = Describe("Optimize", func() {
	var (
		opt *Optimizer
		req Request
	)

	BeforeEach(func() {
		opt = New(spring.NewEngine(spring.MusicWire), audit.NewRuleEngine())
		req = testRequest()
	})

	Context("with the die-pack request", func() {
		var result *Result

		BeforeEach(func() {
			result = opt.Optimize(context.Background(), req)
		})

		It("finds feasible designs", func() {
			Expect(result.Candidates).NotTo(BeEmpty(), result.Reason)
		})

		It("meets the target tolerance on the best candidate", func() {
			Expect(result.Candidates).NotTo(BeEmpty())
			Expect(result.Candidates[0].Score.TargetErrorPct).To(
				BeNumerically("<=", req.Target.TolerancePct))
		})

		It("never exceeds the candidate cap", func() {
			Expect(len(result.Candidates)).To(
				BeNumerically("<=", req.Constraints.MaxCandidates))
		})

		It("keeps every candidate inside the envelope", func() {
			for _, c := range result.Candidates {
				Expect(c.Geometry.PackOuterDiameter()).To(
					BeNumerically("<=", req.Envelope.MaxOuterDiameter))
				Expect(c.Geometry.PackInnerDiameter()).To(
					BeNumerically(">=", req.Envelope.MinInnerDiameter))
				Expect(c.Response.PackSolidHeight).To(
					BeNumerically("<=", req.Envelope.MaxSolidHeight))
			}
		})

		It("honors the safety floor when an audit pass is required", func() {
			for _, c := range result.Candidates {
				Expect(c.Response.SafetyFactor).To(
					BeNumerically(">=", req.Constraints.MinSafetyFactor))
				Expect(c.Infeasible).To(BeFalse())
			}
		})

		It("drops FAIL audits when an audit pass is required", func() {
			for _, c := range result.Candidates {
				Expect(c.Audit.Status).NotTo(Equal(audit.Fail))
			}
		})

		It("ranks by audit status, then closeness, then safety margin", func() {
			for i := 1; i < len(result.Candidates); i++ {
				Expect(rankLess(result.Candidates[i], result.Candidates[i-1])).To(
					BeFalse(), "candidates %d and %d out of order", i-1, i)
			}
		})

		It("attaches a non-empty why list to every candidate", func() {
			for _, c := range result.Candidates {
				Expect(c.Why).NotTo(BeEmpty())
			}
		})

		It("is deterministic across repeated calls", func() {
			again := opt.Optimize(context.Background(), req)
			Expect(again).To(Equal(result))
		})
	})

	Context("in diagnostic mode", func() {
		BeforeEach(func() {
			req.Constraints.RequireAuditPass = false
		})

		It("tags constraint violations instead of dropping them", func() {
			req.Constraints.MinSafetyFactor = 6

			result := opt.Optimize(context.Background(), req)
			Expect(result.Candidates).NotTo(BeEmpty())

			tagged := 0
			for _, c := range result.Candidates {
				if c.Infeasible {
					tagged++
					Expect(c.Response.SafetyFactor).To(BeNumerically("<", 6))
				}
			}
			Expect(tagged).To(BeNumerically(">", 0))
		})

		It("hides marginal and infeasible entries from the default view", func() {
			result := opt.Optimize(context.Background(), req)
			for _, c := range result.DefaultView() {
				Expect(c.Score.Bucket).NotTo(Equal(BucketMarginal))
				Expect(c.Infeasible).To(BeFalse())
			}
		})
	})

	Context("with an impossible request", func() {
		It("reports a reason instead of failing", func() {
			req.Constraints.MinSafetyFactor = 1000

			result := opt.Optimize(context.Background(), req)
			Expect(result.Candidates).To(BeEmpty())
			Expect(result.Reason).NotTo(BeEmpty())
		})
	})
})
