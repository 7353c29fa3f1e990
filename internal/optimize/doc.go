// Package optimize searches the spring-pack design space for geometries
// meeting a target stiffness or load within tolerance.
//
// The pipeline runs strictly forward over immutable records:
//
//	generator -> geometry filter -> physics -> audit -> score -> explain -> rank
//
// Candidates are enumerated deterministically (wire diameter ascending,
// active coils ascending at half-coil steps, pack count ascending), so an
// identical [Request] always yields an identical ordered result. Evaluation
// of a batch runs in parallel; ordering is restored before ranking.
//
// [Optimizer.Optimize] never returns an error: invalid or infeasible
// requests degrade to an empty candidate list with a diagnostic Reason.
package optimize
