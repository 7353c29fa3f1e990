package optimize

import (
	"errors"
	"fmt"
)

// Request validation errors. These never cross the Optimize boundary as
// Go errors; they surface as the Result's diagnostic Reason.
var (
	// ErrInvalidRange indicates a range with min above max.
	ErrInvalidRange = errors.New("optimize: range min exceeds max")

	// ErrInvalidMaxCandidates indicates a non-positive candidate cap.
	ErrInvalidMaxCandidates = errors.New("optimize: max candidates must be positive")

	// ErrUnknownTarget indicates an unrecognized target kind.
	ErrUnknownTarget = errors.New("optimize: unknown target kind")

	// ErrInvalidTarget indicates a non-positive target value, tolerance or stroke.
	ErrInvalidTarget = errors.New("optimize: invalid target")

	// ErrInvalidBase indicates a seed geometry the enumeration cannot anchor on.
	ErrInvalidBase = errors.New("optimize: invalid base geometry")
)

func (r Request) validate() error {
	c := r.Constraints
	if c.WireIndexRange[0] > c.WireIndexRange[1] {
		return fmt.Errorf("%w: wire index [%g, %g]", ErrInvalidRange, c.WireIndexRange[0], c.WireIndexRange[1])
	}
	if c.ActiveCoilsRange[0] > c.ActiveCoilsRange[1] {
		return fmt.Errorf("%w: active coils [%g, %g]", ErrInvalidRange, c.ActiveCoilsRange[0], c.ActiveCoilsRange[1])
	}
	if c.PackCountRange[0] > c.PackCountRange[1] {
		return fmt.Errorf("%w: pack count [%d, %d]", ErrInvalidRange, c.PackCountRange[0], c.PackCountRange[1])
	}
	if c.MaxCandidates <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxCandidates, c.MaxCandidates)
	}

	switch r.Target.Kind {
	case TargetStiffness:
	case TargetLoadAtStroke:
		if r.Target.Stroke <= 0 {
			return fmt.Errorf("%w: stroke must be positive for %s", ErrInvalidTarget, TargetLoadAtStroke)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTarget, r.Target.Kind)
	}
	if r.Target.Value <= 0 {
		return fmt.Errorf("%w: value must be positive", ErrInvalidTarget)
	}
	if r.Target.TolerancePct <= 0 {
		return fmt.Errorf("%w: tolerance must be positive", ErrInvalidTarget)
	}

	if r.Base.MeanDiameter <= 0 {
		return fmt.Errorf("%w: mean diameter must be positive", ErrInvalidBase)
	}
	return nil
}
