package optimize

import "github.com/coilworks/springpack/internal/spring"

// passesGeometry rejects candidates on purely geometric grounds, cheapest
// check first. Solid height and safety factor need physics and are
// enforced after evaluation instead.
func passesGeometry(g spring.Geometry, env Envelope, con Constraints) bool {
	if !g.Valid() {
		return false
	}

	c := g.Index()
	if c < con.WireIndexRange[0] || c > con.WireIndexRange[1] {
		return false
	}

	if env.MaxOuterDiameter > 0 && g.PackOuterDiameter() > env.MaxOuterDiameter {
		return false
	}
	if env.MinInnerDiameter > 0 && g.PackInnerDiameter() < env.MinInnerDiameter {
		return false
	}
	return true
}
