// Package spring provides the closed-form mechanical model for helical
// springs and spring packs.
//
// All quantities are in SI engineering units: millimetres for lengths,
// newtons for loads, MPa for moduli and stresses. The central entry point
// is [Engine.Evaluate], a pure function mapping a fully specified
// [Geometry] to its mechanical [Response]:
//
//	eng := spring.NewEngine(spring.MusicWire)
//	resp, err := eng.Evaluate(geom, 10.0)
//
// Degenerate geometries (zero coils, zero wire) produce an error rather
// than NaN or a panic, so callers can filter candidates silently.
package spring
