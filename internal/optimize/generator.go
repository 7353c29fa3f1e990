package optimize

import (
	"math"

	"github.com/coilworks/springpack/internal/spring"
)

const coilStep = 0.5

// generator enumerates candidate geometries in a fixed nested order:
// wire diameter ascending, active coils ascending at half-coil steps,
// pack count ascending. The order is part of the determinism contract.
type generator struct {
	req   Request
	diams []float64

	iDiam int
	iCoil int
	iPack int
	done  bool
}

func newGenerator(req Request) *generator {
	return &generator{
		req:   req,
		diams: candidateDiameters(req.Base.MeanDiameter, req.Constraints.WireIndexRange),
	}
}

// candidateDiameters maps the wire index range to the standard diameter
// series: d is kept when Dm/d lands inside the requested index band.
func candidateDiameters(meanDiameter float64, indexRange [2]float64) []float64 {
	diams := make([]float64, 0, len(spring.StandardWireSizes))
	for _, d := range spring.StandardWireSizes {
		c := meanDiameter / d
		if c >= indexRange[0] && c <= indexRange[1] {
			diams = append(diams, d)
		}
	}
	return diams
}

func (g *generator) coilCount() int {
	r := g.req.Constraints.ActiveCoilsRange
	if r[1] < r[0] {
		return 0
	}
	return int(math.Floor((r[1]-r[0])/coilStep)) + 1
}

func (g *generator) packCount() int {
	r := g.req.Constraints.PackCountRange
	return r[1] - r[0] + 1
}

// next returns the following geometry in enumeration order. The second
// return is false once the grid is exhausted.
func (g *generator) next() (spring.Geometry, bool) {
	if g.done || len(g.diams) == 0 || g.coilCount() <= 0 || g.packCount() <= 0 {
		return spring.Geometry{}, false
	}

	geom := g.build()

	g.iPack++
	if g.iPack >= g.packCount() {
		g.iPack = 0
		g.iCoil++
	}
	if g.iCoil >= g.coilCount() {
		g.iCoil = 0
		g.iDiam++
	}
	if g.iDiam >= len(g.diams) {
		g.done = true
	}
	return geom, true
}

func (g *generator) build() spring.Geometry {
	base := g.req.Base
	geom := base
	geom.WireDiameter = g.diams[g.iDiam]
	geom.ActiveCoils = g.req.Constraints.ActiveCoilsRange[0] + coilStep*float64(g.iCoil)
	geom.PackCount = g.req.Constraints.PackCountRange[0] + g.iPack
	geom.BoltCircleRadius = boltCircleRadius(geom, base.BoltCircleRadius)
	if geom.Type == "" {
		geom.Type = spring.Compression
	}
	if geom.Arrangement == "" {
		geom.Arrangement = spring.Parallel
	}
	return geom
}

// boltCircleRadius places N coils on the smallest circle where adjacent
// coils clear each other, keeping the template's radius when it already
// fits. Single springs sit on the axis.
func boltCircleRadius(g spring.Geometry, baseRadius float64) float64 {
	if g.PackCount <= 1 {
		return 0
	}
	minR := g.OuterDiameter() / (2 * math.Sin(math.Pi/float64(g.PackCount)))
	if baseRadius >= minR {
		return baseRadius
	}
	return minR
}

// take pulls up to n geometries that pass the cheap geometric filter.
func (g *generator) take(n int) []spring.Geometry {
	out := make([]spring.Geometry, 0, n)
	for len(out) < n {
		geom, ok := g.next()
		if !ok {
			break
		}
		if !passesGeometry(geom, g.req.Envelope, g.req.Constraints) {
			continue
		}
		out = append(out, geom)
	}
	return out
}
