package spring

type Type string

const (
	Compression Type = "compression"
	Extension   Type = "extension"
	Torsion     Type = "torsion"
	Conical     Type = "conical"
)

type Arrangement string

const (
	// Parallel packs share the load across N springs at equal deflection.
	Parallel Arrangement = "parallel"
	// Series packs stack N springs so each carries the full load.
	Series Arrangement = "series"
)

// Geometry fully specifies one spring pack design point.
type Geometry struct {
	Type             Type        `yaml:"type" json:"type"`
	WireDiameter     float64     `yaml:"wire_diameter" json:"wireDiameter"`           // d, mm
	MeanDiameter     float64     `yaml:"mean_diameter" json:"meanDiameter"`           // Dm, mm
	ActiveCoils      float64     `yaml:"active_coils" json:"activeCoils"`             // Na
	FreeLength       float64     `yaml:"free_length" json:"freeLength"`               // L0, mm; 0 = derived
	PackCount        int         `yaml:"pack_count" json:"packCount"`                 // N
	BoltCircleRadius float64     `yaml:"bolt_circle_radius" json:"boltCircleRadius"`  // Rbc, mm; 0 = single axis
	Arrangement      Arrangement `yaml:"arrangement" json:"arrangement"`
}

// Index returns the spring index C = Dm/d.
func (g Geometry) Index() float64 {
	if g.WireDiameter == 0 {
		return 0
	}
	return g.MeanDiameter / g.WireDiameter
}

func (g Geometry) OuterDiameter() float64 { return g.MeanDiameter + g.WireDiameter }
func (g Geometry) InnerDiameter() float64 { return g.MeanDiameter - g.WireDiameter }

// TotalCoils assumes squared and ground ends: Nt = Na + 2.
func (g Geometry) TotalCoils() float64 { return g.ActiveCoils + 2 }

// PackOuterDiameter is the envelope diameter of the whole pack. Springs
// placed on a bolt circle sweep 2*Rbc plus one coil outer diameter.
func (g Geometry) PackOuterDiameter() float64 {
	if g.PackCount <= 1 || g.BoltCircleRadius <= 0 {
		return g.OuterDiameter()
	}
	return 2*g.BoltCircleRadius + g.OuterDiameter()
}

// PackInnerDiameter is the clear bore left inside the pack.
func (g Geometry) PackInnerDiameter() float64 {
	if g.PackCount <= 1 || g.BoltCircleRadius <= 0 {
		return g.InnerDiameter()
	}
	return 2*g.BoltCircleRadius - g.OuterDiameter()
}

func (g Geometry) Valid() bool {
	return g.WireDiameter > 0 &&
		g.MeanDiameter > g.WireDiameter &&
		g.ActiveCoils > 0 &&
		g.PackCount >= 1
}
