package config

import (
	"sort"

	"github.com/coilworks/springpack/internal/optimize"
	"github.com/coilworks/springpack/internal/spring"
)

// Presets are ready-made optimization jobs for common pack sizing tasks.
var Presets = map[string]*Config{
	"die-pack": {
		Material: "chrome_silicon",
		Request: optimize.Request{
			Base: spring.Geometry{
				Type:         spring.Compression,
				MeanDiameter: 40,
				Arrangement:  spring.Parallel,
			},
			Target: optimize.Target{
				Kind: optimize.TargetLoadAtStroke, Value: 1200, Stroke: 10, TolerancePct: 10,
			},
			Envelope: optimize.Envelope{
				MaxOuterDiameter: 350, MinInnerDiameter: 20, MaxSolidHeight: 100,
			},
			Constraints: optimize.Constraints{
				MinSafetyFactor: 1.1,
				WireIndexRange:  [2]float64{4, 12}, ActiveCoilsRange: [2]float64{3, 20},
				PackCountRange: [2]int{4, 20}, MaxCandidates: 60, RequireAuditPass: true,
			},
		},
	},
	"valve-rate": {
		Material: "music_wire",
		Request: optimize.Request{
			Base: spring.Geometry{
				Type:         spring.Compression,
				MeanDiameter: 20,
				Arrangement:  spring.Parallel,
			},
			Target: optimize.Target{
				Kind: optimize.TargetStiffness, Value: 30, TolerancePct: 8,
			},
			Envelope: optimize.Envelope{
				MaxOuterDiameter: 60, MaxSolidHeight: 50,
			},
			Constraints: optimize.Constraints{
				MinSafetyFactor: 1.3,
				WireIndexRange:  [2]float64{5, 10}, ActiveCoilsRange: [2]float64{4, 14},
				PackCountRange: [2]int{1, 4}, MaxCandidates: 25, RequireAuditPass: true,
			},
		},
	},
	"diagnostic": {
		Material: "oil_tempered",
		Request: optimize.Request{
			Base: spring.Geometry{
				Type:         spring.Compression,
				MeanDiameter: 40,
				Arrangement:  spring.Parallel,
			},
			Target: optimize.Target{
				Kind: optimize.TargetLoadAtStroke, Value: 1200, Stroke: 10, TolerancePct: 15,
			},
			Envelope: optimize.Envelope{
				MaxOuterDiameter: 350, MinInnerDiameter: 20, MaxSolidHeight: 100,
			},
			Constraints: optimize.Constraints{
				MinSafetyFactor: 1.1,
				WireIndexRange:  [2]float64{4, 12}, ActiveCoilsRange: [2]float64{3, 20},
				PackCountRange: [2]int{4, 20}, MaxCandidates: 100,
				// Keep infeasible and failing designs visible for review.
				RequireAuditPass: false,
			},
		},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
