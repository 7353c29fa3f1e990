package config

import (
	"fmt"
	"os"

	"github.com/coilworks/springpack/internal/optimize"
	"github.com/coilworks/springpack/internal/spring"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMaterial      = "music_wire"
	DefaultMeanDiameter  = 40.0
	DefaultTolerancePct  = 10.0
	DefaultSafetyFactor  = 1.1
	DefaultMaxCandidates = 60
)

// Config is one optimization job as written to disk: the request plus the
// material grade it should be evaluated against.
type Config struct {
	Material string           `yaml:"material"`
	Request  optimize.Request `yaml:"request"`
}

func DefaultConfig() *Config {
	return &Config{
		Material: DefaultMaterial,
		Request: optimize.Request{
			Base: spring.Geometry{
				Type:         spring.Compression,
				MeanDiameter: DefaultMeanDiameter,
				Arrangement:  spring.Parallel,
			},
			Target: optimize.Target{
				Kind:         optimize.TargetLoadAtStroke,
				Value:        1200,
				Stroke:       10,
				TolerancePct: DefaultTolerancePct,
			},
			Envelope: optimize.Envelope{
				MaxOuterDiameter: 350,
				MinInnerDiameter: 20,
				MaxSolidHeight:   100,
			},
			Constraints: optimize.Constraints{
				MinSafetyFactor:  DefaultSafetyFactor,
				WireIndexRange:   [2]float64{4, 12},
				ActiveCoilsRange: [2]float64{3, 20},
				PackCountRange:   [2]int{4, 20},
				MaxCandidates:    DefaultMaxCandidates,
				RequireAuditPass: true,
			},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ResolveMaterial maps the config's material name to a grade. Unknown
// names fall back to the default so a stale job file cannot strand the CLI.
func (c *Config) ResolveMaterial() spring.Material {
	if m, ok := spring.Grade(c.Material); ok {
		return m
	}
	m, _ := spring.Grade(DefaultMaterial)
	return m
}
