package spring

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Material holds the elastic properties a spring calculation needs.
// Moduli and allowable stress are in MPa.
type Material struct {
	Name           string  `yaml:"name"`
	ShearModulus   float64 `yaml:"shear_modulus"`
	ElasticModulus float64 `yaml:"elastic_modulus"`
	AllowableShear float64 `yaml:"allowable_shear"`
}

// Common wire grades. Allowable shear is a static working value for
// unshot-peened wire in the mid diameter range.
var (
	MusicWire = Material{
		Name:           "music_wire",
		ShearModulus:   79000,
		ElasticModulus: 207000,
		AllowableShear: 860,
	}
	OilTempered = Material{
		Name:           "oil_tempered",
		ShearModulus:   77200,
		ElasticModulus: 200000,
		AllowableShear: 740,
	}
	ChromeSilicon = Material{
		Name:           "chrome_silicon",
		ShearModulus:   77200,
		ElasticModulus: 203000,
		AllowableShear: 900,
	}
	Stainless302 = Material{
		Name:           "stainless_302",
		ShearModulus:   69000,
		ElasticModulus: 193000,
		AllowableShear: 620,
	}
)

var grades = map[string]Material{
	MusicWire.Name:     MusicWire,
	OilTempered.Name:   OilTempered,
	ChromeSilicon.Name: ChromeSilicon,
	Stainless302.Name:  Stainless302,
}

// Grade looks up a built-in material by name.
func Grade(name string) (Material, bool) {
	m, ok := grades[name]
	return m, ok
}

// GradeNames returns the built-in grade names, sorted.
func GradeNames() []string {
	names := make([]string, 0, len(grades))
	for name := range grades {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadMaterials reads additional material grades from a yaml file.
// Entries keyed by name; loaded grades shadow built-ins in the result
// but never mutate the built-in table.
func LoadMaterials(path string) (map[string]Material, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	loaded := make(map[string]Material)
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parse materials %s: %w", path, err)
	}

	merged := make(map[string]Material, len(grades)+len(loaded))
	for name, m := range grades {
		merged[name] = m
	}
	for name, m := range loaded {
		if m.Name == "" {
			m.Name = name
		}
		merged[name] = m
	}
	return merged, nil
}

// StandardWireSizes is the preferred wire diameter series (mm) candidate
// generation snaps to.
var StandardWireSizes = []float64{
	0.5, 0.6, 0.8, 1.0, 1.2, 1.6, 2.0, 2.5, 3.0, 3.5, 4.0, 4.5,
	5.0, 6.0, 7.0, 8.0, 9.0, 10.0, 12.0, 14.0, 16.0, 18.0, 20.0,
	22.0, 25.0, 28.0, 32.0, 36.0, 40.0, 45.0, 50.0,
}
