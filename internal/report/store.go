package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/coilworks/springpack/internal/optimize"
)

// Store keeps optimization runs on disk, one directory per run with
// metadata.json and candidates.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Material    string    `json:"material"`
	TargetKind  string    `json:"targetKind"`
	TargetValue float64   `json:"targetValue"`
	Candidates  int       `json:"candidates"`
	Reason      string    `json:"reason,omitempty"`
}

func (s *Store) Save(material string, req optimize.Request, result *optimize.Result) (string, error) {
	runID := fmt.Sprintf("opt_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Timestamp:   time.Now(),
		Material:    material,
		TargetKind:  string(req.Target.Kind),
		TargetValue: req.Target.Value,
		Candidates:  len(result.Candidates),
		Reason:      result.Reason,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "candidates.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := writeCandidatesCSV(csvFile, result.Candidates); err != nil {
		return "", err
	}
	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

var csvHeader = []string{
	"rank", "wire_d", "mean_d", "active_coils", "pack_count", "bolt_circle_r",
	"pack_rate", "pack_load", "pack_solid_height", "safety_factor",
	"target_error_pct", "bucket", "audit", "infeasible",
}

func writeCandidatesCSV(f *os.File, cands []optimize.Candidate) error {
	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for i, c := range cands {
		row := []string{
			strconv.Itoa(i + 1),
			ftoa(c.Geometry.WireDiameter),
			ftoa(c.Geometry.MeanDiameter),
			ftoa(c.Geometry.ActiveCoils),
			strconv.Itoa(c.Geometry.PackCount),
			ftoa(c.Geometry.BoltCircleRadius),
			ftoa(c.Response.PackRate),
			ftoa(c.Response.PackLoad),
			ftoa(c.Response.PackSolidHeight),
			ftoa(c.Response.SafetyFactor),
			ftoa(c.Score.TargetErrorPct),
			string(c.Score.Bucket),
			string(c.Audit.Status),
			strconv.FormatBool(c.Infeasible),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
