package report

import (
	"encoding/json"
	"io"
	"os"

	"github.com/coilworks/springpack/internal/optimize"
)

// ExportData is the self-contained JSON shape of one optimization run.
type ExportData struct {
	Material string               `json:"material"`
	Request  optimize.Request     `json:"request"`
	Reason   string               `json:"reason,omitempty"`
	Ranked   []optimize.Candidate `json:"ranked"`
}

func ExportJSON(path, material string, req optimize.Request, result *optimize.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return writeJSON(file, material, req, result)
}

func ExportJSONStdout(material string, req optimize.Request, result *optimize.Result) error {
	return writeJSON(os.Stdout, material, req, result)
}

func writeJSON(w io.Writer, material string, req optimize.Request, result *optimize.Result) error {
	data := ExportData{
		Material: material,
		Request:  req,
		Reason:   result.Reason,
		Ranked:   result.Candidates,
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
