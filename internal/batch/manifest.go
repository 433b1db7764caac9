package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one rendered point file in the output manifest.
type ManifestEntry struct {
	File    string     `json:"file"`
	Image   string     `json:"image"`
	Points  int        `json:"points"`
	Min     [3]float64 `json:"min"`
	Max     [3]float64 `json:"max"`
	Seconds float64    `json:"seconds"`
}

// WriteManifest writes the successful results to path as a JSON array.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			File:    r.File,
			Image:   r.Image,
			Points:  r.Points,
			Min:     r.Min,
			Max:     r.Max,
			Seconds: r.Seconds,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
