package report

import (
	"os"
	"path/filepath"
	"testing"

	"codecheck/internal/spec"
)

// testConfig returns a complete configuration for builder tests.
func testConfig() spec.Config {
	return spec.Config{
		Certificate: "2024-012",
		Report:      "https://doi.org/10.5281/zenodo.0000000",
		Paper: spec.Paper{
			Title: "Modeling the spread_of_things",
			Authors: []spec.Person{
				{Name: "Ada Author", ORCID: "0000-0001-2345-6789"},
				{Name: "Ben Author"},
			},
			Reference: "https://doi.org/10.1000/paper",
		},
		Repository:  "https://github.com/codecheckers/study",
		Codechecker: spec.Person{Name: "Carol Checker", ORCID: "0000-0002-1825-0097"},
		CheckTime:   "2024-03-01T10:00:00",
		Summary:     "The results were reproduced.",
		Manifest: []spec.ManifestEntry{
			{File: "fig1.pdf", Comment: "Figure 1"},
			{File: "data/results.csv", Comment: "Main results"},
			{File: "notes.txt"},
		},
	}
}

// writeOutputs materializes manifest files below an outputs root.
func writeOutputs(t *testing.T, files map[string]int) string {
	t.Helper()
	root := t.TempDir()
	for name, size := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return root
}
