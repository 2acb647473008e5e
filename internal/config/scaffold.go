package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `certificate: "YYYY-NNN"
report: "https://doi.org/10.5281/zenodo.XXXXXX"

paper:
  title: "Title of the checked paper"
  authors:
    - name: "First Author"
      ORCID: "0000-0000-0000-0000"
  reference: "https://doi.org/10.1000/XXXXX"

repository: "https://github.com/codecheckers/REPOSITORY"

codechecker:
  name: "Your Name"
  ORCID: "0000-0000-0000-0000"

check_time: "2024-01-01T10:00:00"

summary: >
  Describe the outcome of the check in a few sentences.

manifest:
  - file: "figure1.pdf"
    comment: "Figure 1"
  - file: "results.csv"
    comment: "Main results table"
`

// Scaffold writes a starter codecheck.yml into dir. The template keeps the
// upstream placeholder values, so validate will flag it until filled in.
func Scaffold(dir string) (string, error) {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
