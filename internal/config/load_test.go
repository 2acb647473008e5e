package config

import (
	"os"
	"path/filepath"
	"testing"

	"codecheck/internal/spec"
)

const loadTestConfig = `certificate: "2024-012"
report: "https://doi.org/10.5281/zenodo.0000000"
paper:
  title: "A computational study"
  authors:
    - name: "  Ada Author  "
  reference: "https://doi.org/10.1000/paper"
repository: "https://github.com/codecheckers/study"
codechecker:
  name: Carol Checker
check_time: "2024-03-01T10:00:00"
summary: |
  The results were reproduced.
manifest:
  - file: "fig1.pdf"
`

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadNormalizes(t *testing.T) {
	path := writeConfig(t, t.TempDir(), loadTestConfig)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Paper.Authors[0].Name != "Ada Author" {
		t.Fatalf("expected trimmed author name, got %q", cfg.Paper.Authors[0].Name)
	}
	if cfg.Summary != "The results were reproduced." {
		t.Fatalf("expected trimmed summary, got %q", cfg.Summary)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), ConfigFileName)); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "certificate: \"2024-012\"\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation error for incomplete config")
	}
}

func TestFindConfigPathWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "codecheck", "outputs")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	want := writeConfig(t, root, loadTestConfig)

	got, err := FindConfigPath(nested)
	if err != nil {
		t.Fatalf("find config: %v", err)
	}
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFindConfigPathMissing(t *testing.T) {
	if _, err := FindConfigPath(t.TempDir()); err == nil {
		t.Fatalf("expected error when no config exists")
	}
}

func TestBaseDirFromConfigPath(t *testing.T) {
	if got := BaseDirFromConfigPath("/work/check/codecheck.yml"); got != "/work/check" {
		t.Fatalf("unexpected base dir %q", got)
	}
}

func TestScaffoldWritesParsableTemplate(t *testing.T) {
	dir := t.TempDir()
	path, err := Scaffold(dir)
	if err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	if filepath.Base(path) != ConfigFileName {
		t.Fatalf("unexpected scaffold path %q", path)
	}

	// The template parses, but still carries placeholders that validation
	// must flag until the checker fills them in.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read scaffold: %v", err)
	}
	if _, err := spec.ParseConfig(data); err != nil {
		t.Fatalf("expected template to parse, got %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation issues for the unfilled template")
	}

	if _, err := Scaffold(dir); err == nil {
		t.Fatalf("expected error when config already exists")
	}
}
