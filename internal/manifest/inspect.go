package manifest

import (
	"os"
	"path/filepath"
	"strings"

	"codecheck/internal/spec"
)

// Mismatch reports a manifest entry whose declared size differs from the
// file on disk.
type Mismatch struct {
	File     string
	Declared int64
	Actual   int64
}

// CompareSizes checks declared sizes against the files below root. Entries
// without a declared size, and entries whose file is absent, are skipped;
// absence is reported separately by Missing.
func CompareSizes(entries []spec.ManifestEntry, root string) []Mismatch {
	var mismatches []Mismatch
	for _, entry := range entries {
		if entry.Size == nil {
			continue
		}
		info, err := os.Stat(filepath.Join(root, entry.File))
		if err != nil {
			continue
		}
		if info.Size() != *entry.Size {
			mismatches = append(mismatches, Mismatch{
				File:     entry.File,
				Declared: *entry.Size,
				Actual:   info.Size(),
			})
		}
	}
	return mismatches
}

// Stats summarizes a manifest.
type Stats struct {
	Files       int
	TotalBytes  int64
	ByExtension map[string]int
	Commented   int
}

// Summary aggregates counts and sizes over the manifest. Total bytes cover
// only files present below root.
func Summary(entries []spec.ManifestEntry, root string) Stats {
	stats := Stats{ByExtension: map[string]int{}}
	for _, entry := range entries {
		stats.Files++
		stats.ByExtension[strings.ToLower(filepath.Ext(entry.File))]++
		if entry.Comment != "" {
			stats.Commented++
		}
		if info, err := os.Stat(filepath.Join(root, entry.File)); err == nil {
			stats.TotalBytes += info.Size()
		}
	}
	return stats
}
