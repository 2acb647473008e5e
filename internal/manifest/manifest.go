// Package manifest resolves and inspects the output-file manifest of a
// certificate against the files on disk.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"codecheck/internal/spec"
)

// Resolved pairs a manifest entry with its final size in bytes.
type Resolved struct {
	Entry spec.ManifestEntry
	Size  int64
}

// ResolutionError reports a manifest entry whose file could not be probed.
type ResolutionError struct {
	File string
	Err  error
}

func (err *ResolutionError) Error() string {
	return fmt.Sprintf("manifest file %q: %v", err.File, err.Err)
}

func (err *ResolutionError) Unwrap() error {
	return err.Err
}

// Resolve determines the size of every manifest entry, in manifest order.
// A declared size wins; otherwise the file below root is probed. The first
// entry whose file cannot be probed aborts with a *ResolutionError, so an
// incomplete manifest never yields a partial result.
func Resolve(entries []spec.ManifestEntry, root string) ([]Resolved, error) {
	resolved := make([]Resolved, 0, len(entries))
	for _, entry := range entries {
		if entry.Size != nil {
			resolved = append(resolved, Resolved{Entry: entry, Size: *entry.Size})
			continue
		}
		info, err := os.Stat(filepath.Join(root, entry.File))
		if err != nil {
			return nil, &ResolutionError{File: entry.File, Err: err}
		}
		resolved = append(resolved, Resolved{Entry: entry, Size: info.Size()})
	}
	return resolved, nil
}

// Missing lists manifest files absent below root, in manifest order.
func Missing(entries []spec.ManifestEntry, root string) []string {
	var missing []string
	for _, entry := range entries {
		if _, err := os.Stat(filepath.Join(root, entry.File)); err != nil {
			missing = append(missing, entry.File)
		}
	}
	return missing
}
