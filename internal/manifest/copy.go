package manifest

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"codecheck/internal/spec"
)

// CopyOptions control how manifest files are collected into the output
// directory.
type CopyOptions struct {
	// Flatten drops directory structure and copies every file to the
	// output root. Default keeps the full relative path.
	Flatten bool
	// Overwrite replaces files already present at the destination.
	// When unset, existing files are skipped.
	Overwrite bool
	// DryRun reports what would be copied without writing anything.
	DryRun bool
}

// Copied describes one file collected into the output directory.
type Copied struct {
	File        string
	Source      string
	Destination string
	Size        int64
	Skipped     bool
}

// Copy collects manifest files from sourceDir into outputsDir, in manifest
// order. A source file that cannot be read aborts with a *ResolutionError,
// since a manifest entry without its file means the check output is
// incomplete. Destination files that exist are skipped unless Overwrite is
// set; those entries are reported with Skipped.
func Copy(entries []spec.ManifestEntry, sourceDir, outputsDir string, opts CopyOptions) ([]Copied, error) {
	copied := make([]Copied, 0, len(entries))
	for _, entry := range entries {
		src := filepath.Join(sourceDir, entry.File)
		info, err := os.Stat(src)
		if err != nil {
			return nil, &ResolutionError{File: entry.File, Err: err}
		}

		rel := entry.File
		if opts.Flatten {
			rel = path.Base(rel)
		}
		dst := filepath.Join(outputsDir, rel)

		result := Copied{
			File:        entry.File,
			Source:      src,
			Destination: dst,
			Size:        info.Size(),
		}
		if _, err := os.Stat(dst); err == nil && !opts.Overwrite {
			result.Skipped = true
			copied = append(copied, result)
			continue
		}
		if !opts.DryRun {
			if err := copyFile(src, dst); err != nil {
				return nil, &ResolutionError{File: entry.File, Err: err}
			}
		}
		copied = append(copied, result)
	}
	return copied, nil
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create destination directory: %w", err)
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
