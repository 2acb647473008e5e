package report

import (
	"context"
	"path/filepath"
	"strings"

	"codecheck/internal/stats"
)

// Certificate assembles the whole document in presentation order: the
// Markdown body (heading and metadata, boilerplate, manifest table, CSV
// statistics, citation) and the raw LaTeX figure directives for the typeset
// version. The first failing fragment aborts; a certificate is either fully
// renderable or not rendered.
func (b *Builder) Certificate(ctx context.Context, opts stats.ReadOptions) (markdown, latex string, err error) {
	title, err := b.TitleAndMetadata()
	if err != nil {
		return "", "", err
	}
	files, err := b.ManifestTable(true)
	if err != nil {
		return "", "", err
	}
	citation, err := b.Citation()
	if err != nil {
		return "", "", err
	}

	sections := []string{
		title.Body,
		"## About this certificate {-}\n\n" + b.About().Body,
		"## Summary of output files {-}\n\n" + files.Body,
	}
	if b.hasCSVEntries() {
		csv, err := b.CSVFiles(ctx, opts)
		if err != nil {
			return "", "", err
		}
		sections = append(sections, "## Summary statistics of CSV output files {-}\n\n"+csv.Body)
	}
	sections = append(sections, "## Citing this certificate {-}\n\n"+citation.Body)

	return strings.Join(sections, "\n\n") + "\n", b.LaTeXFigures(nil).Body, nil
}

func (b *Builder) hasCSVEntries() bool {
	for _, entry := range b.cfg.Manifest {
		if strings.ToLower(filepath.Ext(entry.File)) == ".csv" {
			return true
		}
	}
	return false
}
