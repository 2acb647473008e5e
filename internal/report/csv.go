package report

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"codecheck/internal/stats"
)

const csvStatsHeader = "Column | Count | Mean | Std | Min | 25% | 50% | 75% | Max\n" +
	":----- | ----: | ---: | ---: | ---: | ---: | ---: | ---: | ---:\n"

// CSVFiles renders one column-statistics table per .csv manifest entry
// (case-insensitive), labeled with the entry's path, in manifest order.
// Summarization is delegated to DuckDB; a file that fails to parse as
// tabular data aborts the operation, since a corrupt data file is itself a
// finding for the certificate. Floats are shown at fixed precision.
func (b *Builder) CSVFiles(ctx context.Context, opts stats.ReadOptions) (Fragment, error) {
	var blocks []string
	for _, entry := range b.cfg.Manifest {
		if strings.ToLower(filepath.Ext(entry.File)) != ".csv" {
			continue
		}
		table, err := stats.Describe(ctx, filepath.Join(b.outputRoot, entry.File), opts)
		if err != nil {
			return Fragment{}, err
		}
		blocks = append(blocks, renderCSVBlock(entry.File, entry.Comment, table))
	}
	return Fragment{Kind: KindMarkdown, Body: strings.Join(blocks, "\n\n")}, nil
}

func renderCSVBlock(file, comment string, table stats.Table) string {
	var doc strings.Builder
	fmt.Fprintf(&doc, "### `%s` {-}\n\n", file)
	if comment != "" {
		fmt.Fprintf(&doc, "Author comment: *%s*\n\n", EscapeMarkdown(comment))
	}
	doc.WriteString("**Column summary statistics:**\n\n")
	doc.WriteString(csvStatsHeader)
	for _, col := range table.Columns {
		fmt.Fprintf(&doc, "`%s` | %d | %.4f | %.4f | %.4f | %.4f | %.4f | %.4f | %.4f\n",
			col.Name, col.Count, col.Mean, col.Std, col.Min, col.Q25, col.Median, col.Q75, col.Max)
	}
	return doc.String()
}
