package stats

import (
	"strconv"
	"strings"
)

// ReadOptions controls how a CSV file is read. The zero value lets DuckDB
// auto-detect everything.
type ReadOptions struct {
	// Header states whether the first row holds column names. Nil means
	// auto-detect.
	Header *bool
	// Delimiter is the field separator. Empty means auto-detect.
	Delimiter string
	// SampleSize is the number of rows sampled for type detection.
	// Zero keeps DuckDB's default.
	SampleSize int
}

// readCSVExpr builds the read_csv table expression for a file.
func readCSVExpr(path string, opts ReadOptions) string {
	var b strings.Builder
	b.WriteString("read_csv('")
	b.WriteString(strings.ReplaceAll(path, "'", "''"))
	b.WriteString("'")
	if opts.Header != nil {
		if *opts.Header {
			b.WriteString(", header=true")
		} else {
			b.WriteString(", header=false")
		}
	}
	if opts.Delimiter != "" {
		b.WriteString(", delim='")
		b.WriteString(strings.ReplaceAll(opts.Delimiter, "'", "''"))
		b.WriteString("'")
	}
	if opts.SampleSize > 0 {
		b.WriteString(", sample_size=")
		b.WriteString(strconv.Itoa(opts.SampleSize))
	}
	b.WriteString(")")
	return b.String()
}
