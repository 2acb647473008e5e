// Package stats computes descriptive statistics over CSV files by delegating
// to DuckDB's CSV reader and aggregate functions.
package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"
)

// ColumnSummary holds the descriptive statistics of one numeric column.
type ColumnSummary struct {
	Name   string
	Count  int64
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// Table holds the summaries of every numeric column of a file, in column
// order. Non-numeric columns are not summarized.
type Table struct {
	Columns []ColumnSummary
}

// Describe reads a CSV file and summarizes each numeric column. A file that
// cannot be read as tabular data is an error, never a silent skip.
func Describe(ctx context.Context, path string, opts ReadOptions) (Table, error) {
	if ctx == nil {
		return Table{}, errors.New("stats: context is nil")
	}
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return Table{}, fmt.Errorf("open duckdb: %w", err)
	}
	defer db.Close()

	rel := readCSVExpr(path, opts)
	names, err := numericColumns(ctx, db, rel)
	if err != nil {
		return Table{}, fmt.Errorf("describe %s: %w", path, err)
	}

	table := Table{Columns: make([]ColumnSummary, 0, len(names))}
	for _, name := range names {
		summary, err := summarizeColumn(ctx, db, rel, name)
		if err != nil {
			return Table{}, fmt.Errorf("describe %s: %w", path, err)
		}
		table.Columns = append(table.Columns, summary)
	}
	return table, nil
}

// numericColumns introspects the CSV schema and returns the numeric column
// names in file order.
func numericColumns(ctx context.Context, db *sql.DB, rel string) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT column_name, column_type FROM (DESCRIBE SELECT * FROM "+rel+")")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name, typ string
		if err := rows.Scan(&name, &typ); err != nil {
			return nil, err
		}
		if isNumericType(typ) {
			names = append(names, name)
		}
	}
	return names, rows.Err()
}

func summarizeColumn(ctx context.Context, db *sql.DB, rel, name string) (ColumnSummary, error) {
	col := quoteIdent(name)
	query := fmt.Sprintf(`SELECT
		count(%[1]s)::BIGINT,
		coalesce(avg(%[1]s), 0)::DOUBLE,
		coalesce(stddev_samp(%[1]s), 0)::DOUBLE,
		coalesce(min(%[1]s), 0)::DOUBLE,
		coalesce(quantile_cont(%[1]s, 0.25), 0)::DOUBLE,
		coalesce(quantile_cont(%[1]s, 0.5), 0)::DOUBLE,
		coalesce(quantile_cont(%[1]s, 0.75), 0)::DOUBLE,
		coalesce(max(%[1]s), 0)::DOUBLE
	FROM %[2]s`, col, rel)

	summary := ColumnSummary{Name: name}
	err := db.QueryRowContext(ctx, query).Scan(
		&summary.Count,
		&summary.Mean,
		&summary.Std,
		&summary.Min,
		&summary.Q25,
		&summary.Median,
		&summary.Q75,
		&summary.Max,
	)
	if err != nil {
		return ColumnSummary{}, fmt.Errorf("summarize column %q: %w", name, err)
	}
	return summary, nil
}

// numericTypeNames lists DuckDB's numeric column types.
var numericTypeNames = map[string]struct{}{
	"TINYINT": {}, "SMALLINT": {}, "INTEGER": {}, "BIGINT": {}, "HUGEINT": {},
	"UTINYINT": {}, "USMALLINT": {}, "UINTEGER": {}, "UBIGINT": {}, "UHUGEINT": {},
	"FLOAT": {}, "DOUBLE": {},
}

func isNumericType(typ string) bool {
	if strings.HasPrefix(typ, "DECIMAL") {
		return true
	}
	_, ok := numericTypeNames[typ]
	return ok
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
