package report

import "testing"

func TestMarkdownLink(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{
			url:  "https://doi.org/10.5281/zenodo.0000000",
			want: "[doi.org/10.5281/zenodo.0000000](https://doi.org/10.5281/zenodo.0000000)",
		},
		// No scheme: the full value is the label.
		{
			url:  "doi.org/10.1000/paper",
			want: "[doi.org/10.1000/paper](doi.org/10.1000/paper)",
		},
		// Parentheses and spaces would terminate the link target.
		{
			url:  "https://example.org/wiki/Check_(script)",
			want: `[example.org/wiki/Check\_(script)](https://example.org/wiki/Check_%28script%29)`,
		},
		{
			url:  "https://example.org/a b",
			want: "[example.org/a b](https://example.org/a%20b)",
		},
	}
	for _, tc := range tests {
		if got := markdownLink(tc.url); got != tc.want {
			t.Fatalf("markdownLink(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}
