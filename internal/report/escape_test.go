package report

import (
	"strings"
	"testing"
)

func TestEscapeMarkdown(t *testing.T) {
	cases := []struct{ in, want string }{
		{"plain text", "plain text"},
		{"a_b", `a\_b`},
		{"50% & more", `50\% \& more`},
		{"x^2 ~ y", `x\^2 \~ y`},
		{"a\\b", `a\\b`},
		{"[link](x)", `\[link\](x)`},
	}
	for _, tc := range cases {
		if got := EscapeMarkdown(tc.in); got != tc.want {
			t.Fatalf("EscapeMarkdown(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// TestEscapeMarkdownRoundTrip verifies escaping is a reversible backslash
// prefix: stripping the inserted backslashes recovers the original text.
func TestEscapeMarkdownRoundTrip(t *testing.T) {
	original := `A title_with %strange& markup^ {and} [more]`
	escaped := EscapeMarkdown(original)
	recovered := unescapeMarkdown(escaped)
	if recovered != original {
		t.Fatalf("round trip lost content: %q -> %q", original, recovered)
	}
}

func unescapeMarkdown(text string) string {
	var b strings.Builder
	escaped := false
	for _, r := range text {
		if !escaped && r == '\\' {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}

func TestEscapeLaTeX(t *testing.T) {
	cases := []struct{ in, want string }{
		{"fig_1.pdf", `fig\_1.pdf`},
		{"100% done", `100\% done`},
		{"a & b", `a \& b`},
		{"x~y^z", `x\textasciitilde{}y\textasciicircum{}z`},
		{`back\slash`, `back\textbackslash{}slash`},
	}
	for _, tc := range cases {
		if got := EscapeLaTeX(tc.in); got != tc.want {
			t.Fatalf("EscapeLaTeX(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
