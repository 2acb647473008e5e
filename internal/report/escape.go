package report

import "strings"

// markdownSpecials are the characters backslash-escaped in free text bound
// for the Markdown fragments. The set covers Markdown structure plus the
// LaTeX-reserved characters pandoc forwards, so arbitrary titles, names, and
// comments cannot corrupt the document layout. Escaping is a plain backslash
// prefix and therefore reversible.
const markdownSpecials = "\\`*_{}[]#|&%$~^"

// EscapeMarkdown escapes markup-significant characters in free text.
func EscapeMarkdown(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if strings.ContainsRune(markdownSpecials, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// latexReplacer escapes the characters LaTeX reserves in text mode.
var latexReplacer = strings.NewReplacer(
	"\\", `\textbackslash{}`,
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\textasciicircum{}`,
)

// EscapeLaTeX escapes LaTeX-reserved characters in free text.
func EscapeLaTeX(text string) string {
	return latexReplacer.Replace(text)
}
