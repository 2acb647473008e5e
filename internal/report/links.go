package report

import "strings"

// markdownLink renders a URL as a link whose label drops the scheme, the
// form certificates use for DOIs and repositories. A value without a scheme
// keeps its full text as the label.
func markdownLink(url string) string {
	label := url
	if idx := strings.Index(url, "://"); idx >= 0 {
		label = url[idx+len("://"):]
	}
	return "[" + tableCell(label) + "](" + linkTarget(url) + ")"
}

// linkTargetReplacer encodes the characters that terminate or split a
// Markdown link target.
var linkTargetReplacer = strings.NewReplacer(
	" ", "%20",
	"(", "%28",
	")", "%29",
	"<", "%3C",
	">", "%3E",
)

func linkTarget(url string) string {
	return linkTargetReplacer.Replace(url)
}
