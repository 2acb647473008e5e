package report

// Kind states which rendering sink a fragment targets.
type Kind string

const (
	// KindMarkdown fragments are safe to mix with prose.
	KindMarkdown Kind = "markdown"
	// KindLaTeX fragments are inserted verbatim into the typeset document.
	KindLaTeX Kind = "latex"
)

// Fragment is one self-contained piece of the certificate document.
type Fragment struct {
	Kind Kind
	Body string
}
