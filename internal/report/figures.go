package report

import (
	"path"
	"path/filepath"
	"strings"
)

// DefaultFigureExtensions are the file types embedded into the typeset
// certificate.
var DefaultFigureExtensions = []string{".pdf", ".eps"}

// figureMaxWidth caps embedded figures so oversized source images cannot
// break the page layout.
const figureMaxWidth = `0.9\linewidth`

// LaTeXFigures emits one raw figure environment per manifest entry whose
// extension is in the recognized set (case-insensitive; nil means the
// default set). Entries with other extensions are deliberately not handled
// here: they are surfaced through the manifest table instead.
func (b *Builder) LaTeXFigures(extensions []string) Fragment {
	if extensions == nil {
		extensions = DefaultFigureExtensions
	}
	recognized := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		recognized[strings.ToLower(ext)] = struct{}{}
	}

	var lines []string
	for _, entry := range b.cfg.Manifest {
		if _, ok := recognized[strings.ToLower(filepath.Ext(entry.File))]; !ok {
			continue
		}
		lines = append(lines, `\begin{figure}`)
		lines = append(lines, `\texttt{`+EscapeLaTeX(entry.File)+`}.\\`)
		if entry.Comment != "" {
			lines = append(lines, `Author comment: \emph{`+EscapeLaTeX(entry.Comment)+`}\\`)
		}
		lines = append(lines,
			`\includegraphics[width=`+figureMaxWidth+`]{`+path.Join("outputs", entry.File)+`}`)
		lines = append(lines, `\end{figure}`, "")
	}
	return Fragment{Kind: KindLaTeX, Body: strings.Join(lines, "\n")}
}
