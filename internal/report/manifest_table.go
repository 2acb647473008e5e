package report

import (
	"fmt"
	"path"
	"strings"

	"codecheck/internal/manifest"
)

// manifestTableHeader pads the header cells with non-breaking spaces because
// pandoc derives LaTeX column widths from the header length.
const manifestTableHeader = "File&nbsp;&nbsp;&nbsp; | " +
	"Comment&nbsp;&nbsp;&nbsp;&nbsp;&nbsp; | Size (b)\n" +
	":--------------------- | :----------------------------------- | -------:\n"

// ManifestTable renders one table row per manifest entry, in manifest order.
// Sizes not declared in the configuration are probed from the output
// directory; a missing file aborts with the resolution error and no partial
// table. When removeDirname is set only the base name is displayed, while
// resolution still uses the full relative path.
func (b *Builder) ManifestTable(removeDirname bool) (Fragment, error) {
	resolved, err := manifest.Resolve(b.cfg.Manifest, b.outputRoot)
	if err != nil {
		return Fragment{}, err
	}

	var doc strings.Builder
	doc.WriteString(manifestTableHeader)
	for _, item := range resolved {
		name := item.Entry.File
		if removeDirname {
			name = path.Base(name)
		}
		fmt.Fprintf(&doc, "`%s` | %s | %d\n", name, tableCell(item.Entry.Comment), item.Size)
	}
	return Fragment{Kind: KindMarkdown, Body: doc.String()}, nil
}
