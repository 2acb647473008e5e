package report

import (
	"fmt"

	"codecheck/internal/spec"
)

// Citation renders the fixed citation line for the certificate itself:
// checker, year of check, certificate id, archive, report link.
func (b *Builder) Citation() (Fragment, error) {
	checkTime, err := spec.ParseCheckTime(b.cfg.CheckTime)
	if err != nil {
		return Fragment{}, err
	}
	body := fmt.Sprintf("%s (%d). CODECHECK Certificate %s. Zenodo. %s",
		EscapeMarkdown(b.cfg.Codechecker.Name),
		checkTime.Year(),
		EscapeMarkdown(b.cfg.Certificate),
		markdownLink(b.cfg.Report),
	)
	return Fragment{Kind: KindMarkdown, Body: body}, nil
}
