package report

import (
	"fmt"
	"strings"

	"codecheck/internal/spec"
)

// TitleAndMetadata renders the certificate heading and the general
// information table (title, authors, reference, repository, codechecker,
// check date, summary).
func (b *Builder) TitleAndMetadata() (Fragment, error) {
	checkTime, err := spec.ParseCheckTime(b.cfg.CheckTime)
	if err != nil {
		return Fragment{}, err
	}

	authors := make([]string, 0, len(b.cfg.Paper.Authors))
	for _, author := range b.cfg.Paper.Authors {
		authors = append(authors, NameORCID(author.Name, author.ORCID))
	}

	var doc strings.Builder
	fmt.Fprintf(&doc, "# CODECHECK certificate %s {-}\n\n", EscapeMarkdown(b.cfg.Certificate))
	fmt.Fprintf(&doc, "## %s {-}\n\n", markdownLink(b.cfg.Report))
	doc.WriteString("Item | Value\n")
	doc.WriteString(":--- | :----\n")
	fmt.Fprintf(&doc, "Title | *%s*\n", tableCell(b.cfg.Paper.Title))
	fmt.Fprintf(&doc, "Authors | %s\n", strings.Join(authors, "<br>"))
	fmt.Fprintf(&doc, "Reference | %s\n", markdownLink(b.cfg.Paper.Reference))
	fmt.Fprintf(&doc, "Repository | %s\n", markdownLink(b.cfg.Repository))
	fmt.Fprintf(&doc, "Codechecker | %s\n", NameORCID(b.cfg.Codechecker.Name, b.cfg.Codechecker.ORCID))
	fmt.Fprintf(&doc, "Date of check | %s\n", checkTime.Format("2006-01-02"))
	fmt.Fprintf(&doc, "Summary | %s\n", tableCell(b.cfg.Summary))

	return Fragment{Kind: KindMarkdown, Body: doc.String()}, nil
}

// SummaryText renders the free-text summary on its own.
func (b *Builder) SummaryText() Fragment {
	return Fragment{Kind: KindMarkdown, Body: EscapeMarkdown(strings.TrimSpace(b.cfg.Summary))}
}

// tableCell escapes free text and collapses line breaks so multi-line values
// cannot break a one-row-per-line table.
func tableCell(text string) string {
	return EscapeMarkdown(strings.Join(strings.Fields(text), " "))
}
