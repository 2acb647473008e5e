package report

import "fmt"

// NameORCID renders a person for the Markdown fragments: the escaped name
// alone, or with a linked ORCID when one is given. The ORCID is passed
// through untouched; validation catches malformed ids before rendering.
func NameORCID(name, orcid string) string {
	if orcid == "" {
		return EscapeMarkdown(name)
	}
	return fmt.Sprintf("%s (ORCID: [%s](https://orcid.org/%s))", EscapeMarkdown(name), orcid, orcid)
}
