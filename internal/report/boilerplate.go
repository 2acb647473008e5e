package report

// aboutText is the fixed wording every certificate carries about what a
// CODECHECK does and does not attest.
const aboutText = "This certificate confirms that the codechecker could " +
	"independently reproduce the results of a computational analysis given the " +
	"data and code from a third party. A CODECHECK does not check whether the " +
	"original computational analysis is correct. However, as all materials " +
	"required for the reproduction are freely available by following the links " +
	"in this document, the reader can then study for themselves the code and data."

// About renders the boilerplate paragraph describing a CODECHECK.
func (b *Builder) About() Fragment {
	return Fragment{Kind: KindMarkdown, Body: aboutText}
}
