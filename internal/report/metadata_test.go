package report

import (
	"strings"
	"testing"
)

func TestTitleAndMetadata(t *testing.T) {
	builder := New(testConfig(), t.TempDir())
	frag, err := builder.TitleAndMetadata()
	if err != nil {
		t.Fatalf("title and metadata: %v", err)
	}
	if frag.Kind != KindMarkdown {
		t.Fatalf("expected markdown fragment, got %q", frag.Kind)
	}

	body := frag.Body
	if !strings.Contains(body, "# CODECHECK certificate 2024-012 {-}") {
		t.Fatalf("missing certificate heading:\n%s", body)
	}
	if !strings.Contains(body, "[doi.org/10.5281/zenodo.0000000](https://doi.org/10.5281/zenodo.0000000)") {
		t.Fatalf("missing linked report reference:\n%s", body)
	}
	// The underscore in the paper title must render escaped.
	if !strings.Contains(body, `*Modeling the spread\_of\_things*`) {
		t.Fatalf("expected escaped title:\n%s", body)
	}
	// Authors appear in input order, one per line.
	authorsRow := "Authors | Ada Author (ORCID: [0000-0001-2345-6789](https://orcid.org/0000-0001-2345-6789))<br>Ben Author"
	if !strings.Contains(body, authorsRow) {
		t.Fatalf("unexpected authors row:\n%s", body)
	}
	if !strings.Contains(body, "Date of check | 2024-03-01") {
		t.Fatalf("missing check date:\n%s", body)
	}
	if !strings.Contains(body, "Summary | The results were reproduced.") {
		t.Fatalf("missing summary row:\n%s", body)
	}
}

func TestTitleAndMetadataMultilineTitle(t *testing.T) {
	// A block scalar title carries a newline; the table row must stay on
	// one line.
	cfg := testConfig()
	cfg.Paper.Title = "Modeling the spread\nof things"
	frag, err := New(cfg, t.TempDir()).TitleAndMetadata()
	if err != nil {
		t.Fatalf("title and metadata: %v", err)
	}
	if !strings.Contains(frag.Body, "Title | *Modeling the spread of things*\n") {
		t.Fatalf("expected collapsed title row:\n%s", frag.Body)
	}
}

func TestTitleAndMetadataIdempotent(t *testing.T) {
	builder := New(testConfig(), t.TempDir())
	first, err := builder.TitleAndMetadata()
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := builder.TitleAndMetadata()
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if first != second {
		t.Fatalf("expected byte-identical fragments")
	}
}

func TestTitleAndMetadataBadCheckTime(t *testing.T) {
	cfg := testConfig()
	cfg.CheckTime = "no idea"
	if _, err := New(cfg, t.TempDir()).TitleAndMetadata(); err == nil {
		t.Fatalf("expected error for unparsable check_time")
	}
}

func TestSummaryText(t *testing.T) {
	cfg := testConfig()
	cfg.Summary = "  All figures match.  "
	frag := New(cfg, t.TempDir()).SummaryText()
	if frag.Body != "All figures match." {
		t.Fatalf("unexpected summary %q", frag.Body)
	}
}

func TestAboutIsStable(t *testing.T) {
	builder := New(testConfig(), t.TempDir())
	if builder.About() != builder.About() {
		t.Fatalf("expected identical boilerplate")
	}
	if !strings.Contains(builder.About().Body, "independently reproduce") {
		t.Fatalf("unexpected boilerplate: %q", builder.About().Body)
	}
}
