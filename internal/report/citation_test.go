package report

import "testing"

func TestCitation(t *testing.T) {
	builder := New(testConfig(), t.TempDir())
	frag, err := builder.Citation()
	if err != nil {
		t.Fatalf("citation: %v", err)
	}
	want := "Carol Checker (2024). CODECHECK Certificate 2024-012. Zenodo. " +
		"[doi.org/10.5281/zenodo.0000000](https://doi.org/10.5281/zenodo.0000000)"
	if frag.Body != want {
		t.Fatalf("expected %q, got %q", want, frag.Body)
	}

	again, err := builder.Citation()
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if frag != again {
		t.Fatalf("expected byte-identical citation")
	}
}

func TestCitationBadCheckTime(t *testing.T) {
	cfg := testConfig()
	cfg.CheckTime = "???"
	if _, err := New(cfg, t.TempDir()).Citation(); err == nil {
		t.Fatalf("expected error for unparsable check_time")
	}
}
