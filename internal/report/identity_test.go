package report

import "testing"

func TestNameORCIDWithoutID(t *testing.T) {
	if got := NameORCID("Ada Author", ""); got != "Ada Author" {
		t.Fatalf("expected plain name, got %q", got)
	}
}

func TestNameORCIDWithID(t *testing.T) {
	want := "A (ORCID: [0000-0001-2345-6789](https://orcid.org/0000-0001-2345-6789))"
	if got := NameORCID("A", "0000-0001-2345-6789"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNameORCIDEscapesName(t *testing.T) {
	if got := NameORCID("Ada_Author", ""); got != `Ada\_Author` {
		t.Fatalf("expected escaped underscore, got %q", got)
	}
}

func TestNameORCIDPassesIDThrough(t *testing.T) {
	// The ORCID is not normalized or escaped; it lands verbatim in the link.
	got := NameORCID("A", "0000-0002-1825-009X")
	want := "A (ORCID: [0000-0002-1825-009X](https://orcid.org/0000-0002-1825-009X))"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
