package fuzzy

import (
	"testing"

	"github.com/heptasean/seedrecover/internal/wordlist"
)

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abandon", "abandon", 0},
		{"", "abandon", 7},
		{"abandon", "", 7},
		{"kitten", "sitting", 3},
		{"prize", "price", 1},
		{"gasp", "gap", 1},
	}
	for _, c := range cases {
		if got := Distance(c.a, c.b); got != c.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

// TestExpandContainsExactMatch covers property 2: expand(t, k)
// contains t for any k >= 0 iff t is in the wordlist.
func TestExpandContainsExactMatch(t *testing.T) {
	wl := wordlist.Default()
	for _, k := range []int{0, 1, 2} {
		words, exact := Expand(wl, "abandon", k)
		if !exact {
			t.Errorf("k=%d: expected wasInWordlist=true for an exact match", k)
		}
		if !contains(words, "abandon") {
			t.Errorf("k=%d: expected expansion to contain the exact match", k)
		}
	}
}

func TestExpandUnknownTokenAtZeroDistanceIsEmpty(t *testing.T) {
	wl := wordlist.Default()
	words, exact := Expand(wl, "notaword", 0)
	if exact {
		t.Errorf("expected wasInWordlist=false for an absent word")
	}
	if len(words) != 0 {
		t.Errorf("expected no candidates at k=0 for an absent word, got %v", words)
	}
}

func TestExpandTypoWithinDistanceOne(t *testing.T) {
	wl := wordlist.Default()
	words, exact := Expand(wl, "prise", 1)
	if exact {
		t.Fatalf("%q should not be an exact wordlist member", "prise")
	}
	if !contains(words, "price") {
		t.Errorf("expected %q to expand to include %q, got %v", "prise", "price", words)
	}
}

func TestExpandEmptyTokenReturnsFullWordlist(t *testing.T) {
	wl := wordlist.Default()
	for _, token := range []string{"", "?"} {
		words, exact := Expand(wl, token, 0)
		if exact {
			t.Errorf("token %q should report wasInWordlist=false", token)
		}
		if len(words) != wordlist.Size {
			t.Errorf("token %q: expected the full wordlist, got %d words", token, len(words))
		}
	}
}

func TestExpandOrderedByDistanceThenIndex(t *testing.T) {
	wl := wordlist.Default()
	words, _ := Expand(wl, "prize", 2)
	lastDist := -1
	lastIdx := -1
	for _, w := range words {
		idx, err := wl.IndexOf(w)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		d := Distance("prize", w)
		if d < lastDist {
			t.Fatalf("expansion not ascending by distance: %q (d=%d) came after d=%d", w, d, lastDist)
		}
		if d == lastDist && idx < lastIdx {
			t.Fatalf("expansion not tie-broken by index within distance %d", d)
		}
		lastDist, lastIdx = d, idx
	}
}

func TestExpandIndicesMatchesExpand(t *testing.T) {
	wl := wordlist.Default()
	words, wExact := Expand(wl, "prize", 1)
	indices, iExact := ExpandIndices(wl, "prize", 1)
	if wExact != iExact {
		t.Fatalf("Expand and ExpandIndices disagree on wasInWordlist")
	}
	if len(words) != len(indices) {
		t.Fatalf("len mismatch: %d words vs %d indices", len(words), len(indices))
	}
	for i, idx := range indices {
		if wl.WordAt(idx) != words[i] {
			t.Errorf("index %d resolves to %q, want %q", idx, wl.WordAt(idx), words[i])
		}
	}
}

func contains(words []string, target string) bool {
	for _, w := range words {
		if w == target {
			return true
		}
	}
	return false
}
