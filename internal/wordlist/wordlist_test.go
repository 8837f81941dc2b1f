package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsCompleteAndBijective(t *testing.T) {
	wl := Default()
	if wl.Len() != Size {
		t.Fatalf("Len() = %d, want %d", wl.Len(), Size)
	}
	for i := 0; i < Size; i++ {
		word := wl.WordAt(i)
		idx, err := wl.IndexOf(word)
		if err != nil {
			t.Fatalf("IndexOf(%q) unexpected error: %v", word, err)
		}
		if idx != i {
			t.Errorf("round trip broke at %d: WordAt(%d)=%q, IndexOf=%d", i, i, word, idx)
		}
	}
}

func TestContainsAndIndexOf(t *testing.T) {
	wl := Default()
	if !wl.Contains("abandon") {
		t.Errorf("expected wordlist to contain %q", "abandon")
	}
	if wl.Contains("notaword") {
		t.Errorf("did not expect wordlist to contain %q", "notaword")
	}
	if _, err := wl.IndexOf("notaword"); err == nil {
		t.Errorf("expected ErrNotInWordlist for an absent word")
	}
}

func TestAllIndicesIsFullRange(t *testing.T) {
	wl := Default()
	indices := wl.AllIndices()
	if len(indices) != Size {
		t.Fatalf("len(AllIndices()) = %d, want %d", len(indices), Size)
	}
	for i, v := range indices {
		if v != i {
			t.Fatalf("AllIndices()[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestLoadValidFile(t *testing.T) {
	words := Default().All()
	path := filepath.Join(t.TempDir(), "wordlist.txt")
	if err := os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	wl, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wl.Len() != Size {
		t.Errorf("Len() = %d, want %d", wl.Len(), Size)
	}
}

func TestLoadRejectsWrongCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.txt")
	if err := os.WriteFile(path, []byte("abandon\nability\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected ErrBadWordlist for a short file")
	}
}

func TestLoadRejectsDuplicates(t *testing.T) {
	words := Default().All()
	dup := make([]string, len(words))
	copy(dup, words)
	dup[Size-1] = dup[0] // duplicate the first word at the last position

	path := filepath.Join(t.TempDir(), "dup.txt")
	if err := os.WriteFile(path, []byte(strings.Join(dup, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected ErrBadWordlist for a wordlist with a duplicate")
	}
}
