// Package wordlist provides the canonical BIP-39 word list: a total
// bijection between [0, 2048) and a set of lowercase words, with O(1)
// lookup in both directions.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// Size is the number of words a legal BIP-39 word list must contain.
const Size = 2048

// ErrBadWordlist is returned when a wordlist file does not contain
// exactly Size non-empty lines.
var ErrBadWordlist = errors.New("wordlist: malformed wordlist")

// ErrNotInWordlist is returned by IndexOf for a word outside the list.
var ErrNotInWordlist = errors.New("wordlist: not in wordlist")

// Wordlist is an immutable, process-wide-shareable word list. Once
// built it is read-only, so concurrent lookups from worker goroutines
// need no locking.
type Wordlist struct {
	words []string
	index map[string]int
}

// Default returns the built-in English BIP-39 wordlist.
func Default() *Wordlist {
	wl, err := build(wordlists.English)
	if err != nil {
		// The embedded English list is a build-time constant; a
		// failure here means tyler-smith/go-bip39 shipped something
		// broken, which we treat as a programming error.
		panic(err)
	}
	return wl
}

// Load reads a wordlist file: UTF-8 text, one word per line. Exactly
// Size non-empty lines (after trimming whitespace) are required.
func Load(path string) (*Wordlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadWordlist, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var words []string
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadWordlist, err)
	}
	return build(words)
}

func build(words []string) (*Wordlist, error) {
	if len(words) != Size {
		return nil, fmt.Errorf("%w: want %d words, got %d", ErrBadWordlist, Size, len(words))
	}
	index := make(map[string]int, len(words))
	for i, w := range words {
		if _, dup := index[w]; dup {
			return nil, fmt.Errorf("%w: duplicate word %q", ErrBadWordlist, w)
		}
		index[w] = i
	}
	out := make([]string, len(words))
	copy(out, words)
	return &Wordlist{words: out, index: index}, nil
}

// WordAt returns the word for the given 0-based index.
func (w *Wordlist) WordAt(i int) string {
	return w.words[i]
}

// IndexOf returns the 0-based index for a word, or ErrNotInWordlist.
func (w *Wordlist) IndexOf(word string) (int, error) {
	i, ok := w.index[word]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotInWordlist, word)
	}
	return i, nil
}

// Contains reports whether word is a member of the list.
func (w *Wordlist) Contains(word string) bool {
	_, ok := w.index[word]
	return ok
}

// All returns every word in the list, in index order. The returned
// slice must not be mutated by the caller.
func (w *Wordlist) All() []string {
	return w.words
}

// Len returns the number of words in the list (always Size).
func (w *Wordlist) Len() int {
	return len(w.words)
}

// AllIndices returns the full range [0, Len()) as a Slot-ready index
// list, used by the candidate generator for unknown positions.
func (w *Wordlist) AllIndices() []int {
	out := make([]int, len(w.words))
	for i := range out {
		out[i] = i
	}
	return out
}
