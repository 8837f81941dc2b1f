// Package fuzzy expands a possibly-misspelled token into the set of
// wordlist words within a bounded edit distance, per C2 of the
// recovery pipeline.
package fuzzy

import (
	"sort"

	"github.com/heptasean/seedrecover/internal/wordlist"
)

// Distance computes the Levenshtein edit distance between a and b,
// operating on runes rather than bytes so multi-byte wordlists (e.g.
// non-English BIP-39 lists) are measured correctly.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			curr[j] = min3(del, ins, sub)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

type scored struct {
	index    int
	distance int
}

// Expand returns the ordered set of wordlist words within edit
// distance k of token, ascending by distance and tie-broken by
// wordlist index for reproducibility. An empty token or the "?"
// sentinel returns the full wordlist and wasInWordlist=false. If
// token is itself in the wordlist, it is always included (distance
// 0) regardless of k.
func Expand(wl *wordlist.Wordlist, token string, k int) (words []string, wasInWordlist bool) {
	if token == "" || token == "?" {
		return wl.All(), false
	}

	wasInWordlist = wl.Contains(token)
	if k == 0 {
		if wasInWordlist {
			return []string{token}, true
		}
		return nil, false
	}

	all := wl.All()
	candidates := make([]scored, 0, len(all))
	for i, w := range all {
		if d := Distance(token, w); d <= k {
			candidates = append(candidates, scored{index: i, distance: d})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].index < candidates[j].index
	})

	words = make([]string, len(candidates))
	for i, c := range candidates {
		words[i] = all[c.index]
	}
	return words, wasInWordlist
}

// ExpandIndices is Expand, but returns wordlist indices directly
// (what the candidate generator actually wants) instead of words.
func ExpandIndices(wl *wordlist.Wordlist, token string, k int) (indices []int, wasInWordlist bool) {
	words, was := Expand(wl, token, k)
	indices = make([]int, len(words))
	for i, w := range words {
		idx, err := wl.IndexOf(w)
		if err != nil {
			// words came from wl.All() or wl itself, so this cannot happen.
			panic(err)
		}
		indices[i] = idx
	}
	return indices, was
}
