// Package search implements C7: the worker-pool driver that pulls
// candidate index tuples from C4, derives a stake address for each
// via C5, classifies it via C6, and reports progress and matches.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/heptasean/seedrecover/internal/cardano"
	"github.com/heptasean/seedrecover/internal/candidate"
	"github.com/heptasean/seedrecover/internal/oracle"
	"github.com/heptasean/seedrecover/internal/wordlist"
)

// Options configures a Run.
type Options struct {
	Passphrase string
	Reorder    bool
	Targets    []string
	Oracle     oracle.Classifier
	Workers    int
	// ProgressEvery reports a progress line every time TotalChecked
	// doubles past this many candidates; 0 disables progress lines.
	ProgressEvery uint64
}

// Match pairs a derived stake address and the phrase (as wordlist
// indices) that produced it with the oracle's reason.
type Match struct {
	Address string
	Indices []int
	Reason  string
}

// Report summarizes one completed (or cancelled) run.
type Report struct {
	Counters candidate.Counters
	Matches  []Match
}

// Run drives the pipeline from candidate generation through key
// derivation to match classification across opts.Workers worker
// goroutines pulling from a shared Generator: only per-partition
// order is promised once more than one worker pulls concurrently.
// Cancellation via ctx stops pulls between candidates, never
// mid-derivation.
func Run(ctx context.Context, wl *wordlist.Wordlist, slots []candidate.Slot, length int, opts Options, out io.Writer) (*Report, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	gen := candidate.NewGenerator(slots, length, opts.Reorder)
	matcher := oracle.NewTargetMatcher(opts.Targets)

	var (
		mu             sync.Mutex
		matches        []Match
		matchedTargets = make(map[string]struct{})
		fatalErr       error
		nextProgress   atomic.Uint64
	)
	if opts.ProgressEvery > 0 {
		nextProgress.Store(opts.ProgressEvery)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				if ctx.Err() != nil {
					return
				}
				indices, ok := gen.Next()
				if !ok {
					return
				}

				reportProgress(out, gen, opts.ProgressEvery, &nextProgress)

				match, err := classify(ctx, indices, opts.Passphrase, matcher, opts.Oracle, len(opts.Targets) > 0)
				if err != nil {
					mu.Lock()
					if fatalErr == nil {
						fatalErr = err
						cancel()
					}
					mu.Unlock()
					return
				}
				if match == nil {
					continue
				}

				fmt.Fprintf(out, "%s: %s\n", match.Address, formatWords(wl, indices))

				mu.Lock()
				matches = append(matches, *match)
				matchedTargets[match.Reason] = struct{}{}
				allTargetsMatched := opts.Oracle == nil && len(matchedTargets) >= len(opts.Targets) && len(opts.Targets) > 0
				mu.Unlock()
				if allTargetsMatched {
					cancel()
				}
			}
		}()
	}
	wg.Wait()

	report := &Report{Counters: gen.Counters, Matches: matches}
	if fatalErr != nil {
		return report, fatalErr
	}
	return report, nil
}

// classify derives the stake address for indices and checks it
// against the user target list, falling through to the chain oracle
// only when no user target matched. When neither a target list nor a
// chain oracle is configured, every checksum-valid candidate counts
// as a match: it's simply printed.
func classify(ctx context.Context, indices []int, passphrase string, matcher *oracle.TargetMatcher, chainOracle oracle.Classifier, hasTargets bool) (*Match, error) {
	addr, err := cardano.StakeAddress(indices, passphrase)
	if err != nil {
		// Degenerate derivation (cardano.ErrDerivationDegenerate): skip the candidate.
		return nil, nil
	}

	m, _ := matcher.Classify(ctx, addr)
	if m != nil {
		return &Match{Address: addr, Indices: indices, Reason: m.Reason}, nil
	}

	if chainOracle == nil {
		if !hasTargets {
			return &Match{Address: addr, Indices: indices, Reason: "printed"}, nil
		}
		return nil, nil
	}
	m, err = chainOracle.Classify(ctx, addr)
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil
		}
		if errors.Is(err, oracle.ErrTransient) {
			// Backoff already exhausted upstream; treat as unknown
			// activity and keep searching rather than aborting.
			return nil, nil
		}
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	return &Match{Address: addr, Indices: indices, Reason: m.Reason}, nil
}

// reportProgress emits a progress line each time TotalChecked crosses
// the next doubling threshold, without a dedicated ticker goroutine.
func reportProgress(out io.Writer, gen *candidate.Generator, every uint64, next *atomic.Uint64) {
	if every == 0 {
		return
	}
	total := gen.Counters.TotalChecked.Load()
	threshold := next.Load()
	if total < threshold {
		return
	}
	if next.CompareAndSwap(threshold, threshold*2) {
		fmt.Fprintf(out, "progress: total=%d fulfilled_checksum=%d without_repetitions=%d\n",
			total, gen.Counters.FulfilledChecksum.Load(), gen.Counters.WithoutRepetitions.Load())
	}
}

// formatWords renders an index tuple as its space-separated phrase.
func formatWords(wl *wordlist.Wordlist, indices []int) string {
	words := make([]string, len(indices))
	for i, idx := range indices {
		words[i] = wl.WordAt(idx)
	}
	out := words[0]
	for _, w := range words[1:] {
		out += " " + w
	}
	return out
}
