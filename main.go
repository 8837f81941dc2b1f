package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/heptasean/seedrecover/internal/candidate"
	"github.com/heptasean/seedrecover/internal/cli"
	"github.com/heptasean/seedrecover/internal/fuzzy"
	"github.com/heptasean/seedrecover/internal/oracle"
	"github.com/heptasean/seedrecover/internal/search"
	"github.com/heptasean/seedrecover/internal/wordlist"
	"github.com/heptasean/seedrecover/pkg/ui"
)

func main() {
	cs := ui.DefaultColorScheme()

	if len(os.Args) == 1 {
		cli.DisplayHelp(cs)
		return
	}

	opts, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("Usage error: %v", err)
	}

	ui.PrintHeader(cs, "seedrecover - Cardano stake address recovery")

	wl, err := loadWordlist(opts.Wordlist)
	if err != nil {
		log.Fatalf("Wordlist error: %v", err)
	}

	tokenSlots := make([]candidate.Slot, len(opts.Words))
	for i, token := range opts.Words {
		indices, exact := fuzzy.ExpandIndices(wl, token, opts.Similar)
		if len(indices) == 0 {
			ui.PrintWarning(cs, fmt.Sprintf("%q is not in the wordlist; treated as unknown", token))
			indices = wl.AllIndices()
		}
		ui.PrintExpansion(cs, i+1, token, len(indices), exact)
		tokenSlots[i] = candidate.Slot{Words: indices}
	}

	length, err := candidate.ResolveLength(len(opts.Words), len(opts.Missing), opts.Length)
	if err != nil {
		log.Fatalf("Length error: %v", err)
	}
	cs.Result.Print("Resolved phrase length: ")
	cs.Key.Printf("%d\n", length)

	full := candidate.Slot{Words: wl.AllIndices()}
	slots, err := candidate.ComposeSlots(tokenSlots, opts.Missing, length, full)
	if err != nil {
		log.Fatalf("Composition error: %v", err)
	}

	var chainOracle oracle.Classifier
	if opts.Blockfrost != "" {
		chainOracle = oracle.NewBlockfrostOracle(opts.Blockfrost)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	searchOpts := search.Options{
		Reorder:       opts.Order,
		Targets:       opts.Addresses,
		Oracle:        chainOracle,
		Workers:       runtime.NumCPU(),
		ProgressEvery: 2,
	}

	report, err := search.Run(ctx, wl, slots, length, searchOpts, os.Stdout)
	if err != nil {
		log.Fatalf("Search error: %v", err)
	}

	for i, m := range report.Matches {
		ui.PrintMatchHeader(cs, i+1, m.Reason)
	}

	message := fmt.Sprintf(
		"Checked %d candidates, %d fulfilled checksum, %d found matches",
		report.Counters.TotalChecked.Load(), report.Counters.FulfilledChecksum.Load(), len(report.Matches),
	)
	ui.PrintFooter(cs, message)
}

func loadWordlist(path string) (*wordlist.Wordlist, error) {
	if path == "" {
		return wordlist.Default(), nil
	}
	return wordlist.Load(path)
}
