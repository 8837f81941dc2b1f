// Package cli implements flag parsing and help text for the recovery
// tool: a small Options struct, a ParseArgs entry point built on the
// standard flag package, and a DisplayHelp that drives pkg/ui.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/heptasean/seedrecover/pkg/ui"
)

// ErrUsage is returned by ParseArgs for malformed flag input (a
// nonnumeric --missing position, an unparseable --length, etc.).
var ErrUsage = errors.New("cli: usage error")

// Options holds everything ParseArgs extracts from argv.
type Options struct {
	Wordlist   string
	Blockfrost string
	Similar    int
	Length     int
	Order      bool
	Missing    []int
	Addresses  []string
	Words      []string
}

// intList is a flag.Value accumulating one or more comma-separated
// or repeated integer arguments, used for --missing.
type intList struct{ values *[]int }

func (l intList) String() string {
	if l.values == nil {
		return ""
	}
	parts := make([]string, len(*l.values))
	for i, v := range *l.values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l intList) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return fmt.Errorf("%w: --missing value %q is not an integer", ErrUsage, part)
		}
		*l.values = append(*l.values, v)
	}
	return nil
}

// stringList is a flag.Value accumulating one value per flag
// occurrence, used for --address (repeatable).
type stringList struct{ values *[]string }

func (l stringList) String() string {
	if l.values == nil {
		return ""
	}
	return strings.Join(*l.values, ",")
}

func (l stringList) Set(s string) error {
	*l.values = append(*l.values, s)
	return nil
}

// ParseArgs parses args (typically os.Args[1:]) into an Options,
// with trailing non-flag arguments taken as the known phrase words,
// in order, as positional words.
func ParseArgs(args []string) (*Options, error) {
	fs := flag.NewFlagSet("seedrecover", flag.ContinueOnError)

	opts := &Options{}
	fs.StringVar(&opts.Wordlist, "wordlist", "", "Path to an alternative 2048-word list file")
	fs.StringVar(&opts.Blockfrost, "blockfrost", "", "Enable the chain-activity oracle with this BlockFrost API key")
	fs.IntVar(&opts.Similar, "similar", 0, "Maximum edit distance for fuzzy word expansion")
	fs.IntVar(&opts.Length, "length", 0, "Fix the phrase length (12, 15, 18, 21, or 24)")
	fs.BoolVar(&opts.Order, "order", false, "Enable structured row/column reordering")
	fs.Var(intList{&opts.Missing}, "missing", "1-indexed positions of missing words (repeatable, or comma-separated)")
	fs.Var(stringList{&opts.Addresses}, "address", "Target stake address, exact or prefix...suffix (repeatable)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	opts.Words = fs.Args()

	if opts.Length != 0 {
		switch opts.Length {
		case 12, 15, 18, 21, 24:
		default:
			return nil, fmt.Errorf("%w: --length %d is not one of 12,15,18,21,24", ErrUsage, opts.Length)
		}
	}
	if opts.Similar < 0 {
		return nil, fmt.Errorf("%w: --similar must be non-negative", ErrUsage)
	}
	for _, pos := range opts.Missing {
		if pos < 1 {
			return nil, fmt.Errorf("%w: --missing position %d must be 1-indexed and positive", ErrUsage, pos)
		}
	}

	return opts, nil
}

// DisplayHelp shows usage information in the boxed, colored style
// driven by pkg/ui.
func DisplayHelp(cs *ui.ColorScheme) {
	ui.PrintHeader(cs, "seedrecover - Cardano stake address recovery")

	ui.PrintSectionHeader(cs, "USAGE:")
	cs.Normal.Println("  seedrecover [options] [known words...]")
	fmt.Println()

	ui.PrintSectionHeader(cs, "OPTIONS:")
	ui.PrintOption(cs, "-wordlist string   ", "Path to an alternative 2048-word list file")
	ui.PrintOption(cs, "-similar int       ", "Maximum edit distance for fuzzy word expansion (default 0)")
	ui.PrintOption(cs, "-order             ", "Enable structured row/column reordering")
	ui.PrintOption(cs, "-length int        ", "Fix the phrase length: 12, 15, 18, 21, or 24")
	ui.PrintOption(cs, "-missing ints      ", "1-indexed positions of missing words (repeatable)")
	ui.PrintOption(cs, "-address string    ", "Target stake address, exact or prefix...suffix (repeatable)")
	ui.PrintOption(cs, "-blockfrost string ", "Enable the chain-activity oracle with this BlockFrost API key")
	fmt.Println()

	ui.PrintSectionHeader(cs, "EXAMPLES:")
	ui.PrintExample(cs, "seedrecover -similar 1 abandon ... about           ", "recover typos in a known phrase")
	ui.PrintExample(cs, "seedrecover -missing 24 abandon ... shock gasp     ", "recover one missing word")
	ui.PrintExample(cs, "seedrecover -order abandon ... about               ", "recover a transposed phrase")
	ui.PrintExample(cs, "seedrecover -address stake1u9...24r8yq abandon ... ", "stop at a known target address")
	fmt.Println()

	ui.PrintSectionHeader(cs, "DESCRIPTION:")
	cs.Normal.Println("")
	cs.Normal.Println("  seedrecover reconstructs a Cardano BIP-39 mnemonic from a partially")
	cs.Normal.Println("  remembered seed phrase: typos, missing words, and scrambled order.")
	cs.Normal.Println("  Every checksum-valid candidate is derived to its stake address and")
	cs.Normal.Println("  checked against your target addresses or on-chain activity.")
	cs.Normal.Println("")
}
