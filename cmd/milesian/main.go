// milesian - Greek alphabetic numeral CLI
//
// Usage:
//
//	milesian encode [--upper] [n ...]  Encode decimal integers (args or stdin)
//	milesian inspect [--upper] [n]     Encode, then print a per-rune breakdown
//	milesian table [--upper]           Dump the glyph tables
//	milesian version                   Print version info
//
// Values up to 10^40-1 are accepted. If no numbers are given, reads one per
// line from stdin.
package main

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/Neumenon/milesian/milesian"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]

	// Parse flags and collect number arguments.
	c := milesian.Lower
	var nums []string
	for _, arg := range os.Args[2:] {
		switch {
		case arg == "--upper":
			c = milesian.Upper
		case arg == "--lower":
			c = milesian.Lower
		case strings.HasPrefix(arg, "--case="):
			parsed, err := milesian.ParseCase(strings.TrimPrefix(arg, "--case="))
			if err != nil {
				fatal("%v", err)
			}
			c = parsed
		case strings.HasPrefix(arg, "-") && arg != "-":
			fatal("unknown flag: %s", arg)
		default:
			nums = append(nums, arg)
		}
	}

	switch cmd {
	case "encode":
		cmdEncode(nums, c)
	case "inspect":
		cmdInspect(nums, c)
	case "table":
		cmdTable(c)
	case "version", "-v", "--version":
		fmt.Printf("milesian %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `milesian - Greek alphabetic numeral CLI

Usage:
  milesian encode [--upper] [n ...]   Encode decimal integers (args or stdin)
  milesian inspect [--upper] [n]      Encode, then print a per-rune breakdown
  milesian table [--upper]            Dump the glyph tables
  milesian version                    Print version info

Options:
  --upper          Uppercase letterforms (default: lowercase)
  --lower          Lowercase letterforms
  --case=NAME      Same as above, by name ("lower" or "upper")

Values from 0 to 10^40-1 are accepted. With no number arguments, encode reads
one value per line from stdin.

Examples:
  milesian encode 241
  # Output: σμαʹ

  milesian encode --upper 241
  # Output: ΣΜΑʹ

  seq 1 10 | milesian encode

  milesian inspect 97554
  # One line per rune: code point, Unicode name, role
`)
}

// cmdEncode: decimal integers -> numerals, one per line.
func cmdEncode(nums []string, c milesian.Case) {
	if len(nums) == 0 {
		nums = readLines(os.Stdin)
	}
	ok := true
	for _, s := range nums {
		out, err := encodeDecimal(s, c)
		if err != nil {
			fmt.Fprintf(os.Stderr, "milesian: %s: %v\n", s, err)
			ok = false
			continue
		}
		fmt.Println(out)
	}
	if !ok {
		os.Exit(1)
	}
}

// cmdInspect: encode one value and print its rune breakdown.
func cmdInspect(nums []string, c milesian.Case) {
	if len(nums) == 0 {
		nums = readLines(os.Stdin)
	}
	if len(nums) != 1 {
		fatal("inspect takes exactly one value")
	}

	out, err := encodeDecimal(nums[0], c)
	if err != nil {
		fatal("%s: %v", nums[0], err)
	}

	fmt.Printf("%s = %s\n", nums[0], out)
	for _, info := range milesian.Inspect(out) {
		fmt.Printf("  %c  U+%04X  %-14s %s\n", info.Rune, info.Rune, info.Role, info.Name)
	}
}

// cmdTable: dump the nine rows of each place-value table.
func cmdTable(c milesian.Case) {
	for _, band := range []struct {
		label string
		unit  uint64
	}{
		{"ones", 1},
		{"tens", 10},
		{"hundreds", 100},
		{"thousands", 1000},
	} {
		fmt.Printf("%s:", band.label)
		for d := uint64(1); d <= 9; d++ {
			numeral := milesian.Encode(d*band.unit, c)
			// Strip the closing keraia so the bare letterform shows.
			numeral = strings.TrimSuffix(numeral, milesian.Keraia)
			fmt.Printf(" %s", numeral)
		}
		fmt.Println()
	}
}

// encodeDecimal parses a base-10 value and encodes it, reporting domain
// errors for negatives and values past 10^40-1.
func encodeDecimal(s string, c milesian.Case) (string, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return "", fmt.Errorf("not a decimal integer")
	}
	return milesian.EncodeBig(n, c)
}

func readLines(r io.Reader) []string {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "milesian: "+format+"\n", args...)
	os.Exit(1)
}
