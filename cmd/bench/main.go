// bench - milesian encoding benchmark runner
//
// Times the encoder across magnitude bands and compares output size against
// the plain decimal rendering:
//   - ns per encode (averaged over a fixed iteration count)
//   - bytes of numeral vs bytes of decimal
//
// Output: CSV and a markdown summary
package main

import (
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/Neumenon/milesian/milesian"
)

const iterations = 200000

type bandResult struct {
	Name         string
	DecimalBytes int
	NumeralBytes int
	NsPerOp      float64
}

func main() {
	bands := []struct {
		name   string
		sample *big.Int
	}{
		{"one_digit", big.NewInt(7)},
		{"four_digits", big.NewInt(5683)},
		{"one_myriad", big.NewInt(97554)},
		{"three_groups", big.NewInt(2056839184)},
		{"max_uint64", new(big.Int).SetUint64(1<<64 - 1)},
		{"ceiling", milesian.Max()},
	}

	var results []bandResult
	for _, band := range bands {
		numeral, err := milesian.EncodeBig(band.sample, milesian.Lower)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bench: %s: %v\n", band.name, err)
			os.Exit(1)
		}

		start := time.Now()
		for i := 0; i < iterations; i++ {
			_, _ = milesian.EncodeBig(band.sample, milesian.Lower)
		}
		elapsed := time.Since(start)

		results = append(results, bandResult{
			Name:         band.name,
			DecimalBytes: len(band.sample.Text(10)),
			NumeralBytes: len(numeral),
			NsPerOp:      float64(elapsed.Nanoseconds()) / float64(iterations),
		})
	}

	printCSV(results)
	printMarkdown(results)
}

func printCSV(results []bandResult) {
	fmt.Println("band,decimal_bytes,numeral_bytes,ns_per_op")
	for _, r := range results {
		fmt.Printf("%s,%d,%d,%.1f\n", r.Name, r.DecimalBytes, r.NumeralBytes, r.NsPerOp)
	}
	fmt.Println()
}

func printMarkdown(results []bandResult) {
	fmt.Println("| Band | Decimal bytes | Numeral bytes | ns/op |")
	fmt.Println("|------|--------------:|--------------:|------:|")
	for _, r := range results {
		fmt.Printf("| %s | %d | %d | %.1f |\n", r.Name, r.DecimalBytes, r.NumeralBytes, r.NsPerOp)
	}
}
