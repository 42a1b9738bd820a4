package milesian

import (
	"math/big"
	"testing"
)

// ============================================================
// Encoding Benchmarks
// ============================================================
//
// Run with:
//   go test -bench=BenchmarkEncode -benchmem -count=5 ./milesian/

// BenchmarkEncode_SingleDigit benchmarks the smallest non-zero numeral.
func BenchmarkEncode_SingleDigit(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Encode(7, Lower)
	}
}

// BenchmarkEncode_FourDigits benchmarks a full single group.
func BenchmarkEncode_FourDigits(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Encode(5683, Lower)
	}
}

// BenchmarkEncode_ThreeGroups benchmarks a numeral with two myriad prefixes.
func BenchmarkEncode_ThreeGroups(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Encode(2056839184, Lower)
	}
}

// BenchmarkEncode_MaxUint64 benchmarks the largest uint64 input.
func BenchmarkEncode_MaxUint64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Encode(1<<64-1, Lower)
	}
}

// BenchmarkEncodeBig_Max benchmarks the 40-digit domain ceiling.
func BenchmarkEncodeBig_Max(b *testing.B) {
	n := Max()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = EncodeBig(n, Lower)
	}
}

// BenchmarkEncodeBig_Uint64Path benchmarks the fast path for small big.Ints.
func BenchmarkEncodeBig_Uint64Path(b *testing.B) {
	n := big.NewInt(97554)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = EncodeBig(n, Lower)
	}
}
