package milesian

import "math/big"

// decompose returns the decimal digits of n, most significant first,
// left-padded with zero digits to a multiple of four so the result splits
// cleanly into myriad groups. n must be greater than zero.
func decompose(n uint64) []int {
	// uint64 tops out at 20 digits, so 24 covers the padding too.
	buf := make([]int, 0, 24)
	for n > 0 {
		buf = append(buf, int(n%10))
		n /= 10
	}
	return padAndReverse(buf)
}

var bigTen = big.NewInt(10)

// decomposeBig is decompose for arbitrary-precision input. n must be
// positive; callers validate the domain first.
func decomposeBig(n *big.Int) []int {
	buf := make([]int, 0, 40)
	rem := new(big.Int)
	q := new(big.Int).Set(n)
	for q.Sign() > 0 {
		q.QuoRem(q, bigTen, rem)
		buf = append(buf, int(rem.Int64()))
	}
	return padAndReverse(buf)
}

// padAndReverse turns a least-significant-first digit buffer into the
// most-significant-first padded form the renderer consumes.
func padAndReverse(buf []int) []int {
	for len(buf)%4 != 0 {
		buf = append(buf, 0)
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}
