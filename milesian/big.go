package milesian

import (
	"math/big"

	"github.com/cockroachdb/errors"
)

// Domain errors for the arbitrary-precision entry point.
var (
	// ErrNegative is returned for inputs below zero; the notation has no
	// negative numerals.
	ErrNegative = errors.New("milesian: negative value")

	// ErrOverflow is returned for inputs at or above 10^40. A myriad prefix
	// is a single digit letter (1-9), which caps the representable range at
	// 10^40-1; past it the rendering would stop being one-to-one.
	ErrOverflow = errors.New("milesian: value exceeds 10^40-1")
)

// ceiling is 10^40, the first value the notation cannot represent.
var ceiling = new(big.Int).Exp(big.NewInt(10), big.NewInt(40), nil)

// Max returns the largest encodable value, 10^40-1. The result is a fresh
// copy the caller may mutate.
func Max() *big.Int {
	return new(big.Int).Sub(ceiling, big.NewInt(1))
}

// EncodeBig renders an arbitrary-precision n in the requested case. Unlike
// Encode, inputs can exceed uint64, so the domain is checked: values below
// zero return ErrNegative and values above Max return ErrOverflow instead of
// degrading into an ambiguous numeral.
func EncodeBig(n *big.Int, c Case) (string, error) {
	if n.Sign() < 0 {
		return "", errors.Wrapf(ErrNegative, "cannot encode %s", n)
	}
	if n.Cmp(ceiling) >= 0 {
		return "", errors.Wrapf(ErrOverflow, "%d digits is past the myriad prefix cap", len(n.Text(10)))
	}
	if n.Sign() == 0 {
		return ZeroSign, nil
	}
	if n.IsUint64() {
		return render(decompose(n.Uint64()), c), nil
	}
	return render(decomposeBig(n), c), nil
}
