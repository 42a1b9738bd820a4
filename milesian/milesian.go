package milesian

// Lowercase renders n as a lowercase Greek alphabetic numeral.
//
//	Lowercase(1)   // "αʹ"
//	Lowercase(241) // "σμαʹ"
func Lowercase(n uint64) string {
	return Encode(n, Lower)
}

// Uppercase renders n as an uppercase Greek alphabetic numeral.
//
//	Uppercase(1)   // "Αʹ"
//	Uppercase(241) // "ΣΜΑʹ"
func Uppercase(n uint64) string {
	return Encode(n, Upper)
}

// Encode renders n in the requested case. Zero becomes the Greek zero sign
// in both cases. Encode is total over uint64: the largest uint64 is twenty
// digits, far below the 10^40-1 ceiling of the myriad notation.
func Encode(n uint64, c Case) string {
	if n == 0 {
		return ZeroSign
	}
	return render(decompose(n), c)
}
