package milesian

import "fmt"

// Case selects the letterform column used for table lookups.
type Case uint8

const (
	// Lower renders every digit letter in lowercase.
	Lower Case = iota
	// Upper renders every digit letter in uppercase. Myriad prefixes stay
	// lowercase; that is part of the notation, not a bug.
	Upper
)

// String returns the case name.
func (c Case) String() string {
	switch c {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	default:
		return "unknown"
	}
}

// ParseCase maps a case name ("lower" or "upper") to its Case.
func ParseCase(s string) (Case, error) {
	switch s {
	case "lower":
		return Lower, nil
	case "upper":
		return Upper, nil
	default:
		return Lower, fmt.Errorf("unknown case: %q", s)
	}
}

// column returns the glyph table column for the case.
func (c Case) column() int {
	if c == Upper {
		return 1
	}
	return 0
}

const (
	// ZeroSign is the Greek zero sign (U+1018A). It has no case variant.
	ZeroSign = "𐆊"

	// Keraia (U+0374) closes a numeral group whose thousand place is empty.
	Keraia = "ʹ"

	// MyriadSign is the capital mu that follows a myriad-power prefix.
	MyriadSign = "Μ"

	// separator joins myriad groups in the rendered output.
	separator = ", "
)

// place identifies one of the four positions inside a myriad group.
type place uint8

const (
	onesPlace place = iota
	tensPlace
	hundredsPlace
	thousandsPlace
)

// Glyph tables, indexed by (digit-1, case column). Digit 0 has no glyph and
// must never be looked up. The thousand-place letters embed the lower numeral
// sign ͵ (U+0375); the other places are undecorated letterforms.
//
// The archaic letters stigma (ϛ/Ϛ = 6), koppa (ϙ/Ϟ = 90) and sampi (ϡ/Ϡ =
// 900) fill the gaps the classical alphabet left. Lowercase 90 uses U+03D9
// and uppercase uses U+03DE, mirroring the usual digital convention.
var (
	onesTable = [9][2]string{
		{"α", "Α"},
		{"β", "Β"},
		{"γ", "Γ"},
		{"δ", "Δ"},
		{"ε", "Ε"},
		{"ϛ", "Ϛ"},
		{"ζ", "Ζ"},
		{"η", "Η"},
		{"θ", "Θ"},
	}
	tensTable = [9][2]string{
		{"ι", "Ι"},
		{"κ", "Κ"},
		{"λ", "Λ"},
		{"μ", "Μ"},
		{"ν", "Ν"},
		{"ξ", "Ξ"},
		{"ο", "Ο"},
		{"π", "Π"},
		{"ϙ", "Ϟ"},
	}
	hundredsTable = [9][2]string{
		{"ρ", "Ρ"},
		{"σ", "Σ"},
		{"τ", "Τ"},
		{"υ", "Υ"},
		{"φ", "Φ"},
		{"χ", "Χ"},
		{"ψ", "Ψ"},
		{"ω", "Ω"},
		{"ϡ", "Ϡ"},
	}
	thousandsTable = [9][2]string{
		{"͵α", "͵Α"},
		{"͵β", "͵Β"},
		{"͵γ", "͵Γ"},
		{"͵δ", "͵Δ"},
		{"͵ε", "͵Ε"},
		{"͵ϛ", "͵Ϛ"},
		{"͵ζ", "͵Ζ"},
		{"͵η", "͵Η"},
		{"͵θ", "͵Θ"},
	}
)

// glyphFor looks up the letter for digit (1-9) at the given place.
func glyphFor(p place, digit int, c Case) string {
	col := c.column()
	switch p {
	case onesPlace:
		return onesTable[digit-1][col]
	case tensPlace:
		return tensTable[digit-1][col]
	case hundredsPlace:
		return hundredsTable[digit-1][col]
	default:
		return thousandsTable[digit-1][col]
	}
}
