package milesian

import (
	"golang.org/x/text/unicode/runenames"
)

// RuneRole classifies what a rune does inside an encoded numeral.
type RuneRole uint8

const (
	// RoleDigit is a letter carrying a place value.
	RoleDigit RuneRole = iota
	// RoleKeraia is the closing numeral sign ʹ (U+0374).
	RoleKeraia
	// RoleThousandsMark is the lower numeral sign ͵ (U+0375) that precedes
	// thousand-place letters and myriad-group thousands.
	RoleThousandsMark
	// RoleMyriadSign is the Μ of a myriad prefix.
	RoleMyriadSign
	// RoleSeparator is part of the ", " between myriad groups.
	RoleSeparator
	// RoleZeroSign is the Greek zero 𐆊 (U+1018A).
	RoleZeroSign
	// RoleUnknown marks a rune that is not part of the notation.
	RoleUnknown
)

// String returns the role name.
func (r RuneRole) String() string {
	switch r {
	case RoleDigit:
		return "digit"
	case RoleKeraia:
		return "keraia"
	case RoleThousandsMark:
		return "thousands-mark"
	case RoleMyriadSign:
		return "myriad-sign"
	case RoleSeparator:
		return "separator"
	case RoleZeroSign:
		return "zero-sign"
	default:
		return "unknown"
	}
}

// RuneInfo describes one rune of an encoded numeral.
type RuneInfo struct {
	Rune rune
	Name string // Unicode character name
	Role RuneRole
}

// digitRunes holds every letterform the tables can emit, keraia marks
// excluded. Built once from the tables themselves so the two never drift.
var digitRunes = func() map[rune]bool {
	set := make(map[rune]bool)
	for _, table := range [][9][2]string{onesTable, tensTable, hundredsTable, thousandsTable} {
		for _, row := range table {
			for _, glyph := range row {
				for _, r := range glyph {
					if r != '͵' {
						set[r] = true
					}
				}
			}
		}
	}
	return set
}()

// lowerOnes holds the lowercase units letters, the only glyphs a myriad
// prefix can be.
var lowerOnes = func() map[rune]bool {
	set := make(map[rune]bool)
	for _, row := range onesTable {
		for _, r := range row[0] {
			set[r] = true
		}
	}
	return set
}()

// Inspect breaks an encoded numeral into per-rune records with Unicode names
// and notation roles. It classifies glyphs only; it does not recover the
// integer (the notation is written-only in this package).
//
// Μ is ambiguous on its own: it is both the myriad sign and the uppercase
// letter for 40. A myriad prefix is always a lowercase units letter directly
// followed by Μ, and no digit reading puts a lowercase letter before an
// uppercase one, so the preceding rune decides.
func Inspect(numeral string) []RuneInfo {
	var out []RuneInfo
	var prev rune
	for _, r := range numeral {
		info := RuneInfo{Rune: r, Name: runenames.Name(r), Role: classify(r, prev)}
		out = append(out, info)
		prev = r
	}
	return out
}

func classify(r, prev rune) RuneRole {
	switch r {
	case '𐆊':
		return RoleZeroSign
	case 'ʹ':
		return RoleKeraia
	case '͵':
		return RoleThousandsMark
	case ',', ' ':
		return RoleSeparator
	case 'Μ':
		if lowerOnes[prev] {
			return RoleMyriadSign
		}
		return RoleDigit
	}
	if digitRunes[r] {
		return RoleDigit
	}
	return RoleUnknown
}
