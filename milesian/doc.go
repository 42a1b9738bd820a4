// Package milesian renders non-negative integers as Greek alphabetic
// (milesian) numerals.
//
// The milesian system assigns a letter to each value 1-9, 10-90, 100-900 and
// 1000-9000, so a number is written as at most four letters per four-digit
// group. Larger magnitudes are expressed in myriads (10,000): each higher
// group is prefixed with a single lowercase digit letter and the myriad
// letter Μ, marking "×10,000^power".
//
// # Punctuation
//
// Two keraia marks distinguish numerals from ordinary text:
//   - ʹ (U+0374) closes a group whose thousand place is empty: 241 → σμαʹ
//   - ͵ (U+0375) prefixes thousand-place letters: 5683 → ͵εχπγ
//
// Zero has no letter; it is rendered as the Greek zero sign 𐆊 (U+1018A),
// identical in both cases.
//
// # Examples
//
//	milesian.Lowercase(241)        // "σμαʹ"
//	milesian.Uppercase(241)        // "ΣΜΑʹ"
//	milesian.Lowercase(97554)      // "αΜθʹ, ͵ζφνδ"
//	milesian.Lowercase(2000000000) // "βΜκʹ"
//
// # Domain
//
// A myriad prefix is a single digit letter, so the encoding covers magnitudes
// up to 10^40-1. The uint64 entry points are total: every uint64 is well
// inside that ceiling. EncodeBig accepts the full domain and returns
// ErrOverflow (rather than a silently ambiguous rendering) beyond it.
//
// The package is pure: fixed read-only tables, no I/O, no shared mutable
// state. All functions are safe for concurrent use.
package milesian
