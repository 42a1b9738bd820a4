package milesian

import "strings"

// renderer accumulates one numeral. It walks the padded digit sequence four
// digits at a time, most significant group first.
type renderer struct {
	sb   strings.Builder
	c    Case
	seen bool // a group has been rendered already
}

// render encodes a padded most-significant-first digit sequence.
//
// The myriad power starts at groups-1 and is decremented only when a group is
// actually rendered: an all-zero group is skipped without touching the
// counter. That asymmetry is the historical behavior of the notation as
// implemented everywhere this library must agree with, so it is preserved
// exactly (calibrated by the 12312398676 fixture). Power is floored at zero.
func render(digits []int, c Case) string {
	r := &renderer{c: c}
	power := len(digits)/4 - 1

	for i := 0; i < len(digits); i += 4 {
		th, h, t, o := digits[i], digits[i+1], digits[i+2], digits[i+3]
		if th+h+t+o == 0 {
			continue
		}

		if r.seen {
			r.sb.WriteString(separator)
		}
		if power > 0 {
			r.writeMyriadPrefix(power)
		}
		r.writeGroup(th, h, t, o)
		if power > 0 {
			power--
		}
		r.seen = true
	}

	return r.sb.String()
}

// writeMyriadPrefix marks a group as ×10,000^power. The prefix digit is
// always the lowercase letter, whatever the requested case.
func (r *renderer) writeMyriadPrefix(power int) {
	r.sb.WriteString(glyphFor(onesPlace, power, Lower))
	r.sb.WriteString(MyriadSign)
}

// writeGroup renders the four place digits of one myriad group. Zero digits
// contribute nothing. A group without a thousand-place letter is closed with
// the keraia; otherwise the ͵ embedded in the thousands glyph already marks
// the numeral.
func (r *renderer) writeGroup(th, h, t, o int) {
	if th != 0 {
		r.sb.WriteString(glyphFor(thousandsPlace, th, r.c))
	}
	if h != 0 {
		r.sb.WriteString(glyphFor(hundredsPlace, h, r.c))
	}
	if t != 0 {
		r.sb.WriteString(glyphFor(tensPlace, t, r.c))
	}
	if o != 0 {
		r.sb.WriteString(glyphFor(onesPlace, o, r.c))
	}
	if th == 0 {
		r.sb.WriteString(Keraia)
	}
}
