package bidi

import "golang.org/x/text/unicode/bidi"

// resolveWeak applies the weak type rules to a level run.
func (p *Paragraph) resolveWeak(r levelRun) {
	chars := p.Chars[r.sor:r.eor]
	resolveNonSpacingMarks(chars, r.sorType)
	resolveArabicLetters(chars)
	resolveSeparators(chars)
	resolveTerminators(chars)
}

// resolveNonSpacingMarks covers W1 and W2. A non-spacing mark takes the type
// of the last strong character before it, or sor. European numbers after an
// Arabic letter become Arabic numbers.
func resolveNonSpacingMarks(chars []Char, sor bidi.Class) {
	prev := sor
	for i := range chars {
		c := &chars[i]
		switch c.Class {
		case bidi.NSM:
			c.Class = prev
			c.nsm = true
		case bidi.L, bidi.R, bidi.AL:
			prev = c.Class
		case bidi.EN:
			if prev == bidi.AL {
				c.Class = bidi.AN
			}
		}
	}
}

// resolveArabicLetters is W3.
func resolveArabicLetters(chars []Char) {
	for i := range chars {
		if chars[i].Class == bidi.AL {
			chars[i].Class = bidi.R
		}
	}
}

// resolveSeparators is W4 together with the separator part of W6. A single
// separator between two numbers of the same kind joins them, any other
// separator becomes a neutral.
func resolveSeparators(chars []Char) {
	for i := range chars {
		c := &chars[i]
		if c.Class != bidi.ES && c.Class != bidi.CS {
			continue
		}
		before, after := bidi.ON, bidi.ON
		if i > 0 {
			before = chars[i-1].Class
		}
		if i+1 < len(chars) {
			after = chars[i+1].Class
		}
		switch {
		case before == bidi.EN && after == bidi.EN:
			c.Class = bidi.EN
		case c.Class == bidi.CS && before == bidi.AN && after == bidi.AN:
			c.Class = bidi.AN
		default:
			c.Class = bidi.ON
		}
	}
}

// resolveTerminators is W5 together with the terminator part of W6. A
// sequence of European terminators adjacent to a European number becomes
// part of the number, otherwise its terminators become neutrals.
func resolveTerminators(chars []Char) {
	start := -1 // start of the pending group of ETs and ENs
	hasNumber := false
	flush := func(end int) {
		for j := start; j < end; j++ {
			if hasNumber {
				chars[j].Class = bidi.EN
			} else if chars[j].Class == bidi.ET {
				chars[j].Class = bidi.ON
			}
		}
		start, hasNumber = -1, false
	}
	for i, c := range chars {
		switch c.Class {
		case bidi.ET, bidi.EN:
			if start < 0 {
				start = i
			}
			if c.Class == bidi.EN {
				hasNumber = true
			}
		default:
			if start >= 0 {
				flush(i)
			}
		}
	}
	if start >= 0 {
		flush(len(chars))
	}
}
