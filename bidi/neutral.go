package bidi

import "golang.org/x/text/unicode/bidi"

func isNeutral(c bidi.Class) bool {
	switch c {
	case bidi.B, bidi.S, bidi.WS, bidi.ON:
		return true
	}
	return false
}

// strongDirection maps a resolved type to the direction it contributes to
// neutral resolution. Numbers count as R.
func strongDirection(c bidi.Class) (bidi.Class, bool) {
	switch c {
	case bidi.L:
		return bidi.L, true
	case bidi.R, bidi.AN, bidi.EN:
		return bidi.R, true
	}
	return c, false
}

// resolveNeutrals applies N1 and N2 to a level run. A span of neutrals
// between two characters of the same direction takes that direction,
// otherwise every neutral takes the direction of its own level.
func (p *Paragraph) resolveNeutrals(r levelRun) {
	start := -1 // first index of the pending neutral span
	before := r.sorType
	for i := r.sor; i < r.eor; i++ {
		c := p.Chars[i].Class
		if isNeutral(c) {
			if start < 0 {
				start = i
			}
			continue
		}
		dir, ok := strongDirection(c)
		if !ok {
			continue
		}
		if start >= 0 {
			setNeutrals(p.Chars[start:i], before, dir)
			start = -1
		}
		before = dir
	}
	if start >= 0 {
		setNeutrals(p.Chars[start:r.eor], before, r.eorType)
	}
}

func setNeutrals(span []Char, before, after bidi.Class) {
	for i := range span {
		c := &span[i]
		if !isNeutral(c.Class) {
			continue
		}
		if before == after {
			c.Class = before
		} else {
			c.Class = typeOfLevel(c.Level)
		}
	}
}

// resolveImplicit applies I1 and I2 to the whole paragraph. Newlines are
// put on level 0 whatever their type.
func (p *Paragraph) resolveImplicit() {
	for i := range p.Chars {
		c := &p.Chars[i]
		if isNewline(c.Value) {
			c.Level = 0
			continue
		}
		odd := c.Level%2 == 1
		switch c.Class {
		case bidi.L:
			if odd {
				c.Level++
			}
		case bidi.R:
			if !odd {
				c.Level++
			}
		case bidi.AN, bidi.EN:
			if odd {
				c.Level++
			} else {
				c.Level += 2
			}
		}
	}
}

// resetWhitespace is rule L1, working from the end of the paragraph.
// Segment and paragraph separators, and any whitespace preceding them or the
// end of the paragraph, return to the paragraph level. Neutral resolution has
// rewritten their types by now, so the original classes decide. Newlines
// keep level 0 to stay at the end of the line.
func (p *Paragraph) resetWhitespace() {
	boundary := true
	for i := len(p.Chars) - 1; i >= 0; i-- {
		c := &p.Chars[i]
		switch c.Orig {
		case bidi.B, bidi.S:
			if !isNewline(c.Value) {
				c.Level = p.Level
			}
			boundary = true
		case bidi.WS:
			if boundary {
				c.Level = p.Level
			}
		default:
			boundary = false
		}
	}
}
