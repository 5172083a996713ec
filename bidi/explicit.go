package bidi

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"golang.org/x/text/unicode/bidi"
)

// MaxDepth is the highest explicit embedding level.
const MaxDepth = 61

type override int8

const (
	noOverride override = iota
	overrideL
	overrideR
)

// directionalStatus is an entry of the directional status stack.
type directionalStatus struct {
	level    int
	override override
}

// resolveExplicit applies rules X1–X9: it assigns embedding levels from
// embeddings and overrides, then drops the formatting characters and
// boundary neutrals. An unresolved paragraph level falls back to 0.
func (p *Paragraph) resolveExplicit() {
	if p.Level < 0 {
		p.Level = 0
	}
	stack := arraystack.New()
	current := directionalStatus{level: p.Level}
	invalid := 0 // pushes which overflowed and still await their PDF
	for i := range p.Chars {
		c := &p.Chars[i]
		switch c.Class {
		case bidi.RLE, bidi.RLO, bidi.LRE, bidi.LRO:
			rtl := c.Class == bidi.RLE || c.Class == bidi.RLO
			next := nextLevel(current.level, rtl)
			if next > MaxDepth {
				invalid++
				continue
			}
			stack.Push(current)
			current = directionalStatus{level: next}
			switch c.Class {
			case bidi.RLO:
				current.override = overrideR
			case bidi.LRO:
				current.override = overrideL
			}
		case bidi.PDF:
			if invalid > 0 {
				invalid--
			} else if top, ok := stack.Pop(); ok {
				current = top.(directionalStatus)
			}
		case bidi.BN:
		case bidi.B:
			c.Level = p.Level
		default:
			c.Level = current.level
			switch current.override {
			case overrideL:
				c.Class = bidi.L
			case overrideR:
				c.Class = bidi.R
			}
		}
	}
	p.Chars = removeFormatting(p.Chars)
}

// nextLevel is the least odd (rtl) or even level greater than level.
func nextLevel(level int, rtl bool) int {
	if rtl {
		return (level + 1) | 1
	}
	return (level + 2) &^ 1
}

// removeFormatting implements X9, removing embedding and override controls
// as well as boundary neutrals.
func removeFormatting(chars []Char) []Char {
	kept := chars[:0]
	for _, c := range chars {
		switch c.Orig {
		case bidi.RLE, bidi.LRE, bidi.RLO, bidi.LRO, bidi.PDF, bidi.BN:
			continue
		}
		kept = append(kept, c)
	}
	return kept
}
