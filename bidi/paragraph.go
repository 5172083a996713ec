package bidi

import (
	"fmt"
	"strings"

	"github.com/npillmayer/bidivis/ucd"
	"golang.org/x/text/unicode/bidi"
)

// Direction is the requested base direction of paragraphs.
type Direction int

// Base directions. With Auto, the direction of a paragraph is taken from its
// first strong character.
const (
	Auto Direction = iota
	LeftToRight
	RightToLeft
)

func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "ltr"
	case RightToLeft:
		return "rtl"
	}
	return "auto"
}

// ParseDirection accepts "auto", "ltr", "rtl", "l" or "r", ignoring case.
// The empty string is Auto.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "ltr", "l":
		return LeftToRight, nil
	case "rtl", "r":
		return RightToLeft, nil
	}
	return Auto, fmt.Errorf("bidi: unknown direction %q", s)
}

// level returns the paragraph level a direction asks for, -1 for Auto.
func (d Direction) level() int {
	switch d {
	case LeftToRight:
		return 0
	case RightToLeft:
		return 1
	}
	return -1
}

// Formatting characters recognized by the explicit level rules.
const (
	LRM rune = 0x200E // left-to-right mark
	RLM rune = 0x200F // right-to-left mark
	LRE rune = 0x202A // left-to-right embedding
	RLE rune = 0x202B // right-to-left embedding
	PDF rune = 0x202C // pop directional formatting
	LRO rune = 0x202D // left-to-right override
	RLO rune = 0x202E // right-to-left override
)

// Char is a character of a paragraph together with its resolved bidi
// properties.
type Char struct {
	Value    rune       // scalar value, mirrored after resolution where applicable
	Class    bidi.Class // current bidi class, rewritten by the resolution passes
	Orig     bidi.Class // class before any resolution
	Level    int        // embedding level
	Mirrored bool       // character has the Bidi_Mirrored property
	nsm      bool       // was a non-spacing mark when weak types were resolved
}

func (c Char) String() string {
	return fmt.Sprintf("%U:%s:%d", c.Value, ucd.ClassString(c.Class), c.Level)
}

func isNewline(r rune) bool {
	return r == '\n' || r == '\r'
}

// Paragraph is a unit of text resolved independently of its neighbours.
// Level is the paragraph embedding level, 0 for left-to-right and 1 for
// right-to-left.
type Paragraph struct {
	Level int
	Chars []Char
	runs  []levelRun
}

// Text returns the character values of the paragraph.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, c := range p.Chars {
		b.WriteRune(c.Value)
	}
	return b.String()
}

// Levels returns the embedding level of every character.
func (p *Paragraph) Levels() []int {
	levels := make([]int, len(p.Chars))
	for i, c := range p.Chars {
		levels[i] = c.Level
	}
	return levels
}

func (p *Paragraph) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("paragraph[%d]", p.Level))
	for _, c := range p.Chars {
		b.WriteByte(' ')
		b.WriteString(c.String())
	}
	return b.String()
}

// --- Segmenting -------------------------------------------------------------

// splitParagraphs breaks the input into paragraphs (rule P1) and determines
// each paragraph's level (P2, P3). A paragraph ends after a newline; a run of
// newlines stays with the paragraph it terminates. With dir = Auto a
// paragraph's level is -1 until its first strong character is seen, and stays
// -1 when there is none.
func (rs *Resolver) splitParagraphs(values []rune, dir Direction) []*Paragraph {
	var paras []*Paragraph
	var p *Paragraph
	for _, v := range values {
		if isNewline(v) {
			if p == nil {
				p = &Paragraph{Level: dir.level()}
				paras = append(paras, p)
			}
			p.Chars = append(p.Chars, Char{Value: v, Class: bidi.B, Orig: bidi.B})
			continue
		}
		if p == nil || endsWithNewline(p) {
			p = &Paragraph{Level: dir.level()}
			paras = append(paras, p)
		}
		c := rs.charFor(v)
		if p.Level < 0 {
			switch c.Class {
			case bidi.R, bidi.AL:
				p.Level = 1
			case bidi.L:
				p.Level = 0
			}
		}
		p.Chars = append(p.Chars, c)
	}
	return paras
}

func endsWithNewline(p *Paragraph) bool {
	n := len(p.Chars)
	return n > 0 && isNewline(p.Chars[n-1].Value)
}

// charFor looks up the bidi properties of a value. Characters unknown to the
// property source are treated as other neutrals.
func (rs *Resolver) charFor(v rune) Char {
	if rs.testing && v >= 'A' && v <= 'Z' {
		return Char{Value: v, Class: bidi.R, Orig: bidi.R}
	}
	props, ok := rs.props.Lookup(v)
	if !ok {
		return Char{Value: v, Class: bidi.ON, Orig: bidi.ON}
	}
	return Char{Value: v, Class: props.Class, Orig: props.Class, Mirrored: props.Mirrored}
}
