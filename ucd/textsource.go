package ucd

import (
	"golang.org/x/text/unicode/bidi"
)

// TextSource is a Source backed by the Unicode tables of golang.org/x/text.
//
// x/text does not publish the Bidi_Mirrored property. TextSource approximates
// it with the bracket property (Bidi_Paired_Bracket_Type), which covers
// parentheses, brackets and braces, plus a short list of mirrored operators
// and quotation marks. Use a Store for the complete property.
type TextSource struct{}

var _ Source = TextSource{}

// mirroredOperators are Bidi_Mirrored code points which are not paired brackets.
var mirroredOperators = map[rune]bool{
	'<': true, '>': true,
	0x00AB: true, 0x00BB: true, // « »
	0x2039: true, 0x203A: true, // ‹ ›
	0x2208: true, 0x2209: true, 0x220A: true, // ∈ ∉ ∊
	0x220B: true, 0x220C: true, 0x220D: true, // ∋ ∌ ∍
	0x2264: true, 0x2265: true, // ≤ ≥
	0x2266: true, 0x2267: true, // ≦ ≧
	0x226A: true, 0x226B: true, // ≪ ≫
	0x2282: true, 0x2283: true, // ⊂ ⊃
	0x2286: true, 0x2287: true, // ⊆ ⊇
}

// Lookup is part of interface Source.
func (TextSource) Lookup(r rune) (Properties, bool) {
	props, sz := bidi.LookupRune(r)
	if sz == 0 {
		return Properties{}, false
	}
	return Properties{
		Class:    props.Class(),
		Mirrored: props.IsBracket() || mirroredOperators[r],
	}, true
}
