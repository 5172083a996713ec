package mirror

// Pairs is a Mirrorer backed by a map. It is read-only after creation and
// therefore safe for concurrent use.
type Pairs map[rune]rune

// Mirror is part of interface Mirrorer.
func (p Pairs) Mirror(r rune) rune {
	if m, ok := p[r]; ok {
		return m
	}
	return r
}

// Symmetric creates Pairs from a list of (r, m) tuples, adding both
// directions r→m and m→r.
func Symmetric(pairs ...[2]rune) Pairs {
	p := make(Pairs, 2*len(pairs))
	for _, pair := range pairs {
		p[pair[0]] = pair[1]
		p[pair[1]] = pair[0]
	}
	return p
}

// Basic returns a small table of mirrored pairs: ASCII brackets and
// comparison operators, guillemets and a few mathematical symbols. It is
// intended for use without a mirroring file.
func Basic() Pairs {
	return Symmetric(
		[2]rune{'(', ')'},
		[2]rune{'<', '>'},
		[2]rune{'[', ']'},
		[2]rune{'{', '}'},
		[2]rune{0x00AB, 0x00BB}, // « »
		[2]rune{0x2039, 0x203A}, // ‹ ›
		[2]rune{0x2045, 0x2046}, // ⁅ ⁆
		[2]rune{0x207D, 0x207E}, // ⁽ ⁾
		[2]rune{0x208D, 0x208E}, // ₍ ₎
		[2]rune{0x2208, 0x220B}, // ∈ ∋
		[2]rune{0x2264, 0x2265}, // ≤ ≥
		[2]rune{0x2282, 0x2283}, // ⊂ ⊃
		[2]rune{0x2329, 0x232A}, // 〈 〉
		[2]rune{0x3008, 0x3009}, // 〈 〉
		[2]rune{0x300A, 0x300B}, // 《 》
		[2]rune{0x3010, 0x3011}, // 【 】
	)
}
