package bidi

// --- Reordering -------------------------------------------------------------

// Rule L2 reverses, from the highest level down to the lowest odd level, any
// contiguous sequence of characters at that level or higher. Reversing twice
// at consecutive levels covering the same characters is a no-op, so only
// levels actually present need to be visited: a level is reversed if the next
// lower present level has the opposite parity, and the lowest odd level is
// always reversed.
//
// For every level present we remember the band [start, end] of indices
// covering all characters at or above it. Bands are merged downwards while
// descending, so that rearranging at a level needs to look at its band only.

type band struct {
	start, end int
	present    bool
}

func (b *band) extend(i int) {
	if !b.present {
		b.start, b.end, b.present = i, i, true
		return
	}
	if i < b.start {
		b.start = i
	}
	if i > b.end {
		b.end = i
	}
}

func (b *band) merge(o band) {
	b.extend(o.start)
	b.extend(o.end)
}

// reorder applies L2 to the paragraph, which is treated as a single line.
func (p *Paragraph) reorder() {
	maxLevel, minOdd := -1, -1
	for _, c := range p.Chars {
		if c.Level > maxLevel {
			maxLevel = c.Level
		}
		if c.Level%2 == 1 && (minOdd < 0 || c.Level < minOdd) {
			minOdd = c.Level
		}
	}
	if minOdd < 0 {
		return // no right-to-left text
	}
	bands := make([]band, maxLevel+1)
	for i, c := range p.Chars {
		bands[c.Level].extend(i)
	}
	for level := maxLevel; ; {
		lower := level - 1
		if level > minOdd {
			for !bands[lower].present {
				lower--
			}
			bands[lower].merge(bands[level])
		}
		if level == minOdd || lower%2 != level%2 {
			p.rearrange(level, bands[level])
		}
		if level == minOdd {
			break
		}
		level = lower
	}
}

// rearrange reverses every maximal range within b whose characters are all at
// level or higher.
func (p *Paragraph) rearrange(level int, b band) {
	start := -1
	for i := b.start; i <= b.end+1; i++ {
		if i <= b.end && p.Chars[i].Level >= level {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			reverse(p.Chars, start, i)
			start = -1
		}
	}
}

// reverse reverses chars[i:j].
func reverse(chars []Char, i, j int) {
	for j--; i < j; i, j = i+1, j-1 {
		chars[i], chars[j] = chars[j], chars[i]
	}
}
