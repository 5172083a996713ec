package bidi

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/bidivis/utf8codec"
	"golang.org/x/text/unicode/bidi"
)

// applyMirroring is rule L4: mirrored characters on odd levels are replaced by
// their mirrored counterparts.
func (rs *Resolver) applyMirroring(p *Paragraph) {
	for i := range p.Chars {
		c := &p.Chars[i]
		if c.Mirrored && c.Level%2 == 1 {
			c.Value = rs.mirrors.Mirror(c.Value)
		}
	}
}

// emit appends the visual order of a reordered paragraph to buf. Non-spacing
// marks which resolved to R have been reversed along with their base
// character and now precede it; they are held back and written after the
// next right-to-left character, in reverse order.
func emit(buf []byte, p *Paragraph) ([]byte, error) {
	marks := arraystack.New()
	var err error
	flush := func() {
		for err == nil && !marks.Empty() {
			v, _ := marks.Pop()
			buf, err = utf8codec.AppendEncoded(buf, v.(rune))
		}
	}
	for _, c := range p.Chars {
		if c.nsm && c.Class == bidi.R {
			marks.Push(c.Value)
			continue
		}
		if c.Class == bidi.R {
			buf, err = utf8codec.AppendEncoded(buf, c.Value)
			flush()
		} else {
			flush()
			if err == nil {
				buf, err = utf8codec.AppendEncoded(buf, c.Value)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	flush()
	if err != nil {
		return nil, err
	}
	return buf, nil
}
