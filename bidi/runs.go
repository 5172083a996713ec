package bidi

import "golang.org/x/text/unicode/bidi"

// levelRun is a maximal sequence of characters [sor, eor) sharing one
// embedding level. sorType and eorType are the strong types assumed at the
// run's boundaries.
type levelRun struct {
	sor, eor         int
	sorType, eorType bidi.Class
}

// typeOfLevel is the strong direction of an embedding level.
func typeOfLevel(level int) bidi.Class {
	if level%2 == 1 {
		return bidi.R
	}
	return bidi.L
}

// splitRuns (X10) partitions the paragraph into level runs. A run's start
// type follows its own level, its end type follows the level of the next run,
// or the paragraph level for the last one.
func (p *Paragraph) splitRuns() {
	p.runs = p.runs[:0]
	n := len(p.Chars)
	if n == 0 {
		return
	}
	sor := 0
	for i := 1; i < n; i++ {
		if p.Chars[i].Level == p.Chars[sor].Level {
			continue
		}
		p.runs = append(p.runs, levelRun{
			sor:     sor,
			eor:     i,
			sorType: typeOfLevel(p.Chars[sor].Level),
			eorType: typeOfLevel(p.Chars[i].Level),
		})
		sor = i
	}
	p.runs = append(p.runs, levelRun{
		sor:     sor,
		eor:     n,
		sorType: typeOfLevel(p.Chars[sor].Level),
		eorType: typeOfLevel(p.Level),
	})
}
