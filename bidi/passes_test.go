package bidi

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/text/unicode/bidi"
)

// resolveTypes runs the passes up to and including neutral resolution on a
// single paragraph.
func resolveTypes(t *testing.T, s string, dir Direction) *Paragraph {
	rs := NewResolver(nil, nil, Testing(true))
	paras := rs.splitParagraphs([]rune(s), dir)
	if len(paras) != 1 {
		t.Fatalf("expected a single paragraph for %q, have %d", s, len(paras))
	}
	p := paras[0]
	p.resolveExplicit()
	p.splitRuns()
	for _, r := range p.runs {
		p.resolveWeak(r)
		p.resolveNeutrals(r)
	}
	return p
}

func classesOf(p *Paragraph) []bidi.Class {
	classes := make([]bidi.Class, len(p.Chars))
	for i, c := range p.Chars {
		classes[i] = c.Class
	}
	return classes
}

func checkClasses(t *testing.T, s string, dir Direction, expected ...bidi.Class) {
	t.Helper()
	p := resolveTypes(t, s, dir)
	classes := classesOf(p)
	if len(classes) != len(expected) {
		t.Fatalf("%q: expected %d characters, have %d", s, len(expected), len(classes))
	}
	for i := range expected {
		if classes[i] != expected[i] {
			t.Errorf("%q: character #%d expected to resolve to %d, is %d", s, i, expected[i], classes[i])
		}
	}
}

func TestParagraphLevels(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	rs := NewResolver(nil, nil, Testing(true))
	paras := rs.splitParagraphs([]rune("12 AB\n\ncd\rEF"), Auto)
	if len(paras) != 3 {
		t.Fatalf("expected 3 paragraphs, have %d", len(paras))
	}
	for i, level := range []int{1, 0, 1} {
		if paras[i].Level != level {
			t.Errorf("paragraph #%d expected to have level %d, has %d", i, level, paras[i].Level)
		}
	}
	if n := len(paras[0].Chars); n != 7 {
		t.Errorf("expected both newlines to stay with the first paragraph, have %d chars", n)
	}
	neutral := rs.splitParagraphs([]rune("123 !"), Auto)
	if neutral[0].Level != -1 {
		t.Errorf("expected paragraph without strong characters to be unresolved")
	}
	neutral[0].resolveExplicit()
	if neutral[0].Level != 0 {
		t.Errorf("expected unresolved paragraph to fall back to level 0")
	}
	forced := rs.splitParagraphs([]rune("abc"), RightToLeft)
	if forced[0].Level != 1 {
		t.Errorf("expected forced paragraph level 1, is %d", forced[0].Level)
	}
}

func TestExplicitOverride(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	p := resolveTypes(t, string(RLO)+"ab"+string(PDF), LeftToRight)
	if len(p.Chars) != 2 {
		t.Fatalf("expected formatting characters to be removed, have %v", p)
	}
	for _, c := range p.Chars {
		if c.Class != bidi.R || c.Level != 1 {
			t.Errorf("expected %q to be overridden to R at level 1, is %v", c.Value, c)
		}
		if c.Orig != bidi.L {
			t.Errorf("expected original class of %q to be kept", c.Value)
		}
	}
}

func TestExplicitEmbeddingLevels(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := "a" + string(RLE) + "b" + string(LRE) + "c" + string(PDF) + "d" + string(PDF) + "e" + string(PDF) + "f"
	rs := NewResolver(nil, nil)
	p := rs.splitParagraphs([]rune(s), LeftToRight)[0]
	p.resolveExplicit()
	expected := []int{0, 1, 2, 1, 0, 0}
	levels := p.Levels()
	if len(levels) != len(expected) {
		t.Fatalf("expected %d characters, have %v", len(expected), p)
	}
	for i := range expected {
		if levels[i] != expected[i] {
			t.Errorf("expected levels %v, have %v", expected, levels)
			break
		}
	}
	if nextLevel(0, true) != 1 || nextLevel(1, true) != 3 || nextLevel(0, false) != 2 || nextLevel(1, false) != 2 {
		t.Errorf("next embedding levels are wrong")
	}
}

func TestRuns(t *testing.T) {
	p := &Paragraph{Level: 0, Chars: []Char{{Level: 0}, {Level: 0}, {Level: 1}, {Level: 2}, {Level: 2}}}
	p.splitRuns()
	expected := []levelRun{
		{0, 2, bidi.L, bidi.R},
		{2, 3, bidi.R, bidi.L},
		{3, 5, bidi.L, bidi.L},
	}
	if len(p.runs) != len(expected) {
		t.Fatalf("expected %d runs, have %v", len(expected), p.runs)
	}
	for i := range expected {
		if p.runs[i] != expected[i] {
			t.Errorf("run #%d: expected %v, have %v", i, expected[i], p.runs[i])
		}
	}
	empty := &Paragraph{}
	empty.splitRuns()
	if len(empty.runs) != 0 {
		t.Errorf("expected empty paragraph to have no runs")
	}
}

func TestWeakTypes(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	// separators between numbers
	checkClasses(t, "1+2", LeftToRight, bidi.EN, bidi.EN, bidi.EN)
	checkClasses(t, "1,2", LeftToRight, bidi.EN, bidi.EN, bidi.EN)
	checkClasses(t, "1++2", LeftToRight, bidi.EN, bidi.R, bidi.R, bidi.EN)
	// terminators adjacent to numbers
	checkClasses(t, "$12", LeftToRight, bidi.EN, bidi.EN, bidi.EN)
	checkClasses(t, "12%", LeftToRight, bidi.EN, bidi.EN, bidi.EN)
	checkClasses(t, "a$ b", LeftToRight, bidi.L, bidi.L, bidi.L, bidi.L)
	// Arabic context turns European numbers into Arabic ones
	checkClasses(t, "\u0627 1", Auto, bidi.R, bidi.R, bidi.AN)
	checkClasses(t, "\u0661,\u0662", Auto, bidi.AN, bidi.AN, bidi.AN)
	// non-spacing marks take the preceding strong type
	checkClasses(t, "\u0300a\u0300B\u0301", LeftToRight, bidi.L, bidi.L, bidi.L, bidi.R, bidi.R)
}

func TestNeutralTie(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	checkClasses(t, "A!B", LeftToRight, bidi.R, bidi.R, bidi.R)
	checkClasses(t, "a!b", RightToLeft, bidi.L, bidi.L, bidi.L)
	// opposite directions: the level decides
	checkClasses(t, "a!B", LeftToRight, bidi.L, bidi.L, bidi.R)
	checkClasses(t, "a!B", RightToLeft, bidi.L, bidi.R, bidi.R)
	// numbers count as R
	checkClasses(t, "A 1", LeftToRight, bidi.R, bidi.R, bidi.EN)
	// end of run takes the paragraph direction
	checkClasses(t, "A!", LeftToRight, bidi.R, bidi.L)
}

func TestWhitespaceReset(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	p := resolveTypes(t, "ab\tAB  \n", RightToLeft)
	p.resolveImplicit()
	p.resetWhitespace()
	expected := []int{2, 2, 1, 1, 1, 1, 1, 0}
	levels := p.Levels()
	for i := range expected {
		if levels[i] != expected[i] {
			t.Errorf("expected levels %v, have %v", expected, levels)
			break
		}
	}
}

func TestReorderLevels(t *testing.T) {
	for _, test := range []struct {
		levels   []int
		expected string
	}{
		{[]int{0, 0, 0}, "abc"},
		{[]int{1, 1, 1}, "cba"},
		{[]int{0, 1, 1, 0}, "acbd"},
		{[]int{1, 2, 2, 1}, "dbca"},
		{[]int{2, 2, 0}, "abc"},
		{[]int{4, 4, 1, 0}, "cabd"},
		{[]int{3, 3, 0, 5, 5}, "baced"},
		{[]int{61, 61, 59}, "cba"},
	} {
		p := &Paragraph{}
		for i, l := range test.levels {
			p.Chars = append(p.Chars, Char{Value: rune('a' + i), Level: l})
		}
		p.reorder()
		if text := p.Text(); text != test.expected {
			t.Errorf("levels %v: expected %q, have %q", test.levels, test.expected, text)
		}
	}
}

func TestReverse(t *testing.T) {
	for _, tc := range []struct {
		in     string
		i, j   int
		expect string
	}{
		{"abcde", 0, 5, "edcba"},
		{"abcde", 1, 4, "adcbe"},
		{"abcde", 2, 3, "abcde"},
		{"abcde", 2, 2, "abcde"},
		{"", 0, 0, ""},
	} {
		chars := make([]Char, 0, len(tc.in))
		for _, r := range tc.in {
			chars = append(chars, Char{Value: r})
		}
		reverse(chars, tc.i, tc.j)
		p := &Paragraph{Chars: chars}
		if p.Text() != tc.expect {
			t.Errorf("reverse(%q, %d, %d): expected %q, have %q", tc.in, tc.i, tc.j, tc.expect, p.Text())
		}
	}
}
