package bidi

import (
	"errors"
	"time"

	"github.com/npillmayer/bidivis/metrics"
	"github.com/npillmayer/bidivis/mirror"
	"github.com/npillmayer/bidivis/ucd"
	"github.com/npillmayer/bidivis/utf8codec"
	"github.com/npillmayer/schuko/tracing"
)

// --- Resolver ---------------------------------------------------------------

// Resolver converts text from logical to visual order. A Resolver holds no
// mutable state besides its collaborators and may be shared between
// goroutines, provided the property source and mirrorer are safe for
// concurrent use.
type Resolver struct {
	props   ucd.Source
	mirrors mirror.Mirrorer
	testing bool
}

// Option configures a Resolver.
type Option func(rs *Resolver)

// Testing puts the resolver into test mode, where uppercase ASCII letters are
// treated as having bidi class R. This makes writing test cases for
// right-to-left text a lot easier.
func Testing(b bool) Option {
	return func(rs *Resolver) {
		rs.testing = b
	}
}

// NewResolver creates a resolver looking up character properties in props and
// mirrored glyphs in mirrors. A nil props falls back to ucd.TextSource, a nil
// mirrors to mirror.Basic.
func NewResolver(props ucd.Source, mirrors mirror.Mirrorer, opts ...Option) *Resolver {
	if props == nil {
		props = ucd.TextSource{}
	}
	if mirrors == nil {
		mirrors = mirror.Basic()
	}
	rs := &Resolver{props: props, mirrors: mirrors}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

var defaultResolver = NewResolver(nil, nil)

// ToVisual converts s to visual order using the properties known to
// golang.org/x/text and a basic set of mirrored pairs.
func ToVisual(s string, dir Direction) (string, error) {
	return defaultResolver.ToVisual(s, dir)
}

// ToVisual is ResolveVisualOrder for strings.
func (rs *Resolver) ToVisual(s string, dir Direction) (string, error) {
	out, err := rs.ResolveVisualOrder([]byte(s), dir)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ResolveVisualOrder converts UTF-8 encoded text in logical order into its
// visual order. Paragraphs are resolved independently; with dir = Auto each
// paragraph takes its direction from its first strong character.
//
// Malformed input yields a *utf8codec.MalformedError and no output.
func (rs *Resolver) ResolveVisualOrder(input []byte, dir Direction) ([]byte, error) {
	defer metrics.ResolveTimer.UpdateSince(time.Now())
	paras, err := rs.Paragraphs(input, dir)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(input))
	for _, p := range paras {
		if out, err = emit(out, p); err != nil {
			countError(err)
			return nil, err
		}
	}
	return out, nil
}

// Paragraphs resolves the input and returns its paragraphs in visual order,
// with mirrored characters already replaced. Non-spacing marks are still in
// reversed position. It is meant for clients which need the embedding levels,
// e.g. for diagnostics.
func (rs *Resolver) Paragraphs(input []byte, dir Direction) ([]*Paragraph, error) {
	values, err := utf8codec.Decode(input)
	if err != nil {
		countError(err)
		return nil, err
	}
	paras := rs.splitParagraphs(values, dir)
	for _, p := range paras {
		rs.resolve(p)
	}
	return paras, nil
}

func (rs *Resolver) resolve(p *Paragraph) {
	p.resolveExplicit()
	p.splitRuns()
	for _, r := range p.runs {
		p.resolveWeak(r)
		p.resolveNeutrals(r)
	}
	p.resolveImplicit()
	p.resetWhitespace()
	if T().GetTraceLevel() == tracing.LevelDebug {
		T().Debugf("resolved %v", p)
	}
	p.reorder()
	rs.applyMirroring(p)
	metrics.ParagraphCounter.WithValues(paragraphDirection(p).String()).Inc()
}

func countError(err error) {
	kind := "other"
	switch {
	case errors.Is(err, utf8codec.ErrMalformed):
		kind = "malformed"
	case errors.Is(err, utf8codec.ErrScalarOutOfRange):
		kind = "range"
	}
	metrics.ErrorCounter.WithValues(kind).Inc()
	T().Errorf("bidi: %v", err)
}

func paragraphDirection(p *Paragraph) Direction {
	if p.Level%2 == 1 {
		return RightToLeft
	}
	return LeftToRight
}
