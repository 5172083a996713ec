/*
Package mirror maps characters to their mirrored counterparts.

Characters with the Bidi_Mirrored property, when displayed in a right-to-left
context, are rendered with a mirrored glyph: '(' becomes ')', '≤' becomes '≥'.
For many of them the Unicode Character Database lists a different character
with the mirrored glyph (file "BidiMirroring.txt").

A Table searches a binary file of 6-byte records (24-bit code-point, 24-bit
mirrored code-point, big-endian, sorted by code-point; see package
internal/datagen). Pairs is an in-memory alternative.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package mirror

import (
	"fmt"
	"os"

	"github.com/npillmayer/bidivis/internal/lookup"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// RecordLen is the length of a record in a mirroring file.
const RecordLen = 2 * lookup.KeyLen

// Mirrorer maps a character to the character with its mirrored glyph.
// Characters without such a counterpart map to themselves.
// Implementations must be safe for concurrent use.
type Mirrorer interface {
	Mirror(r rune) rune
}

// Table is a Mirrorer backed by a mirroring file.
type Table struct {
	records   *lookup.Table
	file      *os.File
	cache     lookup.Cache[rune]
	cacheSize int
}

var _ Mirrorer = (*Table)(nil)

// Option configures a Table.
type Option func(*Table)

// WithCache lets a Table memoize lookups in c. A nil cache switches caching off.
func WithCache(c lookup.Cache[rune]) Option {
	return func(t *Table) {
		t.cache = c
		t.cacheSize = 0
	}
}

// WithCacheSize lets a Table memoize up to n lookups. n ≤ 0 switches caching off.
func WithCacheSize(n int) Option {
	return func(t *Table) {
		t.cache = nil
		t.cacheSize = n
	}
}

// Open opens a mirroring file. Clients should call Close when done.
// By default lookups are cached, with a cache of size lookup.DefaultCacheSize.
func Open(path string, opts ...Option) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mirror table: %w", err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mirror table: %w", err)
	}
	records, err := lookup.NewTable("mirror", f, fi.Size(), RecordLen)
	if err != nil {
		f.Close()
		return nil, err
	}
	t := &Table{
		records:   records,
		file:      f,
		cacheSize: lookup.DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.cache == nil && t.cacheSize > 0 {
		t.cache = lookup.NewCache[rune](t.cacheSize)
	}
	T().Infof("opened mirror table %s with %d entries", path, t.Len())
	return t, nil
}

// Len returns the number of mirrored pairs in the table.
func (t *Table) Len() int {
	return t.records.Len()
}

// Mirror is part of interface Mirrorer.
func (t *Table) Mirror(r rune) rune {
	m, ok, err := lookup.Memoize(t.cache, "mirror", r, t.find)
	if err != nil {
		T().Errorf("mirror lookup for %#U: %v", r, err)
		return r
	}
	if !ok {
		return r
	}
	return m
}

func (t *Table) find(r rune) (rune, bool, error) {
	v, ok, err := t.records.Find(r)
	return rune(v), ok, err
}

// Close closes the mirroring file.
func (t *Table) Close() error {
	t.records.Close()
	return t.file.Close()
}
