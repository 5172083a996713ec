package ucd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/bidivis/internal/lookup"
)

// IndexRecordLen is the length of a record in the index file: a 24-bit key
// followed by a 32-bit offset into the data file.
const IndexRecordLen = lookup.KeyLen + 4

// Field numbers within a record of UnicodeData.txt
const (
	fieldClass    = 4
	fieldMirrored = 9
)

// Store looks up character properties in the Unicode Character Database, using
// a sorted index for a binary search. A Store is safe for concurrent use.
type Store struct {
	index     *lookup.Table
	data      io.ReaderAt
	dataSize  int64
	cache     lookup.Cache[Properties]
	cacheSize int
	closers   []io.Closer
}

var _ Source = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithCache lets a Store memoize lookups in c. A nil cache switches caching off.
func WithCache(c lookup.Cache[Properties]) Option {
	return func(st *Store) {
		st.cache = c
		st.cacheSize = 0
	}
}

// WithCacheSize lets a Store memoize up to n lookups. n ≤ 0 switches caching off.
func WithCacheSize(n int) Option {
	return func(st *Store) {
		st.cache = nil
		st.cacheSize = n
	}
}

// NewStore creates a property store from an index and a UCD data file.
// By default lookups are cached, with a cache of size lookup.DefaultCacheSize.
func NewStore(index io.ReaderAt, indexSize int64, data io.ReaderAt, dataSize int64, opts ...Option) (*Store, error) {
	idx, err := lookup.NewTable("properties", index, indexSize, IndexRecordLen)
	if err != nil {
		return nil, err
	}
	st := &Store{
		index:     idx,
		data:      data,
		dataSize:  dataSize,
		cacheSize: lookup.DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(st)
	}
	if st.cache == nil && st.cacheSize > 0 {
		st.cache = lookup.NewCache[Properties](st.cacheSize)
	}
	return st, nil
}

// Open opens an index file and a UCD data file and creates a Store for them.
// Clients should call Close on the store when done.
func Open(indexPath, dataPath string, opts ...Option) (*Store, error) {
	idxFile, idxSize, err := openWithSize(indexPath)
	if err != nil {
		return nil, err
	}
	dataFile, dataSize, err := openWithSize(dataPath)
	if err != nil {
		idxFile.Close()
		return nil, err
	}
	st, err := NewStore(idxFile, idxSize, dataFile, dataSize, opts...)
	if err != nil {
		idxFile.Close()
		dataFile.Close()
		return nil, err
	}
	st.closers = []io.Closer{idxFile, dataFile}
	T().Infof("opened property store %s with %d entries", dataPath, st.Len())
	return st, nil
}

func openWithSize(path string) (*os.File, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("property store: %w", err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("property store: %w", err)
	}
	return f, fi.Size(), nil
}

// Len returns the number of code-points in the index.
func (st *Store) Len() int {
	return st.index.Len()
}

// Close releases the files of a store created with Open.
func (st *Store) Close() error {
	st.index.Close()
	var err error
	for _, c := range st.closers {
		if e := c.Close(); e != nil && err == nil {
			err = e
		}
	}
	st.closers = nil
	return err
}

// Lookup is part of interface Source. Read errors and malformed records are
// traced and reported as absent.
func (st *Store) Lookup(r rune) (Properties, bool) {
	props, ok, err := lookup.Memoize(st.cache, "properties", r, st.find)
	if err != nil {
		T().Errorf("property lookup for %#U: %v", r, err)
		return Properties{}, false
	}
	return props, ok
}

func (st *Store) find(r rune) (Properties, bool, error) {
	offset, ok, err := st.index.Find(r)
	if !ok || err != nil {
		return Properties{}, false, err
	}
	if int64(offset) >= st.dataSize {
		return Properties{}, false, fmt.Errorf("offset %d beyond end of data", offset)
	}
	sect := io.NewSectionReader(st.data, int64(offset), st.dataSize-int64(offset))
	line, err := bufio.NewReaderSize(sect, 128).ReadString('\n')
	if err != nil && err != io.EOF {
		return Properties{}, false, err
	}
	return parseRecord(r, line)
}

// parseRecord extracts bidi class and mirrored flag from a line of UnicodeData.txt.
func parseRecord(r rune, line string) (Properties, bool, error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), ";")
	if len(fields) <= fieldMirrored {
		return Properties{}, false, fmt.Errorf("record has %d fields: %q", len(fields), line)
	}
	clz, ok := ParseClass(fields[fieldClass])
	if !ok {
		return Properties{}, false, fmt.Errorf("unknown bidi class %q", fields[fieldClass])
	}
	T().Debugf("UCD record for %#U: class=%s, mirrored=%s", r, fields[fieldClass], fields[fieldMirrored])
	return Properties{
		Class:    clz,
		Mirrored: fields[fieldMirrored] == "Y",
	}, true, nil
}
