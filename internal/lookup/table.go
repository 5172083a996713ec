package lookup

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/npillmayer/bidivis/metrics"
)

// KeyLen is the length of a record key in bytes. Keys are 24-bit big-endian values.
const KeyLen = 3

// MaxKey is the largest key representable in a record.
const MaxKey = 1<<(8*KeyLen) - 1

// ErrRecordLength is returned for record layouts which cannot hold a key and a value.
var ErrRecordLength = errors.New("record length must exceed key length by 1 to 4 bytes")

// Table is a sorted sequence of fixed-size records
//
//    +-----------------+------------------------+
//    |  key (24 bit)   |  value (8 … 32 bit)    |
//    +-----------------+------------------------+
//
// with keys ascending. Keys and values are big-endian. A Table does not own
// its ReaderAt; closing the underlying file is up to the client.
type Table struct {
	name    string      // used for tracing and metrics
	r       io.ReaderAt // sorted records
	reclen  int         // record length in bytes, including the key
	count   int         // number of records
	buffers *bufferPool // record buffers
}

// NewTable creates a table over size bytes of r, with records of length reclen.
// Trailing bytes not forming a complete record are ignored.
func NewTable(name string, r io.ReaderAt, size int64, reclen int) (*Table, error) {
	if reclen <= KeyLen || reclen > KeyLen+4 {
		return nil, ErrRecordLength
	}
	if r == nil {
		return nil, fmt.Errorf("table %s: no input present", name)
	}
	t := &Table{
		name:    name,
		r:       r,
		reclen:  reclen,
		count:   int(size / int64(reclen)),
		buffers: newBufferPool(reclen),
	}
	if size%int64(reclen) != 0 {
		T().Errorf("table %s: size %d is not a multiple of record length %d", name, size, reclen)
	}
	T().Infof("table %s holds %d records", name, t.count)
	return t, nil
}

// Len returns the number of records in the table.
func (t *Table) Len() int {
	return t.count
}

// Name returns the name the table has been created with.
func (t *Table) Name() string {
	return t.name
}

// Find searches the table for key. If found, it returns the value of the record and
// true. Keys not present in the table are not an error: Find returns false.
// An error is returned only if reading the underlying data fails.
func (t *Table) Find(key rune) (uint32, bool, error) {
	if key < 0 || key > MaxKey {
		return 0, false, nil
	}
	start := time.Now()
	defer metrics.SearchTimer.WithValues(t.name).UpdateSince(start)
	buf := t.buffers.borrow()
	defer t.buffers.release(buf)
	bottom, top := 0, t.count-1
	for bottom <= top {
		middle := (bottom + top) / 2
		if _, err := t.r.ReadAt(buf.b, int64(middle)*int64(t.reclen)); err != nil {
			metrics.SearchCounter.WithValues(t.name, "error").Inc(1)
			return 0, false, fmt.Errorf("table %s: reading record %d: %w", t.name, middle, err)
		}
		k := rune(bigEndian(buf.b[:KeyLen]))
		switch {
		case k == key:
			metrics.SearchCounter.WithValues(t.name, "found").Inc(1)
			return bigEndian(buf.b[KeyLen:]), true, nil
		case key < k:
			top = middle - 1
		default:
			bottom = middle + 1
		}
	}
	metrics.SearchCounter.WithValues(t.name, "missing").Inc(1)
	return 0, false, nil
}

// Close releases the record buffers of the table. It does not close the
// underlying ReaderAt.
func (t *Table) Close() {
	t.buffers.close()
}

func bigEndian(b []byte) uint32 {
	var v uint32
	for _, x := range b {
		v = v<<8 | uint32(x)
	}
	return v
}

// PutRecord writes a record for key and value into buf, which must be of the
// record length. It is the inverse of what Find reads.
func PutRecord(buf []byte, key rune, value uint32) {
	for i := KeyLen - 1; i >= 0; i-- {
		buf[i] = byte(key)
		key >>= 8
	}
	for i := len(buf) - 1; i >= KeyLen; i-- {
		buf[i] = byte(value)
		value >>= 8
	}
}
