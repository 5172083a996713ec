/*
Package datagen creates the binary data files used for bidi resolution.

Two files are generated from files of the Unicode Character Database:

■ an index for "UnicodeData.txt": 7-byte records of a 24-bit code-point
followed by the 32-bit byte offset of the code-point's line in UnicodeData.txt;

■ a mirroring table from "BidiMirroring.txt": 6-byte records of a 24-bit
code-point followed by the 24-bit code-point of its mirrored glyph.

All numbers are big-endian, records are sorted by code-point. Creating these files
is a one-time task and has to be repeated only when a new version of the UCD is
installed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package datagen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/bidivis/internal/lookup"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Record lengths of the generated files.
const (
	IndexRecordLen  = lookup.KeyLen + 4
	MirrorRecordLen = lookup.KeyLen + 3
)

// ErrTooLarge is returned if the data file is too large to be addressed by 32-bit offsets.
var ErrTooLarge = errors.New("data file too large for 32-bit offsets")

// WriteIndex reads UnicodeData.txt from unicodeData and writes an index for it to w.
// It returns the number of records written.
//
// Ranges given as a pair of lines
//
//    4E00;<CJK Ideograph, First>;Lo;0;L;;;;;N;;;;;
//    9FFC;<CJK Ideograph, Last>;Lo;0;L;;;;;N;;;;;
//
// are expanded: every code point of the range is indexed at the offset of its
// First line.
func WriteIndex(unicodeData io.Reader, w io.Writer) (int, error) {
	defer timeTrack(time.Now(), "creating index")
	offsets := treemap.NewWith(runeComparator)
	rd := bufio.NewReader(unicodeData)
	var pos int64
	lineno := 0
	first, firstPos := rune(-1), uint32(0) // open <..., First> line
	for {
		line, err := rd.ReadString('\n')
		if len(line) > 0 {
			lineno++
			if pos > math.MaxUint32 {
				return 0, ErrTooLarge
			}
			if !isComment(line) {
				code, perr := parseCodePoint(line)
				if perr != nil {
					return 0, fmt.Errorf("UnicodeData line %d: %w", lineno, perr)
				}
				switch {
				case strings.HasSuffix(nameField(line), ", First>"):
					first, firstPos = code, uint32(pos)
					offsets.Put(code, firstPos)
				case strings.HasSuffix(nameField(line), ", Last>") && first >= 0:
					for r := first + 1; r <= code; r++ {
						offsets.Put(r, firstPos)
					}
					first = -1
				default:
					offsets.Put(code, uint32(pos))
				}
			}
			pos += int64(len(line))
		}
		if err == io.EOF {
			break
		} else if err != nil {
			return 0, err
		}
	}
	T().Infof("indexed %d lines of UnicodeData", lineno)
	return writeRecords(w, offsets, IndexRecordLen)
}

// WriteMirrors reads BidiMirroring.txt from bidiMirroring and writes a
// mirroring table to w. It returns the number of records written.
//
// Lines of BidiMirroring.txt look like this:
//
//    0028; 0029 # LEFT PARENTHESIS
//
func WriteMirrors(bidiMirroring io.Reader, w io.Writer) (int, error) {
	defer timeTrack(time.Now(), "creating mirroring table")
	pairs := treemap.NewWith(runeComparator)
	sc := bufio.NewScanner(bidiMirroring)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Split(line, ";")
		if len(fields) < 2 {
			continue // empty or comment line
		}
		code, err := parseHex(fields[0])
		if err != nil {
			return 0, fmt.Errorf("BidiMirroring line %d: %w", lineno, err)
		}
		mirrored, err := parseHex(fields[1])
		if err != nil {
			return 0, fmt.Errorf("BidiMirroring line %d: %w", lineno, err)
		}
		pairs.Put(code, uint32(mirrored))
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	return writeRecords(w, pairs, MirrorRecordLen)
}

func writeRecords(w io.Writer, m *treemap.Map, reclen int) (int, error) {
	bw := bufio.NewWriter(w)
	rec := make([]byte, reclen)
	it := m.Iterator()
	n := 0
	for it.Next() {
		lookup.PutRecord(rec, it.Key().(rune), it.Value().(uint32))
		if _, err := bw.Write(rec); err != nil {
			return n, err
		}
		n++
	}
	T().Infof("wrote %d records of length %d", n, reclen)
	return n, bw.Flush()
}

func runeComparator(a, b interface{}) int {
	x, y := a.(rune), b.(rune)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func isComment(line string) bool {
	l := strings.TrimSpace(line)
	return l == "" || l[0] == '#'
}

// rangeName returns the name field of a UnicodeData line.
func nameField(line string) string {
	fields := strings.SplitN(line, ";", 3)
	if len(fields) < 3 {
		return ""
	}
	return fields[1]
}

func parseCodePoint(line string) (rune, error) {
	i := strings.IndexByte(line, ';')
	if i < 0 {
		return 0, fmt.Errorf("no field separator in %q", strings.TrimSpace(line))
	}
	return parseHex(line[:i])
}

func parseHex(s string) (rune, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 16, 32)
	if err != nil {
		return 0, err
	}
	if n > lookup.MaxKey {
		return 0, fmt.Errorf("code-point %#x exceeds 24 bits", n)
	}
	return rune(n), nil
}

func timeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	T().Infof("timing: %s took %s", name, elapsed)
}
