/*
Package utf8codec decodes UTF-8 byte sequences into Unicode scalar values and
encodes scalar values back into bytes.

The standard library offers the same service in package unicode/utf8, but it
is lenient: malformed input is replaced by U+FFFD and decoding goes on. The
visual ordering of bidi text must not report a result for a corrupted input, so
this decoder stops at the first offending byte and reports the text decoded up
to that point.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package utf8codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// MaxScalar is the largest value Encode accepts.
const MaxScalar = 0x10FFFD

// Sentinel errors, to be checked with errors.Is.
var (
	ErrMalformed        = errors.New("malformed UTF-8 input")
	ErrScalarOutOfRange = errors.New("scalar value out of range for UTF-8")
)

// MalformedError is returned by Decode for byte sequences which are not valid UTF-8.
// Bytes holds the offending sequence, starting with its lead byte, Prefix the
// scalar values successfully decoded before it.
type MalformedError struct {
	Bytes  []byte
	Prefix []rune
}

func (e *MalformedError) Error() string {
	b := make([]string, len(e.Bytes))
	for i, x := range e.Bytes {
		b[i] = fmt.Sprintf("%#02x", x)
	}
	return fmt.Sprintf("unexpected byte(s) %s after %q", strings.Join(b, ", "), string(e.Prefix))
}

// Is makes MalformedError match ErrMalformed.
func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}

// RangeError is returned by Encode for values outside of [0…MaxScalar].
type RangeError struct {
	Value rune
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("value %#x is out of range for a UTF-8 character", e.Value)
}

// Is makes RangeError match ErrScalarOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrScalarOutOfRange
}

// decoder states, named by the number of continuation bytes still expected
const (
	stStart = iota
	stNeed1
	stNeed2
	stNeed3
)

// Decode decodes a UTF-8 byte sequence into a slice of scalar values.
//
// Continuation bytes have to match 10xxxxxx, lead bytes one of 0xxxxxxx, 110xxxxx,
// 1110xxxx or 11110xxx. Input ending in the middle of a multi-byte sequence is
// malformed as well. On error, the result is nil and the error is a *MalformedError.
func Decode(input []byte) ([]rune, error) {
	values := make([]rune, 0, len(input))
	state := stStart
	var value rune
	var start int // position of the current lead byte
	for i, b := range input {
		switch state {
		case stStart:
			start = i
			switch {
			case b&0x80 == 0:
				values = append(values, rune(b))
			case b&0xE0 == 0xC0:
				value, state = rune(b&0x1F), stNeed1
			case b&0xF0 == 0xE0:
				value, state = rune(b&0x0F), stNeed2
			case b&0xF8 == 0xF0:
				value, state = rune(b&0x07), stNeed3
			default:
				return nil, malformed(input[start:i+1], values)
			}
		default:
			if b&0xC0 != 0x80 {
				return nil, malformed(input[start:i+1], values)
			}
			value = value<<6 | rune(b&0x3F)
			state--
			if state == stStart {
				values = append(values, value)
			}
		}
	}
	if state != stStart {
		return nil, malformed(input[start:], values)
	}
	return values, nil
}

// DecodeString is a shortcut for Decode([]byte(s)).
func DecodeString(s string) ([]rune, error) {
	return Decode([]byte(s))
}

func malformed(b []byte, prefix []rune) error {
	e := &MalformedError{
		Bytes:  append([]byte(nil), b...),
		Prefix: append([]rune(nil), prefix...),
	}
	T().Debugf("UTF-8 decoder: %s", e.Error())
	return e
}

// Encode encodes a single scalar value as UTF-8, using the shortest possible form.
// Values outside of [0…MaxScalar] result in a *RangeError.
func Encode(value rune) ([]byte, error) {
	return AppendEncoded(nil, value)
}

// AppendEncoded appends the UTF-8 encoding of value to buf and returns the
// extended buffer.
func AppendEncoded(buf []byte, value rune) ([]byte, error) {
	switch {
	case value < 0 || value > MaxScalar:
		return buf, &RangeError{Value: value}
	case value < 0x80:
		return append(buf, byte(value)), nil
	case value < 0x800:
		return append(buf,
			0xC0|byte(value>>6),
			0x80|byte(value)&0x3F), nil
	case value < 0x10000:
		return append(buf,
			0xE0|byte(value>>12),
			0x80|byte(value>>6)&0x3F,
			0x80|byte(value)&0x3F), nil
	}
	return append(buf,
		0xF0|byte(value>>18),
		0x80|byte(value>>12)&0x3F,
		0x80|byte(value>>6)&0x3F,
		0x80|byte(value)&0x3F), nil
}

// EncodeAll encodes a sequence of scalar values. It stops at the first value
// out of range.
func EncodeAll(values []rune) ([]byte, error) {
	buf := make([]byte, 0, len(values))
	var err error
	for _, v := range values {
		if buf, err = AppendEncoded(buf, v); err != nil {
			return nil, err
		}
	}
	return buf, nil
}
