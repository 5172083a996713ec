/*
Package bidi implements a variant of the Unicode UAX#9 Bidirectional Algorithm,
converting text in logical order into text in visual order.

Text in logical order is the order of characters as typed or stored. When a
text mixes left-to-right scripts (Latin, Cyrillic, …) with right-to-left scripts
(Hebrew, Arabic, …), displaying the characters in logical order would render
the right-to-left parts backwards. Visual order is the order in which characters
appear on the screen from left to right. Computing it involves

■ splitting the text into paragraphs and finding each paragraph's base
direction (rules P1–P3),

■ processing explicit embeddings and overrides, i.e. the formatting characters
LRE, RLE, LRO, RLO and PDF (rules X1–X10),

■ resolving weak types (W1–W6), neutral types (N1–N2) and implicit
embedding levels (I1–I2),

■ resetting separators and trailing whitespace (L1), reversing runs of
characters according to their levels (L2) and replacing characters by their
mirrored counterparts where they appear in right-to-left context (L4).

It is not fully standards-conforming: paired brackets (N0) and the isolate
formatting characters (LRI, RLI, FSI, PDI) are not supported, and a paragraph
is always treated as a single line.

Character properties are taken from a ucd.Source, mirrored glyphs from a
mirror.Mirrorer. A Resolver ties them together:

    r := bidi.NewResolver(props, mirrors)
    visual, err := r.ToVisual("abc שלום def", bidi.Auto)

BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package bidi

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// UnicodeVersion is the UAX#9 version this implementation follows.
const UnicodeVersion = "6.3.0"
