/*
Package bidivis converts text from logical to visual order, following the
Unicode Bidirectional Algorithm (UAX#9).

Description

From the Unicode Consortium:

In the Unicode Standard, characters are stored in logical order, the order in
which they are typed. When text of a right-to-left script such as Arabic or
Hebrew is mixed with left-to-right text, the visual order of the characters
differs from their logical order. The Bidirectional Algorithm describes how to
determine the display order of such text.

Contents

The resolution pipeline lives in sub-package bidi. It consults character
properties from sub-package ucd and mirrored glyphs from sub-package mirror.
Both read binary searchable data files, which are produced from the Unicode
Character Database by the gendata command of cmd/bidivis.

Base package bidivis wires these parts together from a configuration:

    conf, err := config.Load("bidivis.yaml")
    ...
    engine, err := bidivis.Open(conf)
    ...
    defer engine.Close()
    visual, err := engine.Visual("abc שלום def")

If no data files are present, the engine falls back to the Unicode tables of
golang.org/x/text and a built-in set of mirrored pairs.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package bidivis

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
