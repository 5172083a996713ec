/*
Package ucd looks up the bidi properties of Unicode code-points.

The bidi algorithm needs two properties per character: its Bidi_Class and
whether it is a candidate for glyph mirroring (Bidi_Mirrored). Package ucd
provides them from two sources:

■ a Store, which searches the Unicode Character Database file
"UnicodeData.txt" through a sorted index file (see package internal/datagen
for how to create one). Records of UnicodeData.txt are semicolon-separated;
field 4 holds the bidi class and field 9 the mirrored flag ("Y" or "N").

■ TextSource, which consults the tables compiled into golang.org/x/text. It
needs no data files and is used whenever no data directory is configured.

Both implement interface Source. Lookups of code-points not present are not
errors, but are reported as absent.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ucd

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
