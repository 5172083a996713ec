/*
Package lookup implements binary search over files of fixed-size records.

Both data files used for bidi resolution, the index into the Unicode character
database and the table of mirrored characters, are sorted sequences of records
starting with a 24-bit big-endian key. A Table searches such a file with
positional reads (io.ReaderAt), so there is no shared file offset and a single
Table may serve concurrent lookups. Results may be memoized in a Cache.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lookup

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
