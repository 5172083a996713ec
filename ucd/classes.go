package ucd

import (
	"strconv"

	"golang.org/x/text/unicode/bidi"
)

// Properties are the bidi-relevant properties of a code-point.
type Properties struct {
	Class    bidi.Class // Bidi_Class
	Mirrored bool       // Bidi_Mirrored
}

// Source is a provider of bidi properties. Implementations must be safe for
// concurrent use.
type Source interface {
	// Lookup returns the properties of r and true, or false if r is unknown.
	Lookup(r rune) (Properties, bool)
}

const claszname = "LRENESETANCSBSWSONBNNSMALControlNumLRORLOLRERLEPDFLRIRLIFSIPDI"

var claszindex = [...]uint8{0, 1, 2, 4, 6, 8, 10, 12, 13, 14, 16, 18, 20, 23, 25, 32, 35, 38, 41, 44, 47, 50, 53, 56, 59, 62}

// ClassString returns a bidi class as a string, e.g. "AL" for bidi.AL.
func ClassString(c bidi.Class) string {
	if c > bidi.PDI {
		return "bidi_class(" + strconv.FormatInt(int64(c), 10) + ")"
	}
	return claszname[claszindex[c]:claszindex[c+1]]
}

var classByName map[string]bidi.Class

func init() {
	classByName = make(map[string]bidi.Class, bidi.PDI+1)
	for c := bidi.L; c <= bidi.PDI; c++ {
		if c == bidi.Control || c == bidi.Control+1 {
			continue // internal to x/text, not Unicode class names
		}
		classByName[ClassString(c)] = c
	}
}

// ParseClass returns the bidi class for a class name as used in the
// Unicode Character Database, e.g. "AL" or "NSM".
func ParseClass(name string) (bidi.Class, bool) {
	c, ok := classByName[name]
	return c, ok
}
