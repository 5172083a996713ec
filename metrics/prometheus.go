package metrics

import "github.com/docker/go-metrics"

const (
	// NamespacePrefix is the namespace of prometheus metrics
	NamespacePrefix = "bidivis"
)

var (
	// LookupNamespace is the prometheus namespace of property and mirror table lookups
	LookupNamespace = metrics.NewNamespace(NamespacePrefix, "lookup", nil)

	// CacheCounter counts cache hits and misses, labeled by table name and result.
	CacheCounter = LookupNamespace.NewLabeledCounter("cache", "lookup cache hits and misses", "table", "result")

	// SearchCounter counts binary search outcomes on data files, labeled by table name and result.
	SearchCounter = LookupNamespace.NewLabeledCounter("search", "binary searches over data files", "table", "result")

	// SearchTimer measures the time spent searching data files.
	SearchTimer = LookupNamespace.NewLabeledTimer("search_latency", "time spent in binary searches over data files", "table")
)

var (
	// ResolveNamespace is the prometheus namespace of the bidi resolver
	ResolveNamespace = metrics.NewNamespace(NamespacePrefix, "resolve", nil)

	// ParagraphCounter counts resolved paragraphs, labeled by their base direction.
	ParagraphCounter = ResolveNamespace.NewLabeledCounter("paragraphs", "resolved paragraphs", "direction")

	// ErrorCounter counts inputs rejected by the resolver, labeled by error kind.
	ErrorCounter = ResolveNamespace.NewLabeledCounter("errors", "inputs rejected by the resolver", "kind")

	// ResolveTimer measures the time to convert an input to visual order.
	ResolveTimer = ResolveNamespace.NewTimer("latency", "time to convert an input to visual order")
)

func init() {
	metrics.Register(LookupNamespace)
	metrics.Register(ResolveNamespace)
}
