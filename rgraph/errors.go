package rgraph

import "errors"

// ErrMultipleSourcesOrSinks indicates the region has zero or more than one
// vertex with no incoming arc, or zero or more than one vertex with no
// outgoing arc — SourceAndSink cannot identify a unique source or sink.
var ErrMultipleSourcesOrSinks = errors.New("rgraph: no unique source or sink")

// ErrEmptyRegion indicates SourceAndSink was called on a region with no
// arcs and therefore no vertices.
var ErrEmptyRegion = errors.New("rgraph: region has no vertices")
