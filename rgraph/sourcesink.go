// File: sourcesink.go
// Role: identify the unique vertex with no incoming arc (source) and the
// unique vertex with no outgoing arc (sink) in a region.
package rgraph

import "github.com/katalvlaran/rdlt/rmodel"

// SourceAndSink returns the region's unique source (no incoming arc) and
// unique sink (no outgoing arc). It fails with ErrMultipleSourcesOrSinks if
// either set does not have exactly one member, and ErrEmptyRegion if the
// region has no vertices at all.
func SourceAndSink(r rmodel.Region) (source, sink rmodel.Vertex, err error) {
	adj := Build(r)
	vs := adj.Vertices()
	if len(vs) == 0 {
		return "", "", ErrEmptyRegion
	}

	var sources, sinks []rmodel.Vertex
	for _, v := range vs {
		if adj.InDegree(v) == 0 {
			sources = append(sources, v)
		}
		if adj.OutDegree(v) == 0 {
			sinks = append(sinks, v)
		}
	}

	if len(sources) != 1 || len(sinks) != 1 {
		return "", "", ErrMultipleSourcesOrSinks
	}
	return sources[0], sinks[0], nil
}
