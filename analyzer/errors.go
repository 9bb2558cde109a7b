package analyzer

import "errors"

// ErrEmptyRegion indicates the parsed input produced no arcs at all: the
// working region has no vertices to analyze (spec §7, "empty region").
var ErrEmptyRegion = errors.New("analyzer: empty working region")
