package inputfmt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/rdlt/region"
	"github.com/katalvlaran/rdlt/rmodel"
)

type section int

const (
	sectionArcs section = iota
	sectionCenter
	sectionIn
	sectionOut
)

// Parse reads the RDLT line-oriented format (spec §6) from contents and
// returns a region.Input ready for region.Split. Rid is left unassigned;
// the caller (package region, or a bridgeless working region built
// directly from Arcs) assigns it.
func Parse(contents string) (region.Input, error) {
	var in region.Input
	current := sectionArcs
	vertices := map[rmodel.Vertex]bool{}

	for lineNo, raw := range strings.Split(contents, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch line {
		case "CENTER":
			current = sectionCenter
			continue
		case "IN":
			current = sectionIn
			continue
		case "OUT":
			current = sectionOut
			continue
		}

		switch current {
		case sectionArcs:
			arc, err := parseArcLine(line, lineNo)
			if err != nil {
				return region.Input{}, err
			}
			in.Arcs = append(in.Arcs, arc)
			vertices[arc.Source] = true
			vertices[arc.Target] = true
		case sectionCenter:
			for _, v := range strings.Split(line, ",") {
				v = strings.TrimSpace(v)
				if v != "" {
					in.Centers = append(in.Centers, v)
				}
			}
		case sectionIn:
			key, err := parseBridgeLine(line, lineNo)
			if err != nil {
				return region.Input{}, err
			}
			in.In = append(in.In, key)
		case sectionOut:
			key, err := parseBridgeLine(line, lineNo)
			if err != nil {
				return region.Input{}, err
			}
			in.Out = append(in.Out, key)
		}
	}

	if err := validateVertices(in, vertices); err != nil {
		return region.Input{}, err
	}
	return in, nil
}

func parseArcLine(line string, lineNo int) (rmodel.Arc, error) {
	fields := splitFields(line)
	if len(fields) != 4 {
		return rmodel.Arc{}, fmt.Errorf("%w: line %d: want 4 fields, got %d", ErrInputMalformed, lineNo+1, len(fields))
	}
	l, err := strconv.Atoi(fields[3])
	if err != nil {
		return rmodel.Arc{}, fmt.Errorf("%w: line %d: %q", ErrAttributeParse, lineNo+1, fields[3])
	}
	c := fields[2]
	if c == "0" {
		c = rmodel.Epsilon
	}
	return rmodel.Arc{Source: fields[0], Target: fields[1], C: c, L: l}, nil
}

func parseBridgeLine(line string, lineNo int) (region.BridgeKey, error) {
	fields := splitFields(line)
	if len(fields) != 2 {
		return region.BridgeKey{}, fmt.Errorf("%w: line %d: want 2 fields, got %d", ErrInputMalformed, lineNo+1, len(fields))
	}
	return region.BridgeKey{Source: fields[0], Target: fields[1]}, nil
}

func splitFields(line string) []string {
	raw := strings.Split(line, ",")
	out := make([]string, len(raw))
	for i, f := range raw {
		out[i] = strings.TrimSpace(f)
	}
	return out
}

func validateVertices(in region.Input, vertices map[rmodel.Vertex]bool) error {
	for _, c := range in.Centers {
		if !vertices[c] {
			return fmt.Errorf("%w: center %s", ErrUnknownVertexInBridge, c)
		}
	}
	for _, b := range append(append([]region.BridgeKey(nil), in.In...), in.Out...) {
		if !vertices[b.Source] || !vertices[b.Target] {
			return fmt.Errorf("%w: bridge %s, %s", ErrUnknownVertexInBridge, b.Source, b.Target)
		}
	}
	return nil
}
