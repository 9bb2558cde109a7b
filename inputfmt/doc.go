// Package inputfmt parses the line-oriented RDLT input file format
// described in spec §6: an unheaded block of arc records, followed by
// optional CENTER/IN/OUT sections describing one reset-bound subsystem's
// bridges.
//
// Grounded on the Python original's input_rdlt.py (extract_rdlt: the
// section-header state machine and the "0" → ε condition rewrite), ported
// to a single forward scan with explicit section state rather than that
// source's regex-per-line dispatch.
package inputfmt
