// Package ply decodes PLY point cloud files (ASCII and binary, little
// or big endian) into the shared cloud representation.
//
// Only numeric x/y/z extraction is supported. Headers without x, y and
// z vertex properties parse successfully but decode to an empty cloud;
// the ingest layer turns that into a failure.
package ply

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pulto-app/pointcloud/cloud"
)

type Format int

const (
	FormatASCII Format = iota
	FormatBinaryLittleEndian
	FormatBinaryBigEndian
)

var (
	errNotPLY           = errors.New("missing ply magic")
	errMissingEndHeader = errors.New("missing end_header")
	errHeaderNotText    = errors.New("header is not valid text")
)

// Header is the parsed PLY header. HeaderLen is the byte offset of the
// body, counting every header line plus its newline. HeaderLines counts
// the lines consumed through end_header, so the ASCII decoder knows
// where the body rows start.
type Header struct {
	Format      Format
	VertexCount int
	Properties  []string
	HeaderLen   int
	HeaderLines int
}

// ParseHeader scans the header of a PLY file. Only the vertex element's
// count is read; other elements are ignored. An unrecognized format
// token keeps the current format (ASCII by default); if format appears
// more than once the last recognized one wins.
func ParseHeader(b []byte) (*Header, error) {
	h := &Header{Format: FormatASCII}
	rest := b
	first := true
	for len(rest) > 0 {
		var line []byte
		if i := bytes.IndexByte(rest, '\n'); i < 0 {
			line = rest
			rest = nil
			h.HeaderLen += len(line)
		} else {
			line = rest[:i]
			rest = rest[i+1:]
			h.HeaderLen += i + 1
		}
		if !utf8.Valid(line) {
			return nil, errHeaderNotText
		}
		h.HeaderLines++
		s := strings.TrimRight(string(line), "\r")
		if first {
			if s != "ply" {
				return nil, errNotPLY
			}
			first = false
			continue
		}
		args := strings.Split(s, " ")
		switch args[0] {
		case "format":
			if len(args) < 2 {
				continue
			}
			switch args[1] {
			case "ascii":
				h.Format = FormatASCII
			case "binary_little_endian":
				h.Format = FormatBinaryLittleEndian
			case "binary_big_endian":
				h.Format = FormatBinaryBigEndian
			}
		case "element":
			if len(args) >= 3 && args[1] == "vertex" {
				if n, err := strconv.Atoi(args[2]); err == nil && n >= 0 {
					h.VertexCount = n
				}
			}
		case "property":
			if len(args) >= 3 {
				h.Properties = append(h.Properties, args[2])
			}
		case "end_header":
			return h, nil
		}
	}
	return nil, errMissingEndHeader
}

// coordSlot maps a property name to its x/y/z slot, or -1.
func coordSlot(name string) int {
	switch name {
	case "x":
		return 0
	case "y":
		return 1
	case "z":
		return 2
	}
	return -1
}

func (h *Header) hasCoords() bool {
	var seen [3]bool
	for _, name := range h.Properties {
		if c := coordSlot(name); c >= 0 {
			seen[c] = true
		}
	}
	return seen[0] && seen[1] && seen[2]
}

// coordIndices returns the property indices of x, y and z, -1 when
// absent. The first occurrence wins if a name is duplicated.
func (h *Header) coordIndices() (xi, yi, zi int) {
	xi, yi, zi = -1, -1, -1
	for i, name := range h.Properties {
		switch {
		case name == "x" && xi < 0:
			xi = i
		case name == "y" && yi < 0:
			yi = i
		case name == "z" && zi < 0:
			zi = i
		}
	}
	return xi, yi, zi
}

// Decode parses a whole PLY file, routing the body to the decoder
// matching the header's format. maxPoints bounds memory and run time on
// oversized inputs.
func Decode(title string, b []byte, maxPoints int) (*cloud.Data, error) {
	h, err := ParseHeader(b)
	if err != nil {
		return nil, err
	}
	if h.Format == FormatASCII {
		return cloud.New(title, "ply-ascii", DecodeASCII(string(b), h, maxPoints)), nil
	}
	return cloud.New(title, "ply-binary", DecodeBinary(b, h, maxPoints)), nil
}
