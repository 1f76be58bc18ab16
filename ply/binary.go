package ply

import (
	"encoding/binary"
	"math"

	"github.com/pulto-app/pointcloud/cloud"
)

// DecodeBinary walks fixed-order vertex records starting at
// h.HeaderLen. Coordinate properties are read as 32-bit IEEE-754 floats
// in the file's byte order. Any other property is assumed to occupy a
// single byte (packed color channels); this does not hold for arbitrary
// PLY files with multi-byte custom attributes.
//
// A trailing record truncated before all of x, y and z were read is
// dropped. The result is empty when x, y or z is not among the header
// properties.
func DecodeBinary(b []byte, h *Header, maxPoints int) []cloud.Point {
	if !h.hasCoords() {
		return nil
	}
	bo := binary.ByteOrder(binary.LittleEndian)
	if h.Format == FormatBinaryBigEndian {
		bo = binary.BigEndian
	}

	cur := h.HeaderLen
	var pts []cloud.Point
	for i := 0; i < h.VertexCount; i++ {
		if len(pts) >= maxPoints || cur >= len(b) {
			break
		}
		var v [3]float32
		truncated := false
		for _, name := range h.Properties {
			c := coordSlot(name)
			if c < 0 {
				cur++
				continue
			}
			if cur+4 > len(b) {
				truncated = true
				break
			}
			v[c] = math.Float32frombits(bo.Uint32(b[cur : cur+4]))
			cur += 4
		}
		if truncated {
			break
		}
		pts = append(pts, cloud.Point{X: v[0], Y: v[1], Z: v[2]})
	}
	return pts
}
