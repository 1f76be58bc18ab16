package ply

import (
	"strconv"
	"strings"

	"github.com/pulto-app/pointcloud/cloud"
)

// DecodeASCII parses vertex rows from the text body of an ASCII PLY
// file. Rows with too few columns or unparseable coordinates are
// skipped. The result is empty when x, y or z is not among the header
// properties; callers treat empty with a nonzero vertex count as a
// failure.
func DecodeASCII(text string, h *Header, maxPoints int) []cloud.Point {
	xi, yi, zi := h.coordIndices()
	if xi < 0 || yi < 0 || zi < 0 {
		return nil
	}
	need := xi
	if yi > need {
		need = yi
	}
	if zi > need {
		need = zi
	}

	lines := strings.Split(text, "\n")
	if h.HeaderLines >= len(lines) {
		return nil
	}
	var pts []cloud.Point
	rows := 0
	for _, line := range lines[h.HeaderLines:] {
		if rows >= h.VertexCount || len(pts) >= maxPoints {
			break
		}
		rows++
		f := strings.Fields(line)
		if len(f) <= need {
			continue
		}
		x, errX := strconv.ParseFloat(f[xi], 32)
		y, errY := strconv.ParseFloat(f[yi], 32)
		z, errZ := strconv.ParseFloat(f[zi], 32)
		if errX != nil || errY != nil || errZ != nil {
			continue
		}
		pts = append(pts, cloud.Point{
			X: float32(x),
			Y: float32(y),
			Z: float32(z),
		})
	}
	return pts
}
