package ingest

import (
	"strconv"
	"strings"

	"github.com/pulto-app/pointcloud/cloud"
)

// DecodeCSV parses comma separated rows of x,y,z and an optional fourth
// intensity column. Parsing stops at the first non-numeric field of a
// row; rows yielding fewer than three values are skipped. Field rows
// are ragged in the wild, so rows are split by hand rather than with
// encoding/csv, which rejects inconsistent column counts.
func DecodeCSV(title string, b []byte, maxPoints int) *cloud.Data {
	var pts []cloud.Point
	for _, line := range strings.Split(string(b), "\n") {
		if len(pts) >= maxPoints {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var vals [4]float64
		n := 0
		for _, f := range strings.Split(line, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
			if err != nil {
				break
			}
			vals[n] = v
			n++
			if n == len(vals) {
				break
			}
		}
		if n < 3 {
			continue
		}
		p := cloud.Point{
			X: float32(vals[0]),
			Y: float32(vals[1]),
			Z: float32(vals[2]),
		}
		if n >= 4 {
			p.Intensity = float32(vals[3])
			p.HasIntensity = true
		}
		pts = append(pts, p)
	}
	return cloud.New(title, "csv-import", pts)
}
