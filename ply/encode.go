package ply

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/pulto-app/pointcloud/cloud"
)

// EncodeASCII writes the cloud as an ASCII PLY file. The intensity
// column is written only when every point carries one, so rows stay
// rectangular.
func EncodeASCII(w io.Writer, d *cloud.Data) error {
	withIntensity := len(d.Points) > 0
	for _, p := range d.Points {
		if !p.HasIntensity {
			withIntensity = false
			break
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "ply\nformat ascii 1.0\nelement vertex %d\n", d.TotalPoints)
	fmt.Fprintf(bw, "property float x\nproperty float y\nproperty float z\n")
	if withIntensity {
		fmt.Fprintf(bw, "property float intensity\n")
	}
	fmt.Fprintf(bw, "end_header\n")

	for _, p := range d.Points {
		bw.WriteString(fmtFloat(p.X))
		bw.WriteByte(' ')
		bw.WriteString(fmtFloat(p.Y))
		bw.WriteByte(' ')
		bw.WriteString(fmtFloat(p.Z))
		if withIntensity {
			bw.WriteByte(' ')
			bw.WriteString(fmtFloat(p.Intensity))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func fmtFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
