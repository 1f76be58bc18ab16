// cloudtool inspects and converts point cloud files using the ingest
// pipeline.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pulto-app/pointcloud/cloud"
	"github.com/pulto-app/pointcloud/ingest"
	"github.com/pulto-app/pointcloud/ply"
)

var (
	maxPoints  int
	limitsPath string
)

var rootCmd = &cobra.Command{
	Use:   "cloudtool",
	Short: "Inspect and convert point cloud files",
	Long:  "Decodes PLY (ascii/binary), CSV and JSON point cloud files and prints or converts them.",
}

func init() {
	rootCmd.PersistentFlags().IntVar(&maxPoints, "max-points", 0, "Decoded point cap (default 2000000)")
	rootCmd.PersistentFlags().StringVar(&limitsPath, "limits", "", "YAML file with decode limits")
	rootCmd.AddCommand(infoCmd, convertCmd)
}

func loadLimits() ingest.Limits {
	l := ingest.DefaultLimits()
	if limitsPath != "" {
		var err error
		if l, err = ingest.LoadLimits(limitsPath); err != nil {
			exitErr("load limits", err)
		}
	}
	if maxPoints > 0 {
		l.MaxPoints = maxPoints
	}
	return l
}

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Decode a point cloud file and print a summary",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d, err := ingest.DecodeFile(args[0], loadLimits())
		if err != nil {
			exitErr("decode", err)
		}
		min, max := d.Bounds()
		fmt.Printf("title: %s\n", d.Title)
		fmt.Printf("source: %s\n", d.SourceKind)
		fmt.Printf("points: %d\n", d.TotalPoints)
		fmt.Printf("bounds: (%g %g %g) - (%g %g %g)\n",
			min[0], min[1], min[2], max[0], max[1], max[2])
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out.ply|out.json>",
	Short: "Convert a point cloud file to ascii PLY or JSON",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		d, err := ingest.DecodeFile(args[0], loadLimits())
		if err != nil {
			exitErr("decode", err)
		}
		out, err := os.Create(args[1])
		if err != nil {
			exitErr("create output", err)
		}
		defer out.Close()

		switch strings.ToLower(filepath.Ext(args[1])) {
		case ".ply":
			err = ply.EncodeASCII(out, d)
		case ".json":
			err = writeJSON(out, d)
		default:
			exitErr("convert", fmt.Errorf("unsupported output format: %s", args[1]))
		}
		if err != nil {
			exitErr("write output", err)
		}
	},
}

type jsonOutPoint struct {
	X         float32  `json:"x"`
	Y         float32  `json:"y"`
	Z         float32  `json:"z"`
	Intensity *float32 `json:"intensity,omitempty"`
}

func writeJSON(out *os.File, d *cloud.Data) error {
	pts := make([]jsonOutPoint, 0, len(d.Points))
	for _, p := range d.Points {
		jp := jsonOutPoint{X: p.X, Y: p.Y, Z: p.Z}
		if p.HasIntensity {
			in := p.Intensity
			jp.Intensity = &in
		}
		pts = append(pts, jp)
	}
	enc := json.NewEncoder(out)
	return enc.Encode(pts)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
