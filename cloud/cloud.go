// Package cloud defines the in-memory point cloud representation shared
// by the decoders, the window store and the viewer.
package cloud

import (
	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
)

// Point is a single decoded point. Coordinates are required; intensity
// is present only when the source format carried one.
type Point struct {
	X, Y, Z      float32
	Intensity    float32
	HasIntensity bool
}

func (p Point) Vec3() mat.Vec3 {
	return mat.Vec3{p.X, p.Y, p.Z}
}

// Data is a decoded point cloud. TotalPoints always equals len(Points).
// A Data is never mutated after construction; a new cloud replaces the
// old one wholesale.
type Data struct {
	Title       string
	SourceKind  string
	Points      []Point
	TotalPoints int
}

// New builds a Data with TotalPoints set to the exact number of decoded
// points. All decoders construct their result through here.
func New(title, sourceKind string, pts []Point) *Data {
	return &Data{
		Title:       title,
		SourceKind:  sourceKind,
		Points:      pts,
		TotalPoints: len(pts),
	}
}

// Vec3s returns the bare coordinate sequence of the cloud, for readers
// that only need geometry.
func (d *Data) Vec3s() []mat.Vec3 {
	out := make([]mat.Vec3, len(d.Points))
	for i, p := range d.Points {
		out[i] = p.Vec3()
	}
	return out
}

// Bounds returns the axis aligned bounding box of the cloud. Both
// vectors are zero for an empty cloud.
func (d *Data) Bounds() (min, max mat.Vec3) {
	if len(d.Points) == 0 {
		return mat.Vec3{}, mat.Vec3{}
	}
	min = d.Points[0].Vec3()
	max = min
	for _, p := range d.Points[1:] {
		v := p.Vec3()
		for i := range v {
			if v[i] < min[i] {
				min[i] = v[i]
			}
			if v[i] > max[i] {
				max[i] = v[i]
			}
		}
	}
	return min, max
}

// ToPCD converts the cloud into the viewer's native point cloud type
// (x/y/z float32, width×1 organization).
func (d *Data) ToPCD() (*pc.PointCloud, error) {
	pp := &pc.PointCloud{
		PointCloudHeader: pc.PointCloudHeader{
			Version: 0.7,
			Fields:  []string{"x", "y", "z"},
			Size:    []int{4, 4, 4},
			Type:    []string{"F", "F", "F"},
			Count:   []int{1, 1, 1},
			Width:   len(d.Points),
			Height:  1,
		},
		Points: len(d.Points),
	}
	pp.Data = make([]byte, len(d.Points)*pp.Stride())
	if len(d.Points) == 0 {
		return pp, nil
	}
	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, err
	}
	for _, p := range d.Points {
		it.SetVec3(p.Vec3())
		it.Incr()
	}
	return pp, nil
}
