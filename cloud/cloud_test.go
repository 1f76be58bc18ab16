package cloud

import (
	"bytes"
	"testing"

	"github.com/seqsense/pcgol/mat"
)

func TestNew(t *testing.T) {
	t.Run("TotalPointsMatches", func(t *testing.T) {
		d := New("scan", "ply-ascii", []Point{{X: 1}, {X: 2}, {X: 3}})
		if d.TotalPoints != 3 || d.TotalPoints != len(d.Points) {
			t.Errorf("Expected TotalPoints 3, got: %d (len %d)", d.TotalPoints, len(d.Points))
		}
	})

	t.Run("Empty", func(t *testing.T) {
		d := New("scan", "csv-import", nil)
		if d.TotalPoints != 0 {
			t.Errorf("Expected TotalPoints 0, got: %d", d.TotalPoints)
		}
	})
}

func TestVec3s(t *testing.T) {
	d := New("scan", "test", []Point{
		{X: 1, Y: 2, Z: 3, Intensity: 9, HasIntensity: true},
		{X: 4, Y: 5, Z: 6},
	})
	expected := []mat.Vec3{{1, 2, 3}, {4, 5, 6}}
	vs := d.Vec3s()
	if len(vs) != len(expected) {
		t.Fatalf("Expected %d vectors, got: %d", len(expected), len(vs))
	}
	for i, e := range expected {
		if vs[i] != e {
			t.Errorf("Expected %v at %d, got: %v", e, i, vs[i])
		}
	}
}

func TestBounds(t *testing.T) {
	d := New("scan", "test", []Point{
		{X: 1, Y: 5, Z: -3},
		{X: -2, Y: 2, Z: 4},
		{X: 0, Y: 8, Z: 0},
	})
	min, max := d.Bounds()
	if min != (mat.Vec3{-2, 2, -3}) {
		t.Errorf("Expected min (-2 2 -3), got: %v", min)
	}
	if max != (mat.Vec3{1, 8, 4}) {
		t.Errorf("Expected max (1 8 4), got: %v", max)
	}
}

func TestToPCD(t *testing.T) {
	d := New("scan", "test", []Point{
		{X: 1, Y: 2, Z: 3},
		{X: 4, Y: 5, Z: 6},
	})
	pp, err := d.ToPCD()
	if err != nil {
		t.Fatal(err)
	}
	if pp.Points != 2 {
		t.Errorf("Expected 2 points, got: %d", pp.Points)
	}
	bytesExpected := []byte{
		0x00, 0x00, 0x80, 0x3F, // 1.0
		0x00, 0x00, 0x00, 0x40, // 2.0
		0x00, 0x00, 0x40, 0x40, // 3.0
		0x00, 0x00, 0x80, 0x40, // 4.0
		0x00, 0x00, 0xA0, 0x40, // 5.0
		0x00, 0x00, 0xC0, 0x40, // 6.0
	}
	if !bytes.Equal(bytesExpected, pp.Data) {
		t.Errorf("Expected data: %v, got: %v", bytesExpected, pp.Data)
	}
}

func TestToPCDEmpty(t *testing.T) {
	pp, err := New("scan", "test", nil).ToPCD()
	if err != nil {
		t.Fatal(err)
	}
	if pp.Points != 0 || len(pp.Data) != 0 {
		t.Errorf("Expected empty point cloud, got: %d points, %d bytes", pp.Points, len(pp.Data))
	}
}
