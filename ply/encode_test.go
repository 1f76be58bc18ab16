package ply

import (
	"bytes"
	"math"
	"testing"

	"github.com/pulto-app/pointcloud/cloud"
)

func TestEncodeASCIIRoundTrip(t *testing.T) {
	orig := cloud.New("roundtrip", "test", []cloud.Point{
		{X: 1.25, Y: -2.5, Z: 3.75},
		{X: 0.1, Y: 0.2, Z: 0.3},
		{X: -1000.5, Z: 42},
	})

	var buf bytes.Buffer
	if err := EncodeASCII(&buf, orig); err != nil {
		t.Fatal(err)
	}

	d, err := Decode("roundtrip", buf.Bytes(), 100)
	if err != nil {
		t.Fatal(err)
	}
	if d.TotalPoints != orig.TotalPoints {
		t.Fatalf("Expected %d points, got: %d", orig.TotalPoints, d.TotalPoints)
	}
	const tolerance = 1e-5
	for i, p := range orig.Points {
		q := d.Points[i]
		if math.Abs(float64(p.X-q.X)) > tolerance ||
			math.Abs(float64(p.Y-q.Y)) > tolerance ||
			math.Abs(float64(p.Z-q.Z)) > tolerance {
			t.Errorf("Expected point %v at %d, got: %v", p, i, q)
		}
	}
}

func TestEncodeASCIIWithIntensity(t *testing.T) {
	d := cloud.New("scan", "test", []cloud.Point{
		{X: 1, Y: 2, Z: 3, Intensity: 9.5, HasIntensity: true},
		{X: 2, Y: 3, Z: 4, Intensity: 0.5, HasIntensity: true},
	})
	var buf bytes.Buffer
	if err := EncodeASCII(&buf, d); err != nil {
		t.Fatal(err)
	}
	expected := "ply\n" +
		"format ascii 1.0\n" +
		"element vertex 2\n" +
		"property float x\n" +
		"property float y\n" +
		"property float z\n" +
		"property float intensity\n" +
		"end_header\n" +
		"1 2 3 9.5\n" +
		"2 3 4 0.5\n"
	if buf.String() != expected {
		t.Errorf("Expected output:\n%s\ngot:\n%s", expected, buf.String())
	}
}
