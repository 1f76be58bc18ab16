package ingest

import (
	"encoding/json"
	"fmt"

	"github.com/pulto-app/pointcloud/cloud"
)

type jsonPoint struct {
	X         *float64 `json:"x"`
	Y         *float64 `json:"y"`
	Z         *float64 `json:"z"`
	Intensity *float64 `json:"intensity"`
}

// DecodeJSON parses an array of {x, y, z, intensity?} objects. Unlike
// the CSV path, a structurally invalid document fails the whole decode;
// a JSON parse failure is unambiguous while a bad CSV row is not.
// Objects missing a coordinate are skipped.
func DecodeJSON(title string, b []byte, maxPoints int) (*cloud.Data, error) {
	var raw []jsonPoint
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	var pts []cloud.Point
	for _, jp := range raw {
		if len(pts) >= maxPoints {
			break
		}
		if jp.X == nil || jp.Y == nil || jp.Z == nil {
			continue
		}
		p := cloud.Point{
			X: float32(*jp.X),
			Y: float32(*jp.Y),
			Z: float32(*jp.Z),
		}
		if jp.Intensity != nil {
			p.Intensity = float32(*jp.Intensity)
			p.HasIntensity = true
		}
		pts = append(pts, p)
	}
	return cloud.New(title, "json-import", pts), nil
}
