package ingest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultMaxPoints caps decoded points per file. Decoding has no
// cancellation, so the cap is what bounds run time and memory on
// adversarial inputs.
const DefaultMaxPoints = 2000000

// Limits bound a single decode call.
type Limits struct {
	MaxPoints int `yaml:"max_points"`
}

func DefaultLimits() Limits {
	return Limits{MaxPoints: DefaultMaxPoints}
}

func (l Limits) withDefaults() Limits {
	if l.MaxPoints <= 0 {
		l.MaxPoints = DefaultMaxPoints
	}
	return l
}

// LoadLimits reads limits from a YAML file. Missing keys fall back to
// the defaults.
func LoadLimits(path string) (Limits, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Limits{}, fmt.Errorf("read %s: %w", path, err)
	}
	var l Limits
	if err := yaml.Unmarshal(b, &l); err != nil {
		return Limits{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return l.withDefaults(), nil
}
