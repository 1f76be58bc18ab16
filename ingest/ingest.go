// Package ingest is the entry point for loading point cloud files. It
// inspects the file name and content, routes to the matching decoder
// and applies the decode limits.
package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pulto-app/pointcloud/cloud"
	"github.com/pulto-app/pointcloud/ply"
)

var (
	// ErrUnsupportedFormat is returned when the input cannot be matched
	// to a known point cloud format.
	ErrUnsupportedFormat = errors.New("unsupported point cloud format")
	// ErrEmptyResult is returned when a decoder produced no points.
	// The PLY and CSV decoders recover from bad rows by skipping them,
	// so zero decoded points is the one unified failure signal for
	// inputs that requested a nonzero count.
	ErrEmptyResult = errors.New("no points decoded")
)

// Decode decodes the contents of a named point cloud file. The decoder
// is chosen by extension for JSON, by the "ply" magic line for PLY, and
// by the delimited-text extensions (.csv, .txt, .xyz) otherwise. The
// cloud title defaults to the file's base name without extension.
func Decode(name string, b []byte, limits Limits) (*cloud.Data, error) {
	limits = limits.withDefaults()
	base := filepath.Base(name)
	ext := strings.ToLower(filepath.Ext(base))
	title := strings.TrimSuffix(base, filepath.Ext(base))

	var (
		d   *cloud.Data
		err error
	)
	switch {
	case ext == ".json":
		d, err = DecodeJSON(title, b, limits.MaxPoints)
	case hasPLYMagic(b):
		d, err = ply.Decode(title, b, limits.MaxPoints)
	case ext == ".csv" || ext == ".txt" || ext == ".xyz":
		d = DecodeCSV(title, b, limits.MaxPoints)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, base)
	}
	if err != nil {
		return nil, err
	}
	if d.TotalPoints == 0 {
		return nil, ErrEmptyResult
	}
	return d, nil
}

// DecodeFile reads and decodes a point cloud file from disk.
func DecodeFile(path string, limits Limits) (*cloud.Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Decode(path, b, limits)
}

// hasPLYMagic reports whether the first line of b is exactly "ply".
func hasPLYMagic(b []byte) bool {
	i := bytes.IndexByte(b, '\n')
	if i < 0 {
		return false
	}
	return string(bytes.TrimRight(b[:i], "\r")) == "ply"
}
