package pathfinder

import (
	"errors"
	"io"
	"log"

	"github.com/katalvlaran/thalweg/gridindex"
)

// Sentinel errors returned by the pathfinder.
var (
	// ErrAbsentCoordinate indicates a weight was requested for a coordinate that is not in the dataset.
	ErrAbsentCoordinate = errors.New("pathfinder: coordinate not in dataset")

	// ErrNoPath indicates that the frontier was exhausted before the sink was reached.
	ErrNoPath = errors.New("pathfinder: no path from source to sink")

	// ErrResolutionExceedsCell indicates, in strict mode, a resolution wider than one index cell.
	ErrResolutionExceedsCell = errors.New("pathfinder: resolution exceeds index cell span")
)

// Options configures a Graph.
//
// CellWidth – side of a spatial-index cell in degrees (default gridindex.DefaultCellWidth).
// Strict    – reject resolutions wider than one cell instead of warning.
// Logger    – receives construction warnings; discarded by default.
type Options struct {
	CellWidth float64
	Strict    bool
	Logger    *log.Logger
}

// Option represents a functional option for configuring a Graph.
type Option func(*Options)

// WithCellWidth sets the spatial-index cell width in degrees.
// Invalid widths surface as gridindex.ErrBadCellWidth from New.
func WithCellWidth(deg float64) Option {
	return func(o *Options) {
		o.CellWidth = deg
	}
}

// WithStrictCellWidth makes New fail with ErrResolutionExceedsCell when the
// resolution is larger than the span of one cell.
func WithStrictCellWidth() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// WithLogger routes construction warnings to l. A nil l keeps the default.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the defaults:
//   - CellWidth: gridindex.DefaultCellWidth (1 degree).
//   - Strict:    false.
//   - Logger:    discards output.
func DefaultOptions() Options {
	return Options{
		CellWidth: gridindex.DefaultCellWidth,
		Strict:    false,
		Logger:    log.New(io.Discard, "", 0),
	}
}
