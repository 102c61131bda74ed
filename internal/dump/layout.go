// Package dump turns a byte stream into rows of chunk-grouped, colorized
// hex plus an aligned ASCII column.
package dump

import (
	"errors"
	"fmt"
)

// ErrBadLayout is returned by NewLayout for non-positive dimensions.
var ErrBadLayout = errors.New("invalid layout")

// Layout fixes the geometry and colour switch for one formatting run. It is
// immutable for the lifetime of the run.
type Layout struct {
	// RowLength is the number of bytes per output line.
	RowLength int
	// ChunkLength is the number of bytes per hex group. It does not have
	// to divide RowLength; a trailing partial group gets whatever bytes
	// remain.
	ChunkLength int
	// Colour switches per-byte SGR styling on. Turning it off strips the
	// styling and changes nothing else about the output text.
	Colour bool
}

// NewLayout validates the geometry. Both lengths must be positive.
func NewLayout(rowLength, chunkLength int, colour bool) (Layout, error) {
	if rowLength <= 0 {
		return Layout{}, fmt.Errorf("%w: row length %d, must be > 0", ErrBadLayout, rowLength)
	}
	if chunkLength <= 0 {
		return Layout{}, fmt.Errorf("%w: chunk length %d, must be > 0", ErrBadLayout, chunkLength)
	}
	return Layout{RowLength: rowLength, ChunkLength: chunkLength, Colour: colour}, nil
}
