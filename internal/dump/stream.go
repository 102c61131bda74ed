package dump

import (
	"errors"
	"fmt"
	"io"

	"hexglow/internal/profile"
)

// ReadError reports a failed read on the input source. Formatting of that
// source stops at the failure; lines already handed to the sink stand.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read input: %v", e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// FormatStream drains r in RowLength-sized batches, formats each batch with
// FormatRow and hands every line to sink in input order. A short final read
// becomes a padded final row; an empty source produces no lines and no
// error. Read failures are not retried.
func FormatStream(r io.Reader, layout Layout, prof *profile.Profile, sink func(line string)) error {
	buf := make([]byte, layout.RowLength)
	for {
		n, err := io.ReadFull(r, buf)
		switch {
		case err == nil:
			sink(FormatRow(buf, n, layout, prof))
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			if n > 0 {
				sink(FormatRow(buf, n, layout, prof))
			}
			return nil
		default:
			return &ReadError{Err: err}
		}
	}
}
