// Package decoder turns raw image bytes into the canonical pixbuf
// representation. Formats are recognized by file signature, never by
// extension; each format is a Decoder registered in a fixed order.
package decoder

import (
	"errors"
	"fmt"
	"io"

	"github.com/AnyUserName/picterm-cli/internal/pixbuf"
)

// Decoder decodes a single image format.
type Decoder interface {
	// Name returns the format name (e.g. "jpeg", "png").
	Name() string

	// Match reports whether the header bytes start with this format's
	// signature. The slice holds at least HeaderSize bytes unless the
	// source itself is shorter.
	Match(header []byte) bool

	// Decode reads the entire source and produces a canonical buffer.
	Decode(r io.Reader) (*pixbuf.Buffer, error)
}

// ErrUnsupportedFormat is returned when no registered decoder
// recognizes the source's signature.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// DecodeError wraps a codec failure on malformed or truncated data.
// The underlying reason propagates verbatim.
type DecodeError struct {
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
