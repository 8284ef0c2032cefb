package decoder

import (
	"fmt"
	"io"

	"github.com/AnyUserName/picterm-cli/internal/pixbuf"
)

// HeaderSize is the number of bytes sniffed for format detection.
// Covers the longest registered signature (WebP needs 12).
const HeaderSize = 16

// Registry holds all decoders in registration order and dispatches on
// the first matching signature.
type Registry struct {
	decoders []Decoder
}

// NewRegistry creates a registry with all built-in decoders.
func NewRegistry() *Registry {
	return &Registry{
		decoders: []Decoder{
			&JPEGDecoder{},
			&PNGDecoder{},
			&GIFDecoder{},
			&WebPDecoder{},
			&BMPDecoder{},
			&TIFFDecoder{},
		},
	}
}

// Names returns the registered format names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.decoders))
	for i, d := range r.decoders {
		names[i] = d.Name()
	}
	return names
}

// Lookup returns the first decoder whose signature matches the header,
// or nil if none does.
func (r *Registry) Lookup(header []byte) Decoder {
	for _, d := range r.decoders {
		if d.Match(header) {
			return d
		}
	}
	return nil
}

// Decode sniffs the source's header, resets the read position and runs
// the matching decoder against the whole source. Returns the buffer
// and the format name.
func (r *Registry) Decode(src io.ReadSeeker) (*pixbuf.Buffer, string, error) {
	header := make([]byte, HeaderSize)
	n, err := io.ReadFull(src, header)
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, "", fmt.Errorf("read header: %w", err)
	}

	dec := r.Lookup(header[:n])
	if dec == nil {
		return nil, "", ErrUnsupportedFormat
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, "", fmt.Errorf("rewind source: %w", err)
	}

	buf, err := dec.Decode(src)
	if err != nil {
		return nil, "", &DecodeError{Format: dec.Name(), Err: err}
	}
	return buf, dec.Name(), nil
}
