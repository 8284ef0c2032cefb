package decoder

import (
	"bytes"
	"image"
	"image/png"
	"io"

	"github.com/AnyUserName/picterm-cli/internal/pixbuf"
)

var pngSig = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}

// PNGDecoder decodes PNG via the standard library codec.
type PNGDecoder struct{}

func (d *PNGDecoder) Name() string { return "png" }

func (d *PNGDecoder) Match(header []byte) bool {
	return bytes.HasPrefix(header, pngSig)
}

func (d *PNGDecoder) Decode(r io.Reader) (*pixbuf.Buffer, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, err
	}
	buf := pixbuf.FromImage(img)
	// Truecolor-without-alpha PNGs decode to *image.RGBA with a
	// synthesized opaque channel; the format itself is opaque.
	switch img.(type) {
	case *image.RGBA, *image.RGBA64:
		buf.HasAlpha = false
	}
	return buf, nil
}
