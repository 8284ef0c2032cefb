package decoder

import (
	"bytes"
	"image/jpeg"
	"io"

	"github.com/AnyUserName/picterm-cli/internal/pixbuf"
)

var jpegSig = []byte{0xff, 0xd8}

// JPEGDecoder decodes JPEG via the standard library codec.
type JPEGDecoder struct{}

func (d *JPEGDecoder) Name() string { return "jpeg" }

func (d *JPEGDecoder) Match(header []byte) bool {
	return bytes.HasPrefix(header, jpegSig)
}

func (d *JPEGDecoder) Decode(r io.Reader) (*pixbuf.Buffer, error) {
	img, err := jpeg.Decode(r)
	if err != nil {
		return nil, err
	}
	buf := pixbuf.FromImage(img)
	// JPEG has no alpha channel regardless of component layout.
	buf.HasAlpha = false
	return buf, nil
}
