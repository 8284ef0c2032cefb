package decoder

import (
	"bytes"
	"image"
	"io"

	"golang.org/x/image/bmp"

	"github.com/AnyUserName/picterm-cli/internal/pixbuf"
)

var bmpSig = []byte("BM")

// BMPDecoder decodes BMP via golang.org/x/image/bmp.
type BMPDecoder struct{}

func (d *BMPDecoder) Name() string { return "bmp" }

func (d *BMPDecoder) Match(header []byte) bool {
	return bytes.HasPrefix(header, bmpSig)
}

func (d *BMPDecoder) Decode(r io.Reader) (*pixbuf.Buffer, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, err
	}
	buf := pixbuf.FromImage(img)
	// 24-bit BMP decodes to *image.RGBA with filler alpha; only the
	// 32-bit variant (NRGBA) actually carries a channel. The opacity
	// check keeps any alpha-bearing RGBA result honest.
	switch img := img.(type) {
	case *image.RGBA:
		buf.HasAlpha = !img.Opaque()
	case *image.RGBA64:
		buf.HasAlpha = !img.Opaque()
	}
	return buf, nil
}
