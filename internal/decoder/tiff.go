package decoder

import (
	"bytes"
	"image"
	"io"

	"golang.org/x/image/tiff"

	"github.com/AnyUserName/picterm-cli/internal/pixbuf"
)

var (
	tiffSigLE = []byte{0x49, 0x49, 0x2a, 0x00} // "II*\0"
	tiffSigBE = []byte{0x4d, 0x4d, 0x00, 0x2a} // "MM\0*"
)

// TIFFDecoder decodes TIFF via golang.org/x/image/tiff.
type TIFFDecoder struct{}

func (d *TIFFDecoder) Name() string { return "tiff" }

func (d *TIFFDecoder) Match(header []byte) bool {
	return bytes.HasPrefix(header, tiffSigLE) || bytes.HasPrefix(header, tiffSigBE)
}

func (d *TIFFDecoder) Decode(r io.Reader) (*pixbuf.Buffer, error) {
	img, err := tiff.Decode(r)
	if err != nil {
		return nil, err
	}
	buf := pixbuf.FromImage(img)
	// RGB TIFF decodes to *image.RGBA with filler alpha, but so does an
	// associated-alpha TIFF. Only a fully opaque result can be reported
	// as alpha-less.
	switch img := img.(type) {
	case *image.RGBA:
		buf.HasAlpha = !img.Opaque()
	case *image.RGBA64:
		buf.HasAlpha = !img.Opaque()
	}
	return buf, nil
}
