package decoder

import (
	"bytes"
	"image/gif"
	"io"

	"github.com/AnyUserName/picterm-cli/internal/pixbuf"
)

var gifSig = []byte("GIF8")

// GIFDecoder decodes the first frame of a GIF via the standard
// library codec. Animation is out of scope.
type GIFDecoder struct{}

func (d *GIFDecoder) Name() string { return "gif" }

func (d *GIFDecoder) Match(header []byte) bool {
	return bytes.HasPrefix(header, gifSig)
}

func (d *GIFDecoder) Decode(r io.Reader) (*pixbuf.Buffer, error) {
	img, err := gif.Decode(r)
	if err != nil {
		return nil, err
	}
	// Paletted source: pixbuf.FromImage reports alpha only when the
	// palette carries a transparent entry.
	return pixbuf.FromImage(img), nil
}
