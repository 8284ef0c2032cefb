package decoder

import (
	"bytes"
	"io"

	"golang.org/x/image/webp"

	"github.com/AnyUserName/picterm-cli/internal/pixbuf"
)

var (
	riffSig = []byte("RIFF")
	webpSig = []byte("WEBP")
)

// WebPDecoder decodes WebP via golang.org/x/image/webp.
type WebPDecoder struct{}

func (d *WebPDecoder) Name() string { return "webp" }

// Match checks the RIFF container: "RIFF" at offset 0, "WEBP" at
// offset 8.
func (d *WebPDecoder) Match(header []byte) bool {
	return len(header) >= 12 &&
		bytes.HasPrefix(header, riffSig) &&
		bytes.Equal(header[8:12], webpSig)
}

func (d *WebPDecoder) Decode(r io.Reader) (*pixbuf.Buffer, error) {
	img, err := webp.Decode(r)
	if err != nil {
		return nil, err
	}
	// Lossy WebP decodes to YCbCr (opaque), lossless to NRGBA.
	return pixbuf.FromImage(img), nil
}
