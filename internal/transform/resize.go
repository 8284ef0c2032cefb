// Package transform provides the pixel transforms applied between
// decode and display: nearest-neighbor resampling, the checkerboard
// backdrop for transparent images, and rotate/flip.
package transform

import (
	"github.com/AnyUserName/picterm-cli/internal/pixbuf"
)

// Resize scales src by an integer percentage (1..1000) using
// nearest-neighbor sampling: each destination pixel copies exactly one
// source pixel, so enlargement duplicates and reduction drops pixels.
//
// Output dimensions are floor(percent/100 * dim), computed from a
// single floating-point factor, clamped to a minimum of 1 when the
// source dimension is non-zero so extreme reductions never collapse
// the image entirely. Resize(src, 100) returns a pixel-identical
// copy; callers avoid the call in that case.
func Resize(src *pixbuf.Buffer, percent int) *pixbuf.Buffer {
	scale := float64(percent) / 100.0

	dw := int(scale * float64(src.Width))
	dh := int(scale * float64(src.Height))
	if src.Width > 0 && dw < 1 {
		dw = 1
	}
	if src.Height > 0 && dh < 1 {
		dh = 1
	}

	dst := pixbuf.New(dw, dh, src.HasAlpha)
	if dst.Empty() {
		return dst
	}

	for y := 0; y < dst.Height; y++ {
		rowSrc := int(float64(y)/scale) * src.Width
		rowDst := y * dst.Width
		for x := 0; x < dst.Width; x++ {
			dst.Pixels[rowDst+x] = src.Pixels[rowSrc+int(float64(x)/scale)]
		}
	}
	return dst
}
