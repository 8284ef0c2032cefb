package transform

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/AnyUserName/picterm-cli/internal/pixbuf"
)

// RotateCW rotates the buffer 90 degrees clockwise.
func RotateCW(src *pixbuf.Buffer) *pixbuf.Buffer {
	return viaImaging(src, func(img image.Image) *image.NRGBA {
		return imaging.Rotate270(img)
	})
}

// RotateCCW rotates the buffer 90 degrees counter-clockwise.
func RotateCCW(src *pixbuf.Buffer) *pixbuf.Buffer {
	return viaImaging(src, func(img image.Image) *image.NRGBA {
		return imaging.Rotate90(img)
	})
}

// FlipH mirrors the buffer horizontally.
func FlipH(src *pixbuf.Buffer) *pixbuf.Buffer {
	return viaImaging(src, func(img image.Image) *image.NRGBA {
		return imaging.FlipH(img)
	})
}

// viaImaging round-trips the buffer through disintegration/imaging.
// The HasAlpha flag is a format property and survives the trip
// unchanged (imaging always yields NRGBA).
func viaImaging(src *pixbuf.Buffer, op func(image.Image) *image.NRGBA) *pixbuf.Buffer {
	out := pixbuf.FromImage(op(src.ToNRGBA()))
	out.HasAlpha = src.HasAlpha
	return out
}
