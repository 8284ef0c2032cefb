// Package pixbuf holds the canonical decoded image representation:
// a flat RGBA8 pixel array with packed 0xAARRGGBB values.
//
// Every decoder and transform in the pipeline produces a fresh Buffer;
// a Buffer handed to a caller is never mutated afterwards.
package pixbuf

import (
	"image"
	"image/color"
)

// Buffer is a decoded image. Pixels are row-major, top-to-bottom,
// left-to-right, one uint32 per pixel laid out as 0xAARRGGBB with
// straight (non-premultiplied) alpha.
type Buffer struct {
	Width  int
	Height int
	Pixels []uint32

	// HasAlpha reports whether the source format's color model can
	// express transparency. It is a property of the format, not of the
	// pixel data: a fully opaque NRGBA image still has it set.
	HasAlpha bool
}

// New allocates a zeroed buffer. Non-positive dimensions yield an
// empty buffer.
func New(w, h int, hasAlpha bool) *Buffer {
	if w <= 0 || h <= 0 {
		return &Buffer{HasAlpha: hasAlpha}
	}
	return &Buffer{
		Width:    w,
		Height:   h,
		Pixels:   make([]uint32, w*h),
		HasAlpha: hasAlpha,
	}
}

// Empty reports whether the buffer holds no pixels.
func (b *Buffer) Empty() bool {
	return b.Width == 0 || b.Height == 0
}

// At returns the packed pixel at (x, y). Callers must stay in bounds.
func (b *Buffer) At(x, y int) uint32 {
	return b.Pixels[y*b.Width+x]
}

// Pack assembles a packed 0xAARRGGBB value from individual channels.
func Pack(a, r, g, bl uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(bl)
}

// FromImage canonicalizes any image.Image into a Buffer. The HasAlpha
// flag is derived from the image's color model via AlphaCapable, not
// from the pixel values.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	buf := New(bounds.Dx(), bounds.Dy(), AlphaCapable(img))
	if buf.Empty() {
		return buf
	}

	switch src := img.(type) {
	case *image.NRGBA:
		fromNRGBA(src, bounds, buf)
	default:
		fromGeneric(img, bounds, buf)
	}
	return buf
}

// fromNRGBA reads the Pix slice directly; straight alpha, no
// conversion needed.
func fromNRGBA(src *image.NRGBA, bounds image.Rectangle, buf *Buffer) {
	for y := 0; y < buf.Height; y++ {
		row := src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
		di := y * buf.Width
		for x := 0; x < buf.Width; x++ {
			si := x * 4
			buf.Pixels[di+x] = Pack(row[si+3], row[si], row[si+1], row[si+2])
		}
	}
}

func fromGeneric(img image.Image, bounds image.Rectangle, buf *Buffer) {
	for y := 0; y < buf.Height; y++ {
		di := y * buf.Width
		for x := 0; x < buf.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			buf.Pixels[di+x] = Pack(c.A, c.R, c.G, c.B)
		}
	}
}

// ToNRGBA converts the buffer back to a stdlib image for interop with
// image-processing libraries.
func (b *Buffer) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		si := y * b.Width
		for x := 0; x < b.Width; x++ {
			px := b.Pixels[si+x]
			di := out.PixOffset(x, y)
			out.Pix[di] = uint8(px >> 16)
			out.Pix[di+1] = uint8(px >> 8)
			out.Pix[di+2] = uint8(px)
			out.Pix[di+3] = uint8(px >> 24)
		}
	}
	return out
}

// AlphaCapable reports whether an image's color model can express
// transparency. Paletted images count only when the palette actually
// carries a transparent entry (GIF transparency, PNG tRNS).
func AlphaCapable(img image.Image) bool {
	switch src := img.(type) {
	case *image.NRGBA, *image.NRGBA64, *image.RGBA, *image.RGBA64, *image.Alpha, *image.Alpha16:
		return true
	case *image.YCbCr, *image.Gray, *image.Gray16, *image.CMYK:
		return false
	case *image.Paletted:
		for _, e := range src.Palette {
			if _, _, _, a := e.RGBA(); a < 0xffff {
				return true
			}
		}
		return false
	default:
		switch img.ColorModel() {
		case color.NRGBAModel, color.NRGBA64Model, color.RGBAModel, color.RGBA64Model:
			return true
		}
		return false
	}
}
