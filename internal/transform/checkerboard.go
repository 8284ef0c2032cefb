package transform

import (
	"github.com/AnyUserName/picterm-cli/internal/pixbuf"
)

// Checkerboard defaults.
const (
	DefaultCellSize  = 10
	DefaultCellColor = 0x404040 // RGB24

	// cellDarken is subtracted from every channel of the primary cell
	// color to produce the secondary one.
	cellDarken = 0x10
)

// Checkerboard blends a two-tone grid behind every non-opaque pixel of
// src and returns the result as a new buffer. Fully opaque pixels are
// copied untouched. Cells where (x/cell)%2 differs from (y/cell)%2 use
// colorA, the rest use colorA darkened by 0x10 per channel.
//
// The blend is pure integer arithmetic:
//
//	out = (cell*(255-alpha) + src*alpha) >> 8
//
// applied to all four channels, the grid's alpha being 0. The
// right-shift is a deliberate approximation of dividing by 255; its
// truncation behavior is part of the contract and must not be
// "corrected" to exact division.
func Checkerboard(src *pixbuf.Buffer, cellSize int, colorA uint32) *pixbuf.Buffer {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	colorA &= 0xffffff
	colorB := darken(colorA)

	dst := pixbuf.New(src.Width, src.Height, src.HasAlpha)
	copy(dst.Pixels, src.Pixels)

	for y := 0; y < dst.Height; y++ {
		row := y * dst.Width
		for x := 0; x < dst.Width; x++ {
			px := dst.Pixels[row+x]
			alpha := px >> 24
			if alpha == 0xff {
				continue
			}
			cell := colorB
			if (x/cellSize)%2 != (y/cellSize)%2 {
				cell = colorA
			}
			dst.Pixels[row+x] = blend(cell, px, alpha)
		}
	}
	return dst
}

func darken(rgb uint32) uint32 {
	r := uint8(rgb>>16) - cellDarken
	g := uint8(rgb>>8) - cellDarken
	b := uint8(rgb) - cellDarken
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// blend mixes the grid color (alpha 0) under one source pixel,
// channel by channel.
func blend(cell, src, alpha uint32) uint32 {
	ra := 255 - alpha
	b := ((cell&0xff)*ra + (src&0xff)*alpha) >> 8
	g := ((cell>>8&0xff)*ra + (src>>8&0xff)*alpha) >> 8
	r := ((cell>>16&0xff)*ra + (src>>16&0xff)*alpha) >> 8
	a := ((cell>>24&0xff)*ra + (src>>24&0xff)*alpha) >> 8
	return a<<24 | r<<16 | g<<8 | b
}
