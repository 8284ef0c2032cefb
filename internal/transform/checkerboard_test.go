package transform

import (
	"testing"

	"github.com/AnyUserName/picterm-cli/internal/pixbuf"
)

// blendRef is the contractual formula: (cell*(255-a) + src*a) >> 8 per
// channel, grid alpha 0.
func blendRef(cell, src uint32, alpha uint32) uint32 {
	ra := 255 - alpha
	ch := func(shift uint) uint32 {
		return ((cell>>shift&0xff)*ra + (src>>shift&0xff)*alpha) >> 8
	}
	return ch(24)<<24 | ch(16)<<16 | ch(8)<<8 | ch(0)
}

func TestCheckerboard_OpaqueUntouched(t *testing.T) {
	src := pixbuf.New(25, 25, true)
	for i := range src.Pixels {
		src.Pixels[i] = 0xff000000 | uint32(i*7)
	}

	dst := Checkerboard(src, DefaultCellSize, DefaultCellColor)
	for i := range src.Pixels {
		if dst.Pixels[i] != src.Pixels[i] {
			t.Fatalf("opaque pixel %d changed: %08x vs %08x", i, dst.Pixels[i], src.Pixels[i])
		}
	}
}

func TestCheckerboard_FullyTransparent(t *testing.T) {
	src := pixbuf.New(20, 1, true)
	// All pixels fully transparent black.

	dst := Checkerboard(src, 10, 0x404040)

	// (0,0): (0/10)%2 == (0/10)%2, same parity, secondary color
	// 0x303030; blended at alpha 0 gives (0x30*255)>>8 = 0x2f.
	if got := dst.At(0, 0); got != 0x002f2f2f {
		t.Errorf("cell B pixel: got %08x, want 002f2f2f", got)
	}
	// (10,0): parity differs, primary color 0x404040; blended at
	// alpha 0 gives (0x40*255)>>8 = 0x3f.
	if got := dst.At(10, 0); got != 0x003f3f3f {
		t.Errorf("cell A pixel: got %08x, want 003f3f3f", got)
	}
}

func TestCheckerboard_SemiTransparentBlend(t *testing.T) {
	src := pixbuf.New(20, 1, true)
	src.Pixels[10] = 0x80ff0000 // half-transparent red in a cell-A column

	dst := Checkerboard(src, 10, 0x404040)

	want := blendRef(0x404040, 0x80ff0000, 0x80)
	if got := dst.At(10, 0); got != want {
		t.Errorf("blend: got %08x, want %08x", got, want)
	}
	// Spelled out: r=(0x40*127+0xff*128)>>8=0x9f, g=b=(0x40*127)>>8=0x1f,
	// a=(0x80*128)>>8=0x40.
	if want != 0x409f1f1f {
		t.Fatalf("reference formula drifted: %08x", want)
	}
}

func TestCheckerboard_CellParityGrid(t *testing.T) {
	src := pixbuf.New(40, 40, true)
	dst := Checkerboard(src, 10, 0x404040)

	cellA := blendRef(0x404040, 0, 0)
	cellB := blendRef(0x303030, 0, 0)
	probes := []struct {
		x, y int
		want uint32
	}{
		{0, 0, cellB},   // same parity
		{10, 0, cellA},  // different parity
		{0, 10, cellA},  // different parity
		{10, 10, cellB}, // same parity
		{39, 39, cellB},
		{9, 9, cellB},
		{10, 9, cellA},
	}
	for _, p := range probes {
		if got := dst.At(p.x, p.y); got != p.want {
			t.Errorf("(%d,%d): got %08x, want %08x", p.x, p.y, got, p.want)
		}
	}
}

func TestCheckerboard_DoesNotMutateSource(t *testing.T) {
	src := pixbuf.New(5, 5, true)
	for i := range src.Pixels {
		src.Pixels[i] = 0x10203040
	}
	_ = Checkerboard(src, DefaultCellSize, DefaultCellColor)
	for i := range src.Pixels {
		if src.Pixels[i] != 0x10203040 {
			t.Fatalf("source pixel %d mutated: %08x", i, src.Pixels[i])
		}
	}
}

func BenchmarkCheckerboard(b *testing.B) {
	src := pixbuf.New(640, 480, true)
	for i := range src.Pixels {
		src.Pixels[i] = uint32(i) << 8 // varying colors, transparent
	}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Checkerboard(src, DefaultCellSize, DefaultCellColor)
	}
}
