package viewport

import "testing"

// engine builds an Engine with a window and source already set.
func engine(t *testing.T, wndW, wndH, srcW, srcH int) *Engine {
	t.Helper()
	e := New(0)
	e.SetSourceSize(srcW, srcH)
	e.SetWindowSize(wndW, wndH)
	return e
}

func TestZoomOptimal_Downscale(t *testing.T) {
	e := engine(t, 200, 300, 400, 300)
	e.ZoomOptimal()
	if e.Scale() != 50 {
		t.Errorf("scale: got %d, want 50", e.Scale())
	}
}

func TestZoomOptimal_NeverUpscales(t *testing.T) {
	e := engine(t, 200, 200, 100, 100)
	e.ZoomOptimal()
	if e.Scale() != 100 {
		t.Errorf("scale: got %d, want 100", e.Scale())
	}
}

func TestZoomOptimal_TinyWindow(t *testing.T) {
	e := engine(t, 3, 3, 1000, 1000)
	e.ZoomOptimal()
	if e.Scale() != MinScale {
		t.Errorf("scale: got %d, want %d", e.Scale(), MinScale)
	}
}

func TestZoomIn_Clamp(t *testing.T) {
	e := engine(t, 100, 100, 10, 10)
	e.ZoomTo(998)
	if !e.ZoomIn() {
		t.Fatal("zoom in from 998 reported no change")
	}
	if e.Scale() != MaxScale {
		t.Errorf("scale: got %d, want %d", e.Scale(), MaxScale)
	}
	if e.ZoomIn() {
		t.Error("zoom in at max reported a change")
	}
}

func TestZoomOut_Clamp(t *testing.T) {
	e := engine(t, 100, 100, 10, 10)
	e.ZoomTo(3)
	if !e.ZoomOut() {
		t.Fatal("zoom out from 3 reported no change")
	}
	if e.Scale() != MinScale {
		t.Errorf("scale: got %d, want %d (short final step)", e.Scale(), MinScale)
	}
	if e.ZoomOut() {
		t.Error("zoom out at min reported a change")
	}
}

func TestZoomOut_RegularStep(t *testing.T) {
	e := engine(t, 100, 100, 10, 10)
	e.ZoomOut()
	if e.Scale() != 95 {
		t.Errorf("scale: got %d, want 95", e.Scale())
	}
}

func TestZoomTo_NoChange(t *testing.T) {
	e := engine(t, 100, 100, 10, 10)
	if e.ZoomTo(100) {
		t.Error("ZoomTo(current) reported a change")
	}
	if !e.ZoomTo(2000) || e.Scale() != MaxScale {
		t.Errorf("ZoomTo clamps to max: scale %d", e.Scale())
	}
}

func TestPlacement_Centered(t *testing.T) {
	e := engine(t, 100, 100, 40, 40)
	e.SetImageSize(40, 40)
	x, y := e.Position()
	if x != 30 || y != 30 {
		t.Errorf("position: (%d,%d), want (30,30)", x, y)
	}
}

func TestPlacement_OddDifferenceBias(t *testing.T) {
	// (101-40)/2 truncates; the one-pixel bias must be consistent on
	// both axes.
	e := engine(t, 101, 101, 40, 40)
	e.SetImageSize(40, 40)
	x, y := e.Position()
	if x != 30 || y != 30 || x != y {
		t.Errorf("position: (%d,%d)", x, y)
	}
}

func TestPlacement_OversizedCoversWindow(t *testing.T) {
	e := engine(t, 100, 100, 150, 150)
	e.SetImageSize(150, 150)
	x, y := e.Position()
	if x > 0 || x+150 < 100 {
		t.Errorf("x=%d violates containment", x)
	}
	if y > 0 || y+150 < 100 {
		t.Errorf("y=%d violates containment", y)
	}
}

func TestPlacement_PreservesVisualCenter(t *testing.T) {
	e := engine(t, 100, 100, 200, 200)
	e.SetImageSize(200, 200)
	// Pan to a known offset, then "zoom": the image center visible at
	// the window center must stay put.
	for i := 0; i < 5; i++ {
		e.Pan(Left)
	}
	x0, _ := e.Position()
	center0 := x0 + 200/2

	e.SetImageSize(300, 300)
	x1, _ := e.Position()
	center1 := x1 + 300/2
	if center1 != center0 {
		t.Errorf("visual center moved: %d -> %d", center0, center1)
	}
}

func TestPlacement_ReclampsAfterShrink(t *testing.T) {
	e := engine(t, 400, 400, 300, 300)
	e.SetImageSize(300, 300)
	x, y := e.Position()
	if x != 50 || y != 50 {
		t.Fatalf("initial position: (%d,%d), want (50,50)", x, y)
	}

	e.SetWindowSize(200, 200)
	x, y = e.Position()
	if x > 0 || x+300 < 200 {
		t.Errorf("x=%d violates containment after shrink", x)
	}
	if y > 0 || y+300 < 200 {
		t.Errorf("y=%d violates containment after shrink", y)
	}
}

func TestPlacement_FirstOversizedClampsToFarEdge(t *testing.T) {
	// Window resizes before any image is placed must not invent a
	// centered phantom image: the offset stays at the origin, so the
	// first oversized placement clamps to the far edge.
	e := New(0)
	e.SetSourceSize(150, 150)
	e.SetWindowSize(100, 100)
	e.SetWindowSize(120, 120)
	if x, y := e.Position(); x != 0 || y != 0 {
		t.Fatalf("position before any image: (%d,%d), want (0,0)", x, y)
	}

	e.SetWindowSize(100, 100)
	e.SetImageSize(150, 150)
	x, y := e.Position()
	if x != -50 || y != -50 {
		t.Errorf("first placement: (%d,%d), want (-50,-50)", x, y)
	}
}

func TestPan_NoopWhenContained(t *testing.T) {
	e := engine(t, 100, 100, 40, 40)
	e.SetImageSize(40, 40)
	for _, d := range []Direction{Left, Right, Up, Down} {
		if e.Pan(d) {
			t.Errorf("pan %d moved a contained image", d)
		}
	}
	x, y := e.Position()
	if x != 30 || y != 30 {
		t.Errorf("position drifted: (%d,%d)", x, y)
	}
}

func TestPan_PerAxisNoop(t *testing.T) {
	// Image taller than the window but narrower: horizontal pan is a
	// no-op, vertical pan moves.
	e := engine(t, 100, 100, 40, 200)
	e.SetImageSize(40, 200)
	if e.Pan(Left) || e.Pan(Right) {
		t.Error("horizontal pan moved a horizontally contained image")
	}
	if !e.Pan(Up) && !e.Pan(Down) {
		t.Error("vertical pan did not move an oversized image")
	}
}

func TestPan_StepAndClamp(t *testing.T) {
	e := engine(t, 100, 100, 150, 150)
	e.SetImageSize(150, 150)
	// Initial placement of a first-shown oversized image clamps to the
	// far edge: offset = 100-150 = -50.
	x, _ := e.Position()
	if x != -50 {
		t.Fatalf("initial x: %d, want -50", x)
	}

	if !e.Pan(Left) {
		t.Fatal("pan left reported no move")
	}
	if x, _ = e.Position(); x != -40 {
		t.Errorf("x after one step: %d, want -40", x)
	}

	// Walk to the near edge; the last step clamps at 0, never beyond.
	for i := 0; i < 20; i++ {
		e.Pan(Left)
	}
	if x, _ = e.Position(); x != 0 {
		t.Errorf("x after walking left: %d, want 0", x)
	}
	if e.Pan(Left) {
		t.Error("pan left past the edge reported a move")
	}

	// And back: clamps at window-image = -50.
	for i := 0; i < 20; i++ {
		e.Pan(Right)
	}
	if x, _ = e.Position(); x != -50 {
		t.Errorf("x after walking right: %d, want -50", x)
	}
}

func TestPan_ShortFinalStep(t *testing.T) {
	e := engine(t, 100, 100, 145, 145)
	e.SetImageSize(145, 145)
	// Initial offset 100-145 = -45; four steps reach -5.
	for i := 0; i < 4; i++ {
		e.Pan(Left)
	}
	if x, _ := e.Position(); x != -5 {
		t.Fatalf("x: %d, want -5", x)
	}
	e.Pan(Left) // would overshoot to +5, clamps exactly at 0
	if x, _ := e.Position(); x != 0 {
		t.Errorf("x: %d, want 0 (clamped final step)", x)
	}
}

func TestBorder_ShrinksEffectiveWindow(t *testing.T) {
	e := New(10)
	e.SetSourceSize(40, 40)
	e.SetWindowSize(100, 100)
	w, h := e.WindowSize()
	if w != 80 || h != 80 {
		t.Fatalf("effective window: %dx%d, want 80x80", w, h)
	}
	e.SetImageSize(40, 40)
	x, y := e.Position()
	if x != 20 || y != 20 {
		t.Errorf("position: (%d,%d), want (20,20)", x, y)
	}
}

func TestBorder_NeverNegativeWindow(t *testing.T) {
	e := New(60)
	e.SetWindowSize(100, 100)
	w, h := e.WindowSize()
	if w != 0 || h != 0 {
		t.Errorf("effective window: %dx%d, want 0x0", w, h)
	}
}
