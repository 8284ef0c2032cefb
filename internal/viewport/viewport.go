// Package viewport computes where the displayed image sits inside the
// window: scale under zoom commands, offsets under pan commands, and
// the centering/containment rules on every size change.
//
// Per-axis invariant: an image that fits the window is exactly
// centered; an oversized image always fully covers the window
// (offset <= 0 and offset+size >= window).
package viewport

// Direction is a pan direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

const (
	// MinScale and MaxScale bound the zoom range, in percent.
	MinScale = 1
	MaxScale = 1000

	// scaleStep is added or removed per zoom command.
	scaleStep = 5
	// moveStep is the pan distance per command, in pixels.
	moveStep = 10
)

// Engine holds the viewport state. All dimensions are pixels; the
// window dimensions are the drawable area after the border inset.
type Engine struct {
	scale  int
	border int

	wndW, wndH int // effective window (border applied)
	srcW, srcH int // source image
	imgW, imgH int // displayed image (post-resample)
	imgX, imgY int // displayed image top-left, window-relative
}

// New creates an engine with a fixed border inset and a 100% scale.
// Border changes never alter scale, only placement, so the border is
// set once.
func New(border int) *Engine {
	if border < 0 {
		border = 0
	}
	return &Engine{scale: 100, border: border}
}

// Scale returns the current scale in percent.
func (e *Engine) Scale() int { return e.scale }

// Border returns the border inset.
func (e *Engine) Border() int { return e.border }

// Position returns the displayed image's top-left corner relative to
// the effective window. Either offset may be negative when the image
// overflows the window.
func (e *Engine) Position() (x, y int) { return e.imgX, e.imgY }

// WindowSize returns the effective window dimensions.
func (e *Engine) WindowSize() (w, h int) { return e.wndW, e.wndH }

// ImageSize returns the displayed image dimensions.
func (e *Engine) ImageSize() (w, h int) { return e.imgW, e.imgH }

// SetSourceSize records the source image dimensions used by
// ZoomOptimal.
func (e *Engine) SetSourceSize(w, h int) {
	e.srcW, e.srcH = w, h
}

// SetWindowSize updates the window dimensions (border applied here)
// and recomputes placement so the invariants hold again.
func (e *Engine) SetWindowSize(w, h int) {
	w -= 2 * e.border
	h -= 2 * e.border
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	e.wndW, e.wndH = w, h
	e.imgX = placeAxis(e.wndW, e.imgW, e.imgW, e.imgX)
	e.imgY = placeAxis(e.wndH, e.imgH, e.imgH, e.imgY)
}

// SetImageSize records the displayed buffer's dimensions and places
// it: centered when it fits, otherwise keeping the previous visual
// center and clamping to containment.
func (e *Engine) SetImageSize(w, h int) {
	e.imgX = placeAxis(e.wndW, w, e.imgW, e.imgX)
	e.imgY = placeAxis(e.wndH, h, e.imgH, e.imgY)
	e.imgW, e.imgH = w, h
}

// placeAxis computes the new offset for one axis. A zero size means no
// image has been placed yet; the offset stays at the origin so the
// first real placement starts from an empty previous image rather than
// a phantom centered one.
func placeAxis(wnd, size, oldSize, oldOff int) int {
	if size <= 0 {
		return 0
	}
	if size <= wnd {
		return (wnd - size) / 2
	}
	// Preserve the visual center of the previous image, then clamp so
	// the window stays fully covered.
	off := oldOff + (oldSize-size)/2
	if off > 0 {
		off = 0
	} else if off+size < wnd {
		off = wnd - size
	}
	return off
}

// ZoomIn raises the scale by one step, clamped to MaxScale. Reports
// whether the scale changed.
func (e *Engine) ZoomIn() bool {
	if e.scale >= MaxScale {
		return false
	}
	e.scale += scaleStep
	if e.scale > MaxScale {
		e.scale = MaxScale
	}
	return true
}

// ZoomOut lowers the scale by one step. The last step may be shorter
// so the scale lands exactly on MinScale. Reports whether the scale
// changed.
func (e *Engine) ZoomOut() bool {
	if e.scale <= MinScale {
		return false
	}
	if e.scale-MinScale > scaleStep {
		e.scale -= scaleStep
	} else {
		e.scale = MinScale
	}
	return true
}

// ZoomOptimal sets the largest scale not above 100 at which the source
// fits the window on both axes. A source that already fits stays at
// exactly 100; the engine never upscales automatically. Reports
// whether the scale changed.
func (e *Engine) ZoomOptimal() bool {
	old := e.scale
	scale := 100
	if e.srcW > 0 && e.wndW < e.srcW {
		scale = 100 * e.wndW / e.srcW
	}
	if e.srcH > 0 && e.wndH < e.srcH {
		if s := 100 * e.wndH / e.srcH; s < scale {
			scale = s
		}
	}
	if scale < MinScale {
		scale = MinScale
	}
	e.scale = scale
	return e.scale != old
}

// ZoomTo sets an absolute scale, clamped to [MinScale, MaxScale].
// Reports whether the scale changed.
func (e *Engine) ZoomTo(percent int) bool {
	if percent < MinScale {
		percent = MinScale
	} else if percent > MaxScale {
		percent = MaxScale
	}
	if percent == e.scale {
		return false
	}
	e.scale = percent
	return true
}

// Pan moves the image one step toward revealing more of it. It is a
// no-op when the image is fully contained in the window on the
// relevant axis, and never moves past the point where the image would
// stop covering a window edge. Reports whether the position changed.
func (e *Engine) Pan(d Direction) bool {
	x, y := e.imgX, e.imgY

	switch d {
	case Left:
		if !e.containedX() && e.imgX <= 0 {
			e.imgX += moveStep
			if e.imgX > 0 {
				e.imgX = 0
			}
		}
	case Right:
		if !e.containedX() && e.imgX+e.imgW >= e.wndW {
			e.imgX -= moveStep
			if e.imgX+e.imgW < e.wndW {
				e.imgX = e.wndW - e.imgW
			}
		}
	case Up:
		if !e.containedY() && e.imgY <= 0 {
			e.imgY += moveStep
			if e.imgY > 0 {
				e.imgY = 0
			}
		}
	case Down:
		if !e.containedY() && e.imgY+e.imgH >= e.wndH {
			e.imgY -= moveStep
			if e.imgY+e.imgH < e.wndH {
				e.imgY = e.wndH - e.imgH
			}
		}
	}

	return x != e.imgX || y != e.imgY
}

func (e *Engine) containedX() bool {
	return e.imgX >= 0 && e.imgX+e.imgW <= e.wndW
}

func (e *Engine) containedY() bool {
	return e.imgY >= 0 && e.imgY+e.imgH <= e.wndH
}
