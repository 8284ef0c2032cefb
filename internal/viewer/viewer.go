// Package viewer wires the pipeline together: decode the file, derive
// the displayed buffer (resample, checkerboard), let the viewport
// engine place it, and react to zoom/pan/rotate commands from the
// display surface.
package viewer

import (
	"fmt"
	"os"

	"github.com/AnyUserName/picterm-cli/internal/decoder"
	"github.com/AnyUserName/picterm-cli/internal/display"
	"github.com/AnyUserName/picterm-cli/internal/pixbuf"
	"github.com/AnyUserName/picterm-cli/internal/transform"
	"github.com/AnyUserName/picterm-cli/internal/viewport"
)

// Config holds the startup parameters from the CLI.
type Config struct {
	// Scale is the initial scale in percent; 0 selects the optimal
	// fit for the window.
	Scale int
	// Border is the inset between the window edge and the image area.
	Border int
	// ExitUnfocus ends the session when the window loses focus.
	ExitUnfocus bool
	Verbose     bool
}

// Viewer previews one image on a display surface.
type Viewer struct {
	cfg      Config
	surface  display.Surface
	registry *decoder.Registry
	engine   *viewport.Engine

	src      *pixbuf.Buffer // original decoded image
	fileName string
}

// New creates a viewer bound to a surface.
func New(surface display.Surface, cfg Config) *Viewer {
	return &Viewer{
		cfg:      cfg,
		surface:  surface,
		registry: decoder.NewRegistry(),
		engine:   viewport.New(cfg.Border),
	}
}

// Show decodes the file, presents it and blocks on the event loop
// until the user quits. Any decode failure aborts before anything is
// displayed.
func (v *Viewer) Show(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	buf, format, err := v.registry.Decode(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	v.src = buf
	v.fileName = path
	v.logf("loaded %s: %s %dx%d alpha=%v", path, format, buf.Width, buf.Height, buf.HasAlpha)

	v.engine.SetSourceSize(buf.Width, buf.Height)
	v.engine.SetWindowSize(v.surface.Size())
	if v.cfg.Scale != 0 {
		v.engine.ZoomTo(v.cfg.Scale)
	} else {
		v.engine.ZoomOptimal()
	}
	v.refresh()

	return v.surface.Run(v.handle, v.cfg.ExitUnfocus)
}

// refresh re-derives the displayed buffer from the source and blits
// it. The resampler is skipped entirely at 100% and the checkerboard
// applies only to formats that can express transparency.
func (v *Viewer) refresh() {
	img := v.src
	if scale := v.engine.Scale(); scale != 100 {
		img = transform.Resize(img, scale)
	}
	if img.HasAlpha {
		img = transform.Checkerboard(img, transform.DefaultCellSize, transform.DefaultCellColor)
	}

	v.engine.SetImageSize(img.Width, img.Height)
	x, y := v.engine.Position()
	b := v.engine.Border()
	v.surface.SetImage(img, x+b, y+b)
	v.surface.SetTitle(fmt.Sprintf("%s [%dx%d %d%%]",
		v.fileName, v.src.Width, v.src.Height, v.engine.Scale()))
}

// handle processes one input event. Returns false to end the session.
func (v *Viewer) handle(ev display.Event) bool {
	switch ev.Kind {
	case display.PanLeft:
		v.pan(viewport.Left)
	case display.PanRight:
		v.pan(viewport.Right)
	case display.PanUp:
		v.pan(viewport.Up)
	case display.PanDown:
		v.pan(viewport.Down)

	case display.ZoomIn:
		if v.engine.ZoomIn() {
			v.refresh()
		}
	case display.ZoomOut:
		if v.engine.ZoomOut() {
			v.refresh()
		}
	case display.ZoomOptimal:
		if v.engine.ZoomOptimal() {
			v.refresh()
		}
	case display.ZoomTo:
		if v.engine.ZoomTo(ev.Scale) {
			v.refresh()
		}

	case display.RotateCW:
		v.replaceSource(transform.RotateCW(v.src))
	case display.RotateCCW:
		v.replaceSource(transform.RotateCCW(v.src))
	case display.FlipH:
		v.replaceSource(transform.FlipH(v.src))

	case display.Resize:
		v.engine.SetWindowSize(v.surface.Size())
		v.refresh()

	case display.Quit:
		return false
	}
	return true
}

// pan moves the placement only; the displayed buffer is unchanged.
func (v *Viewer) pan(d viewport.Direction) {
	if v.engine.Pan(d) {
		x, y := v.engine.Position()
		b := v.engine.Border()
		v.surface.MoveImage(x+b, y+b)
	}
}

func (v *Viewer) replaceSource(buf *pixbuf.Buffer) {
	v.src = buf
	v.engine.SetSourceSize(buf.Width, buf.Height)
	v.refresh()
}

func (v *Viewer) logf(format string, args ...any) {
	if v.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[picterm] "+format+"\n", args...)
	}
}
