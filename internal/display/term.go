package display

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/AnyUserName/picterm-cli/internal/pixbuf"
)

// halfBlock renders two vertically stacked pixels per terminal cell:
// the foreground paints the upper half, the background the lower.
const halfBlock = '▀'

// Term is a terminal Surface. One character cell maps to a 1x2 pixel
// column, so the drawable height is twice the terminal height.
type Term struct {
	screen tcell.Screen

	buf  *pixbuf.Buffer
	imgX int
	imgY int
}

// NewTerm initializes the terminal surface.
func NewTerm() (*Term, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.EnableFocus()
	s.HideCursor()
	s.SetStyle(tcell.StyleDefault)
	return &Term{screen: s}, nil
}

func (t *Term) Size() (int, int) {
	w, h := t.screen.Size()
	return w, h * 2
}

func (t *Term) SetImage(buf *pixbuf.Buffer, x, y int) {
	t.buf = buf
	t.imgX, t.imgY = x, y
	t.draw()
}

func (t *Term) MoveImage(x, y int) {
	t.imgX, t.imgY = x, y
	t.draw()
}

func (t *Term) SetTitle(title string) {
	t.screen.SetTitle(title)
}

func (t *Term) Close() {
	t.screen.Fini()
}

func (t *Term) draw() {
	cols, rows := t.screen.Size()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := t.pixelAt(col, row*2)
			bottom := t.pixelAt(col, row*2+1)
			style := tcell.StyleDefault.
				Foreground(rgbColor(top)).
				Background(rgbColor(bottom))
			t.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
	t.screen.Show()
}

// pixelAt returns the packed pixel under window coordinate (x, y), or
// black outside the image.
func (t *Term) pixelAt(x, y int) uint32 {
	if t.buf == nil {
		return 0
	}
	ix := x - t.imgX
	iy := y - t.imgY
	if ix < 0 || iy < 0 || ix >= t.buf.Width || iy >= t.buf.Height {
		return 0
	}
	return t.buf.At(ix, iy)
}

// rgbColor drops the alpha channel; transparency is already resolved
// by the checkerboard compositor before blitting.
func rgbColor(px uint32) tcell.Color {
	return tcell.NewRGBColor(
		int32(px>>16&0xff),
		int32(px>>8&0xff),
		int32(px&0xff),
	)
}

// Run translates terminal input into viewer events. Every event goes
// through handler sequentially on this goroutine.
func (t *Term) Run(handler func(Event) bool, exitUnfocus bool) error {
	for {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			t.screen.Sync()
			if !handler(Event{Kind: Resize}) {
				return nil
			}
		case *tcell.EventFocus:
			if exitUnfocus && !ev.Focused {
				return nil
			}
		case *tcell.EventKey:
			e, ok := translateKey(ev)
			if !ok {
				continue
			}
			if e.Kind == Quit {
				return nil
			}
			if !handler(e) {
				return nil
			}
		case nil:
			// Screen finalized.
			return nil
		}
	}
}

func translateKey(ev *tcell.EventKey) (Event, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return Event{Kind: PanLeft}, true
	case tcell.KeyRight:
		return Event{Kind: PanRight}, true
	case tcell.KeyUp:
		return Event{Kind: PanUp}, true
	case tcell.KeyDown:
		return Event{Kind: PanDown}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Event{Kind: ZoomOptimal}, true
	case tcell.KeyEscape, tcell.KeyEnter:
		return Event{Kind: Quit}, true
	case tcell.KeyRune:
		return translateRune(ev.Rune())
	}
	return Event{}, false
}

func translateRune(r rune) (Event, bool) {
	switch r {
	case 'h':
		return Event{Kind: PanLeft}, true
	case 'l':
		return Event{Kind: PanRight}, true
	case 'k':
		return Event{Kind: PanUp}, true
	case 'j':
		return Event{Kind: PanDown}, true
	case '+', '=':
		return Event{Kind: ZoomIn}, true
	case '-':
		return Event{Kind: ZoomOut}, true
	case 'r':
		return Event{Kind: RotateCW}, true
	case 'R':
		return Event{Kind: RotateCCW}, true
	case 'f':
		return Event{Kind: FlipH}, true
	case 'q', 'e', 'x':
		return Event{Kind: Quit}, true
	case '0':
		return Event{Kind: ZoomTo, Scale: 100}, true
	}
	if r >= '1' && r <= '9' {
		return Event{Kind: ZoomTo, Scale: int(r-'0') * 10}, true
	}
	return Event{}, false
}
