//Package canvas shows the universe in a window with a pixel board and a toolbar
package canvas

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"lifecanvas/src/universe"
	"lifecanvas/src/view"
)

//debug font glyph size of ebitenutil.DebugPrint
const (
	glyphWidth  = 6
	glyphHeight = 16
)

type frame struct {
	area     universe.Area
	status   universe.Status
	controls universe.ButtonStates
}

//CanvasView implements universe.Viewer and ebiten.Game
type CanvasView struct {
	u       universe.Universe
	style   view.Style
	pointer *view.Pointer
	width   int
	height  int

	mu    sync.Mutex
	frame frame
}

//NewCanvasView creates the view, the window is opened by Start
func NewCanvasView(style view.Style) *CanvasView {
	return &CanvasView{style: style}
}

//Register binds the view to the universe
func (c *CanvasView) Register(u universe.Universe) {
	c.u = u
	o := u.Options()
	c.width = o.Width * c.style.CellSize
	c.height = o.Height*c.style.CellSize + view.ToolbarHeight
	c.pointer = view.NewPointer(u, c.style.CellSize)
	c.Refresh()
}

//Refresh takes the fresh snapshot, the next frame draws it
func (c *CanvasView) Refresh() {
	f := frame{
		area:     c.u.Area(),
		status:   c.u.Status(),
		controls: c.u.Controls(),
	}
	c.mu.Lock()
	c.frame = f
	c.mu.Unlock()
}

//Start opens the window and blocks until it is closed
func (c *CanvasView) Start() error {
	ebiten.SetWindowSize(c.width, c.height)
	ebiten.SetWindowTitle(view.Watermark)
	return ebiten.RunGame(c)
}

//Update polls the pointer once per tick
func (c *CanvasView) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		c.pointer.Click(ebiten.CursorPosition())
	}
	return nil
}

//Draw redraws the board and the toolbar from the last snapshot
func (c *CanvasView) Draw(screen *ebiten.Image) {
	c.mu.Lock()
	f := c.frame
	c.mu.Unlock()

	bw, bh := view.BoardSize(f.area, c.style.CellSize)
	board := screen.SubImage(image.Rect(0, 0, bw, bh)).(*ebiten.Image)
	view.DrawBoard(&surface{board}, f.area, c.style)

	toolbar := screen.SubImage(image.Rect(0, bh, c.width, c.height)).(*ebiten.Image)
	s := &surface{toolbar}
	s.Clear(c.style.Background)
	view.DrawToolbar(s, c.pointer.Buttons(), f.controls, f.status, c.width)
}

//Layout keeps the logical screen at the board size
func (c *CanvasView) Layout(_, _ int) (int, int) {
	return c.width, c.height
}

//surface draws on the ebiten image
type surface struct {
	img *ebiten.Image
}

func (s *surface) Clear(c color.Color) {
	s.img.Fill(c)
}

func (s *surface) FillRect(r image.Rectangle, c color.Color) {
	vector.DrawFilledRect(s.img, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

func (s *surface) StrokeRect(r image.Rectangle, c color.Color) {
	vector.StrokeRect(s.img, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, c, false)
}

func (s *surface) Label(text string, r image.Rectangle) {
	x := r.Min.X + (r.Dx()-len(text)*glyphWidth)/2
	y := r.Min.Y + (r.Dy()-glyphHeight)/2
	ebitenutil.DebugPrintAt(s.img, text, x, y)
}
