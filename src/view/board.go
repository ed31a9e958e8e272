package view

import (
	"image"
	"image/color"

	"lifecanvas/src/universe"
)

//Watermark is the label drawn in the middle of the board
const Watermark = "The Life"

//Surface is the drawable area the board is rendered to
//coordinates are pixels from the top-left corner of the surface
type Surface interface {
	Clear(c color.Color)
	FillRect(r image.Rectangle, c color.Color)
	StrokeRect(r image.Rectangle, c color.Color)
	Label(text string, r image.Rectangle) //draws the text centered inside r
}

//Style is the look of the board
type Style struct {
	CellSize   int
	Live       color.Color
	Dead       color.Color
	Border     color.Color
	Background color.Color
	Watermark  string
}

var DefaultStyle = Style{
	CellSize:   universe.DefCellSize,
	Live:       color.RGBA{0x4c, 0xaf, 0x50, 0xff},
	Dead:       color.RGBA{0x1e, 0x1e, 0x1e, 0xff},
	Border:     color.RGBA{0x3a, 0x3a, 0x3a, 0xff},
	Background: color.Black,
	Watermark:  Watermark,
}

//BoardSize returns the pixel size of the board for the area
func BoardSize(a universe.Area, cellSize int) (int, int) {
	return a.Width * cellSize, a.Height * cellSize
}

//CellRect returns the pixel rectangle of the cell x, y
func CellRect(x int, y int, cellSize int) image.Rectangle {
	return image.Rect(x*cellSize, y*cellSize, (x+1)*cellSize, (y+1)*cellSize)
}

//CellAt maps the pixel position to the cell coordinates
//ok is false when the position is outside the width x height board
func CellAt(px int, py int, cellSize int, width int, height int) (x int, y int, ok bool) {
	if px < 0 || py < 0 || cellSize <= 0 {
		return 0, 0, false
	}
	x, y = px/cellSize, py/cellSize
	if x >= width || y >= height {
		return 0, 0, false
	}
	return x, y, true
}

//DrawBoard clears the surface and draws the whole area
//every cell gets its fill and border, the watermark goes on top
func DrawBoard(s Surface, a universe.Area, st Style) {
	s.Clear(st.Background)
	for y := range a.Entities {
		for x, e := range a.Entities[y] {
			r := CellRect(x, y, st.CellSize)
			if e {
				s.FillRect(r, st.Live)
			} else {
				s.FillRect(r, st.Dead)
			}
			s.StrokeRect(r, st.Border)
		}
	}
	if st.Watermark != "" {
		w, h := BoardSize(a, st.CellSize)
		s.Label(st.Watermark, image.Rect(0, 0, w, h))
	}
}
