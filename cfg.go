package main

import (
	"image/color"

	"github.com/chrishalkias/qonnect/model"
)

const (
	cellSize   = 80
	cellPad    = 1
	textPad    = 20
	titleH     = 48
	panelWidth = 200
)

const selectionThickness = 5

func HexToF32(u uint32, id int) GameColor {
	b := float64(0xff&u) / 255
	g := float64(0xff&(u>>8)) / 255
	r := float64(0xff&(u>>16)) / 255
	return GameColor{r, g, b, id}
}

// GameColor carries normalized channels for ColorM tinting of images.
type GameColor struct {
	r  float64
	g  float64
	b  float64
	id int
}

var COLOR_DOT = HexToF32(0x9632c8, 1)

var (
	colorBG        = color.RGBA{240, 240, 240, 255}
	colorGridLine  = color.RGBA{200, 200, 200, 255}
	colorForbidden = color.RGBA{0, 0, 0, 255}
	colorPlaceable = color.RGBA{200, 200, 200, 255}
	colorTarget    = color.RGBA{100, 255, 100, 255}
	colorDiagonal  = color.RGBA{255, 0, 0, 255}
	colorSelection = color.RGBA{100, 200, 255, 255}
	colorPanelBG   = color.RGBA{220, 220, 220, 255}
	colorText      = color.RGBA{0, 0, 0, 255}
	colorWinText   = color.RGBA{0, 100, 0, 255}
)

// Layout maps between screen pixels and grid cells. The board sits below
// the title strip and to the right of the row labels; the side panel takes
// the remaining width on the right.
type Layout struct {
	Size int
}

func (l Layout) span() int {
	return l.Size*(cellSize+cellPad) + cellPad
}

func (l Layout) ScreenSize() (int, int) {
	return textPad + l.span() + panelWidth, titleH + textPad + l.span()
}

func (l Layout) PanelX() int {
	w, _ := l.ScreenSize()
	return w - panelWidth
}

// CellOrigin is the top-left pixel of the cell body.
func (l Layout) CellOrigin(p model.Pos) (float64, float64) {
	x := textPad + p.Col*(cellSize+cellPad)
	y := titleH + textPad + p.Row*(cellSize+cellPad)
	return float64(x), float64(y)
}

// CellAt inverts CellOrigin for pointer input. The title strip, labels and
// side panel are not part of the board and report no cell.
func (l Layout) CellAt(x, y int) (model.Pos, bool) {
	x -= textPad
	y -= titleH + textPad
	if x < 0 || y < 0 {
		return model.Pos{}, false
	}
	col := x / (cellSize + cellPad)
	row := y / (cellSize + cellPad)
	if row >= l.Size || col >= l.Size {
		return model.Pos{}, false
	}
	return model.Pos{Row: row, Col: col}, true
}
