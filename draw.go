package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"
	"golang.org/x/image/font"

	"github.com/chrishalkias/qonnect/model"
)

func (g *Game) draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	g.drawTitle(screen)
	g.drawLabels(screen)
	g.drawBoard(screen)
	g.drawDots(screen)
	g.drawSelection(screen)
	if g.Model.GameOver {
		g.drawBanner(screen)
	}
	g.drawPanel(screen)
}

func (g *Game) drawTitle(screen *ebiten.Image) {
	boardW := textPad + g.Layout.span()
	w := font.MeasureString(titleFont, "Qonnect").Round()
	text.Draw(screen, "Qonnect", titleFont, (boardW-w)/2, titleH-10, colorText)
}

// drawLabels writes the 1-indexed row and column numbers along the board
// edges, matching the coordinates the action log uses.
func (g *Game) drawLabels(screen *ebiten.Image) {
	for i := 0; i < g.Layout.Size; i++ {
		label := fmt.Sprintf("%d", i+1)
		w := font.MeasureString(textFont, label).Round()

		cx := textPad + i*(cellSize+cellPad) + cellSize/2
		text.Draw(screen, label, textFont, cx-w/2, titleH+textPad-4, colorText)

		cy := titleH + textPad + i*(cellSize+cellPad) + cellSize/2
		text.Draw(screen, label, textFont, (textPad-w)/2, cy+6, colorText)
	}
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	n := g.Layout.Size
	span := float64(g.Layout.span())
	gx := float64(textPad)
	gy := float64(titleH + textPad)

	for i := 0; i <= n; i++ {
		off := float64(i * (cellSize + cellPad))
		ebitenutil.DrawLine(screen, gx, gy+off, gx+span, gy+off, colorGridLine)
		ebitenutil.DrawLine(screen, gx+off, gy, gx+off, gy+span, colorGridLine)
	}

	for _, p := range g.Model.Cfg.CellsOf(model.Forbidden) {
		g.fillCell(screen, p, colorForbidden)
	}
	for _, p := range g.Model.Cfg.CellsOf(model.Placeable) {
		g.fillCell(screen, p, colorPlaceable)
	}

	ebitenutil.DrawLine(screen, gx, gy, gx+span, gy+span, colorDiagonal)

	target := g.Model.Cfg.Target
	g.fillCell(screen, target, colorTarget)
	g.fillCell(screen, target.Mirror(), colorTarget)
}

func (g *Game) fillCell(screen *ebiten.Image, p model.Pos, clr color.Color) {
	x, y := g.Layout.CellOrigin(p)
	ebitenutil.DrawRect(screen, x, y, cellSize, cellSize, clr)
}

// drawDots renders every link as a tinted dot whose opacity tracks its
// remaining lifetime, so a link visibly fades as it decays.
func (g *Game) drawDots(screen *ebiten.Image) {
	iw, ih := dotImage.Size()
	base := float64(cellSize) / 2 / float64(iw)

	for r := 0; r < g.Layout.Size; r++ {
		for c := 0; c < g.Layout.Size; c++ {
			p := model.Pos{Row: r, Col: c}
			if !g.Model.Occupied(p) {
				continue
			}
			alpha := float64(g.Model.RemainingLife(p)) / float64(g.Model.Cfg.Lifetime)
			if alpha > 1 {
				alpha = 1
			}
			s := base
			if k, ok := g.pulse[p]; ok {
				s *= k
			}

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(s, s)
			x, y := g.Layout.CellOrigin(p)
			op.GeoM.Translate(
				x+cellSize/2-s*float64(iw)/2,
				y+cellSize/2-s*float64(ih)/2)
			op.ColorM.Scale(COLOR_DOT.r, COLOR_DOT.g, COLOR_DOT.b, alpha)
			screen.DrawImage(dotImage, op)
		}
	}
}

func (g *Game) drawSelection(screen *ebiten.Image) {
	for _, p := range g.Model.Selected {
		x, y := g.Layout.CellOrigin(p)
		t := float64(selectionThickness)
		ebitenutil.DrawRect(screen, x, y, cellSize, t, colorSelection)
		ebitenutil.DrawRect(screen, x, y+cellSize-t, cellSize, t, colorSelection)
		ebitenutil.DrawRect(screen, x, y, t, cellSize, colorSelection)
		ebitenutil.DrawRect(screen, x+cellSize-t, y, t, cellSize, colorSelection)
	}
}

func (g *Game) drawBanner(screen *ebiten.Image) {
	msg := "End-to-end Linked!"
	if !g.Model.Win {
		msg = "Game Over"
	}
	a := g.bannerAlpha
	clr := color.RGBA{
		uint8(float64(colorWinText.R) * a),
		uint8(float64(colorWinText.G) * a),
		uint8(float64(colorWinText.B) * a),
		uint8(255 * a),
	}
	w := font.MeasureString(bannerFont, msg).Round()
	sw, sh := screen.Size()
	text.Draw(screen, msg, bannerFont, (sw-w)/2, sh/2, clr)
}
