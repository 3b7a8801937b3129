package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"
)

var rulesLines = []string{
	"Welcome to Qonnect!",
	"Put a dot on the green square to reach end-to-end entanglement.",
	"The game follows the swapping scheme of a quantum repeater chain.",
	"",
	"- Rule 0: The board is an N x N grid, mirrored about the red diagonal.",
	"- Rule 1: Click a grey cell to generate entanglement (a dot).",
	"- Rule 2: Select two dots sharing a row or column index to swap them:",
	"          dots at (i,j) and (j,k) combine into a dot at (i,k).",
	"          A dot cannot be swapped with its own mirror image.",
	"- Rule 3: Dots fade and disappear after a few actions.",
	"- Rule 4: Dots can only be generated in grey cells.",
	"- Rule 5: The game ends when a dot reaches the target square.",
	"- Final rule: Enjoy the game!",
	"",
	"                                   - Chris",
}

const (
	popupW = 560
	popupH = 480
)

type clickRect struct {
	x, y, w, h int
}

func (r clickRect) contains(px, py int) bool {
	return px >= r.x && px < r.x+r.w && py >= r.y && py < r.y+r.h
}

func (g *Game) popupOrigin() (int, int) {
	w, h := g.Layout.ScreenSize()
	return (w - popupW) / 2, (h - popupH) / 2
}

func (g *Game) rulesCloseRect() clickRect {
	px, py := g.popupOrigin()
	return clickRect{x: px + popupW - 120, y: py + popupH - 50, w: 100, h: 30}
}

func (g *Game) drawRules(screen *ebiten.Image) {
	sw, sh := screen.Size()
	ebitenutil.DrawRect(screen, 0, 0, float64(sw), float64(sh), color.RGBA{0, 0, 0, 128})

	px, py := g.popupOrigin()
	panelNine.SetRect(px, py, popupW, popupH)
	panelNine.Draw(screen)

	y := py + 40
	for _, line := range rulesLines {
		text.Draw(screen, line, textFont, px+24, y, colorText)
		y += panelLineH
	}

	btn := g.rulesCloseRect()
	ebitenutil.DrawRect(screen, float64(btn.x), float64(btn.y), float64(btn.w), float64(btn.h), color.RGBA{200, 0, 0, 255})
	text.Draw(screen, "Play", textFont, btn.x+32, btn.y+21, color.White)
}
