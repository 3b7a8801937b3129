package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"
)

const panelLineH = 24

// drawPanel renders the side panel: the configured parameters, the action
// counter, and the tail of the action log.
func (g *Game) drawPanel(screen *ebiten.Image) {
	px := g.Layout.PanelX()
	_, sh := screen.Size()
	ebitenutil.DrawRect(screen, float64(px), 0, panelWidth, float64(sh), colorPanelBG)

	x := px + 10
	y := panelLineH

	text.Draw(screen, "Game Settings:", textFont, x, y, colorText)
	y += panelLineH + 8

	cfg := g.Model.Cfg
	params := []string{
		fmt.Sprintf("Creation Prob: %v", cfg.CreateProb),
		fmt.Sprintf("Swap Prob: %v", cfg.MergeProb),
		fmt.Sprintf("Link Lifetime: %d", cfg.Lifetime),
		fmt.Sprintf("Actions: %d", g.Model.Actions),
	}
	for _, param := range params {
		text.Draw(screen, param, textFont, x, y, colorText)
		y += panelLineH
	}

	y += panelLineH
	text.Draw(screen, "Action Log:", textFont, x, y, colorText)
	y += panelLineH

	for _, entry := range g.Model.TailLog(2 * g.Layout.Size) {
		text.Draw(screen, entry, textFont, x, y, colorText)
		y += panelLineH - 4
	}
}
