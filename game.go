package main

import (
	"strings"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/chrishalkias/qonnect/model"
)

type Game struct {
	Model  *model.Model
	Layout Layout
	Tweens map[*gween.Tween]Action

	ShowRules bool

	// pulse holds a transient draw scale for freshly created dots,
	// keyed by cell. Mirrors pulse together with their originals.
	pulse       map[model.Pos]float64
	bannerAlpha float64
	wasOver     bool
}

func NewGame(m *model.Model) *Game {
	return &Game{
		Model:  m,
		Layout: Layout{Size: m.Cfg.Size},
		Tweens: make(map[*gween.Tween]Action),
		pulse:  make(map[model.Pos]float64),
	}
}

func (g *Game) update(screen *ebiten.Image) error {
	for t, a := range g.Tweens {
		curr, finished := t.Update(1.0 / 60)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			for _, next := range a.nexts {
				next(g)
			}
			delete(g.Tweens, t)
		}
	}

	if g.ShowRules {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			if g.rulesCloseRect().contains(x, y) {
				g.ShowRules = false
			}
		}
		if ebiten.IsDrawingSkipped() {
			return nil
		}
		g.draw(screen)
		g.drawRules(screen)
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.resetGame()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.handleClick(x, y)
	}

	if g.Model.GameOver && !g.wasOver {
		g.wasOver = true
		g.startBanner()
		log.Infof("end-to-end entanglement after %d actions", g.Model.Actions)
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	g.draw(screen)
	return nil
}

// handleClick is the input-mapper half of a turn: pixel to cell, cell to
// engine intent. Everything the engine rejects just does nothing here too.
func (g *Game) handleClick(x, y int) {
	p, ok := g.Layout.CellAt(x, y)
	if !ok {
		return
	}
	log.Debugf("click (%d,%d) %s", p.Row+1, p.Col+1, g.Model.Cfg.ClassOf(p).Name())
	logged := len(g.Model.Log)
	g.Model.ActivateCell(p)
	for _, entry := range g.Model.Log[logged:] {
		log.Info(entry)
	}
	if len(g.Model.Log) > logged &&
		strings.HasPrefix(g.Model.Log[len(g.Model.Log)-1], "Entangle") &&
		g.Model.Occupied(p) {
		g.startPulse(p)
		g.startPulse(p.Mirror())
	}
}

func (g *Game) resetGame() {
	log.Printf("reset after %d actions", g.Model.Actions)
	g.Model.Reset()
	g.Tweens = make(map[*gween.Tween]Action)
	g.pulse = make(map[model.Pos]float64)
	g.bannerAlpha = 0
	g.wasOver = false
}

// startPulse briefly overshoots the dot scale and settles back.
func (g *Game) startPulse(p model.Pos) {
	up := gween.New(1, 1.35, 0.12, ease.OutQuad)
	a := Action{onChange: func(v float32) { g.pulse[p] = float64(v) }}
	down := a.next(gween.New(1.35, 1, 0.2, ease.InQuad))
	down.onChange = func(v float32) { g.pulse[p] = float64(v) }
	down.addOnFinish(func() { delete(g.pulse, p) })
	g.Tweens[up] = a
}

func (g *Game) startBanner() {
	t := gween.New(0, 1, 1.2, ease.OutQuad)
	g.Tweens[t] = Action{onChange: func(v float32) { g.bannerAlpha = float64(v) }}
}
