package main

import (
	"bytes"
	"flag"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"

	"github.com/chrishalkias/qonnect/model"
)

var (
	dotImage   *ebiten.Image
	panelNine  *Nine
	titleFont  font.Face
	textFont   font.Face
	bannerFont font.Face
)

func loadAssets() error {
	file, err := ebitenutil.OpenFile("Teko-Light.ttf")
	if err != nil {
		return err
	}
	defer file.Close()
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(file); err != nil {
		return err
	}
	tt, err := truetype.Parse(buf.Bytes())
	if err != nil {
		return err
	}

	const dpi = 72
	titleFont = truetype.NewFace(tt, &truetype.Options{Size: 38, DPI: dpi, Hinting: font.HintingFull})
	textFont = truetype.NewFace(tt, &truetype.Options{Size: 18, DPI: dpi, Hinting: font.HintingFull})
	bannerFont = truetype.NewFace(tt, &truetype.Options{Size: 50, DPI: dpi, Hinting: font.HintingFull})

	dotImage, _, err = ebitenutil.NewImageFromFile("circle.png", ebiten.FilterDefault)
	if err != nil {
		return err
	}

	panelImg, _, err := ebitenutil.NewImageFromFile("panel.png", ebiten.FilterDefault)
	if err != nil {
		return err
	}
	panelNine = NewNine(panelImg, [4]int{0, 56, 57, 112}, .3)
	return nil
}

func main() {
	size := flag.Int("n", 7, "number of repeater nodes (the grid is n x n)")
	lifetime := flag.Int("tau", 30, "link lifetime, in actions")
	createProb := flag.Float64("pe", 0.8, "entanglement generation probability")
	mergeProb := flag.Float64("ps", 0.8, "entanglement swap probability")
	mergeEnabled := flag.Bool("merge", true, "allow entanglement swapping")
	showRules := flag.Bool("rules", true, "show the rules popup on start")
	flag.Parse()

	cfg, err := model.NewConfig(*size, *lifetime, *createProb, *mergeProb, *mergeEnabled)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("starting qonnect n=%d tau=%d pe=%v ps=%v", *size, *lifetime, *createProb, *mergeProb)

	if err := loadAssets(); err != nil {
		log.Fatal(err)
	}

	game := NewGame(model.New(cfg))
	game.ShowRules = *showRules

	w, h := game.Layout.ScreenSize()
	if err := ebiten.Run(game.update, w, h, 1, "Qonnect"); err != nil {
		log.Fatal(err)
	}
}
