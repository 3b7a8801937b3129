package main

import (
	"image"

	"github.com/hajimehoshi/ebiten"
)

// Nine stretches a 9-patch source image over an arbitrary rectangle: the
// corners keep their scale, the edges and center stretch. cuts are the
// patch boundaries, shared by both axes (square source).
type Nine struct {
	img            *ebiten.Image
	cuts           [4]int
	alpha          float64
	R, G, B, Scale float64

	x, y, width, height int
}

func NewNine(img *ebiten.Image, cuts [4]int, scale float64) *Nine {
	return &Nine{
		img:   img,
		cuts:  cuts,
		alpha: 1,
		R:     1, G: 1, B: 1,
		Scale: scale,
	}
}

func (n *Nine) SetRect(x, y, width, height int) {
	n.x = x
	n.y = y
	n.width = width
	n.height = height
}

func (n *Nine) Draw(screen *ebiten.Image) {
	xs := n.edges(n.x, n.width)
	ys := n.edges(n.y, n.height)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			src := image.Rect(n.cuts[i], n.cuts[j], n.cuts[i+1], n.cuts[j+1])
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(
				(xs[i+1]-xs[i])/float64(n.cuts[i+1]-n.cuts[i]),
				(ys[j+1]-ys[j])/float64(n.cuts[j+1]-n.cuts[j]))
			op.GeoM.Translate(xs[i], ys[j])
			op.ColorM.Scale(n.R, n.G, n.B, n.alpha)
			screen.DrawImage(n.img.SubImage(src).(*ebiten.Image), op)
		}
	}
}

// edges maps the source cut positions onto the destination span: fixed
// corner widths at the ends, the remainder for the stretched middle.
func (n *Nine) edges(start, length int) [4]float64 {
	var e [4]float64
	e[0] = float64(start)
	e[1] = e[0] + n.Scale*float64(n.cuts[1]-n.cuts[0])
	e[3] = float64(start + length)
	e[2] = e[3] - n.Scale*float64(n.cuts[3]-n.cuts[2])
	return e
}
