package objects

import (
	"image/color"

	"github.com/spaghettifunk/easel/engine/math"
	"github.com/spaghettifunk/easel/engine/renderer"
)

// Block is a filled rectangle drawn at the position it is given.
type Block struct {
	*GameObject
	Width, Height float64
	Color         color.Color
}

func NewBlock(position math.Vec3, width, height float64, c color.Color) *Block {
	return &Block{
		GameObject: NewGameObject(position),
		Width:      width,
		Height:     height,
		Color:      c,
	}
}

func (b *Block) Render(s renderer.Surface, position math.Vec3) {
	s.SetFillColor(b.Color)
	s.FillRect(position.X, position.Y, b.Width, b.Height)
}
