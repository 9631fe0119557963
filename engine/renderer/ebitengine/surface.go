// Package ebitengine implements renderer.Surface on top of an offscreen
// *ebiten.Image that is presented to the screen once per frame.
package ebitengine

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spaghettifunk/easel/engine/renderer"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

type Surface struct {
	renderer.State

	canvas        *ebiten.Image
	width, height int
	antialias     bool

	vertices []ebiten.Vertex
	indices  []uint16
}

func New(width, height int) *Surface {
	s := &Surface{
		State:     renderer.NewState(),
		antialias: true,
	}
	s.SetSize(width, height)
	return s
}

func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// SetSize allocates a fresh canvas. A zero sized surface has no canvas and
// ignores every draw call.
func (s *Surface) SetSize(width, height int) {
	if s.canvas != nil {
		s.canvas.Deallocate()
		s.canvas = nil
	}
	s.width, s.height = max(width, 0), max(height, 0)
	if s.width > 0 && s.height > 0 {
		s.canvas = ebiten.NewImage(s.width, s.height)
	}
}

func (s *Surface) SetAntialias(enabled bool) {
	s.antialias = enabled
}

func (s *Surface) FillRect(x, y, width, height float64) {
	if s.canvas == nil {
		return
	}
	vector.DrawFilledRect(s.canvas, float32(x), float32(y), float32(width), float32(height), s.FillColor(), s.antialias)
}

func (s *Surface) StrokeRect(x, y, width, height float64) {
	if s.canvas == nil {
		return
	}
	vector.StrokeRect(s.canvas, float32(x), float32(y), float32(width), float32(height), float32(s.LineWidth()), s.StrokeColor(), s.antialias)
}

// Stroke tessellates the current path with miter joins, the canvas default.
func (s *Surface) Stroke() {
	if s.canvas == nil {
		return
	}
	subpaths := s.CurrentPath().Subpaths()
	if len(subpaths) == 0 {
		return
	}

	var path vector.Path
	for _, sp := range subpaths {
		path.MoveTo(float32(sp.Points[0].X), float32(sp.Points[0].Y))
		for _, p := range sp.Points[1:] {
			path.LineTo(float32(p.X), float32(p.Y))
		}
		if sp.Closed {
			path.Close()
		}
	}

	s.vertices, s.indices = path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], &vector.StrokeOptions{
		Width:      float32(s.LineWidth()),
		LineJoin:   vector.LineJoinMiter,
		MiterLimit: 10,
	})

	r, g, b, a := s.StrokeColor().RGBA()
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = float32(r) / 0xffff
		s.vertices[i].ColorG = float32(g) / 0xffff
		s.vertices[i].ColorB = float32(b) / 0xffff
		s.vertices[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = s.antialias
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	s.canvas.DrawTriangles(s.vertices, s.indices, whiteSubImage, op)
}

func (s *Surface) ClearRect(x, y, width, height float64) {
	if s.canvas == nil {
		return
	}
	r := image.Rect(int(x), int(y), int(x+width), int(y+height)).Intersect(s.canvas.Bounds())
	if r.Empty() {
		return
	}
	if r == s.canvas.Bounds() {
		s.canvas.Clear()
		return
	}
	s.canvas.SubImage(r).(*ebiten.Image).Clear()
}

// Present copies the canvas onto the screen image handed to ebiten.Game.Draw.
func (s *Surface) Present(screen *ebiten.Image) {
	if s.canvas == nil {
		return
	}
	screen.DrawImage(s.canvas, nil)
}
