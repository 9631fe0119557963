// Package raster implements renderer.Surface in software on an *image.RGBA.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/spaghettifunk/easel/engine/math"
	"github.com/spaghettifunk/easel/engine/renderer"
	"golang.org/x/image/vector"
)

type Surface struct {
	renderer.State

	img  *image.RGBA
	rast *vector.Rasterizer
}

func New(width, height int) *Surface {
	s := &Surface{
		State: renderer.NewState(),
		rast:  vector.NewRasterizer(0, 0),
	}
	s.SetSize(width, height)
	return s
}

func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// SetSize replaces the backing image, which leaves every pixel transparent.
func (s *Surface) SetSize(width, height int) {
	s.img = image.NewRGBA(image.Rect(0, 0, math.NonNegative(width), math.NonNegative(height)))
}

// Image returns the backing image. It is replaced by SetSize.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// At returns the pixel at (x, y).
func (s *Surface) At(x, y int) color.RGBA {
	return s.img.RGBAAt(x, y)
}

func (s *Surface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

func (s *Surface) FillRect(x, y, width, height float64) {
	if !s.begin() {
		return
	}
	s.rect(x, y, width, height, false)
	s.paint(s.FillColor())
}

// StrokeRect draws a ring centred on the rectangle outline: the outer edge is
// wound one way and the inner edge the other so the centre cancels out.
func (s *Surface) StrokeRect(x, y, width, height float64) {
	if !s.begin() {
		return
	}
	half := s.LineWidth() / 2
	s.rect(x-half, y-half, width+2*half, height+2*half, false)
	if width > s.LineWidth() && height > s.LineWidth() {
		s.rect(x+half, y+half, width-2*half, height-2*half, true)
	}
	s.paint(s.StrokeColor())
}

// Stroke paints every segment of the current path as a quad of the current
// line width.
func (s *Surface) Stroke() {
	segments := s.CurrentPath().Segments()
	if len(segments) == 0 || !s.begin() {
		return
	}
	half := s.LineWidth() / 2
	for _, seg := range segments {
		dir := seg.To.Sub(seg.From).Normalized()
		if dir.Length() == 0 {
			continue
		}
		n := math.NewVec2(-dir.Y, dir.X).MulScalar(half)
		a, b := seg.From.Add(n), seg.To.Add(n)
		c, d := seg.To.Sub(n), seg.From.Sub(n)
		s.rast.MoveTo(float32(a.X), float32(a.Y))
		s.rast.LineTo(float32(b.X), float32(b.Y))
		s.rast.LineTo(float32(c.X), float32(c.Y))
		s.rast.LineTo(float32(d.X), float32(d.Y))
		s.rast.ClosePath()
	}
	s.paint(s.StrokeColor())
}

func (s *Surface) ClearRect(x, y, width, height float64) {
	r := image.Rect(int(x), int(y), int(x+width), int(y+height)).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.Transparent, image.Point{}, draw.Src)
}

func (s *Surface) begin() bool {
	b := s.img.Bounds()
	if b.Empty() {
		return false
	}
	s.rast.Reset(b.Dx(), b.Dy())
	return true
}

func (s *Surface) rect(x, y, width, height float64, reverse bool) {
	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+width), float32(y+height)
	s.rast.MoveTo(x0, y0)
	if reverse {
		s.rast.LineTo(x0, y1)
		s.rast.LineTo(x1, y1)
		s.rast.LineTo(x1, y0)
	} else {
		s.rast.LineTo(x1, y0)
		s.rast.LineTo(x1, y1)
		s.rast.LineTo(x0, y1)
	}
	s.rast.ClosePath()
}

func (s *Surface) paint(c color.Color) {
	s.rast.DrawOp = draw.Over
	s.rast.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{})
}
