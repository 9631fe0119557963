package renderer

import "image/color"

// Surface is the 2D drawing context entities render into. It follows the
// immediate mode model of an HTML canvas: state setters affect every
// subsequent draw call, and paths are built with BeginPath/MoveTo/LineTo and
// painted with Stroke.
type Surface interface {
	// Size returns the pixel dimensions of the surface.
	Size() (width, height int)
	// SetSize resizes the surface. Resizing discards everything drawn so far.
	SetSize(width, height int)

	SetLineWidth(width float64)
	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)

	StrokeRect(x, y, width, height float64)
	FillRect(x, y, width, height float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Stroke()

	// ClearRect makes every pixel in the rectangle fully transparent.
	ClearRect(x, y, width, height float64)
}
