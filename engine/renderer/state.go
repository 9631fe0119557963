package renderer

import (
	"image/color"
	m "math"
)

const DefaultLineWidth = 1.0

// State holds the drawing state shared by Surface implementations. Embed it to
// get the state setters and path construction for free.
type State struct {
	lineWidth   float64
	strokeColor color.Color
	fillColor   color.Color
	path        Path
}

func NewState() State {
	return State{
		lineWidth:   DefaultLineWidth,
		strokeColor: color.Black,
		fillColor:   color.Black,
	}
}

// SetLineWidth ignores zero, negative, infinite and NaN values.
func (s *State) SetLineWidth(width float64) {
	if width <= 0 || m.IsInf(width, 0) || m.IsNaN(width) {
		return
	}
	s.lineWidth = width
}

func (s *State) LineWidth() float64 {
	return s.lineWidth
}

func (s *State) SetStrokeColor(c color.Color) {
	if c != nil {
		s.strokeColor = c
	}
}

func (s *State) StrokeColor() color.Color {
	return s.strokeColor
}

func (s *State) SetFillColor(c color.Color) {
	if c != nil {
		s.fillColor = c
	}
}

func (s *State) FillColor() color.Color {
	return s.fillColor
}

func (s *State) BeginPath() {
	s.path.Reset()
}

func (s *State) MoveTo(x, y float64) {
	s.path.MoveTo(x, y)
}

func (s *State) LineTo(x, y float64) {
	s.path.LineTo(x, y)
}

func (s *State) ClosePath() {
	s.path.Close()
}

// CurrentPath returns the path built since the last BeginPath.
func (s *State) CurrentPath() *Path {
	return &s.path
}
