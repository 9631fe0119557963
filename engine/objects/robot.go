package objects

import (
	"github.com/spaghettifunk/easel/engine/math"
	"github.com/spaghettifunk/easel/engine/renderer"
)

// Robot draws a house outline at fixed canvas coordinates. Its own position
// and motion do not affect where it is drawn.
type Robot struct {
	*GameObject
}

func NewRobot(position math.Vec3) *Robot {
	return &Robot{GameObject: NewGameObject(position)}
}

func (r *Robot) Render(s renderer.Surface, _ math.Vec3) {
	s.SetLineWidth(10)

	// Wall
	s.StrokeRect(75, 140, 150, 110)

	// Door
	s.FillRect(130, 190, 40, 60)

	// Roof
	s.BeginPath()
	s.MoveTo(50, 140)
	s.LineTo(150, 60)
	s.LineTo(250, 140)
	s.ClosePath()
	s.Stroke()
}
