package objects

import (
	"github.com/spaghettifunk/easel/engine/math"
	"github.com/spaghettifunk/easel/engine/renderer"
)

// Entity is anything the application updates and renders every frame.
type Entity interface {
	// Update advances the entity by delta milliseconds.
	Update(delta float64)
	// Render draws the entity. position is the entity's current position; a
	// variant is free to ignore it and draw at fixed coordinates.
	Render(surface renderer.Surface, position math.Vec3)
	// Pos returns the current position.
	Pos() math.Vec3
}
