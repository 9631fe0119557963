package objects

import (
	"github.com/google/uuid"
	"github.com/spaghettifunk/easel/engine/math"
	"github.com/spaghettifunk/easel/engine/renderer"
)

// DefaultDepth is the z assigned to objects created without one.
const DefaultDepth = 1.0

// GameObject is the positioned, movable base every entity embeds.
type GameObject struct {
	ID         uuid.UUID
	Position   math.Vec3
	Motion     math.Vec3
	Integrator Integrator
}

// NewGameObject places an object at position with no motion. A zero z is
// replaced with DefaultDepth.
func NewGameObject(position math.Vec3) *GameObject {
	if position.Z == 0 {
		position.Z = DefaultDepth
	}
	return &GameObject{
		ID:         uuid.New(),
		Position:   position,
		Integrator: Snap{},
	}
}

func (g *GameObject) Update(delta float64) {
	integrator := g.Integrator
	if integrator == nil {
		integrator = Snap{}
	}
	g.Position = integrator.Integrate(g.Position, g.Motion, delta)
}

// Render draws nothing. Variants embedding GameObject override it.
func (g *GameObject) Render(renderer.Surface, math.Vec3) {}

func (g *GameObject) Pos() math.Vec3 {
	return g.Position
}

// SetIntegrator swaps the motion strategy. Used by the application when the
// configured integration differs from the default.
func (g *GameObject) SetIntegrator(integrator Integrator) {
	g.Integrator = integrator
}
