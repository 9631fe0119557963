package objects

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/easel/engine/core"
	"github.com/spaghettifunk/easel/engine/math"
)

// Integrator turns a motion vector and a frame delta into the next position.
type Integrator interface {
	Integrate(position, motion math.Vec3, delta float64) math.Vec3
	Name() string
}

const (
	IntegratorSnap       = "snap"
	IntegratorAccumulate = "accumulate"
)

// Snap replaces the position with motion*delta on every frame. The previous
// position is discarded, so an entity never travels further than one frame's
// worth of motion from the origin.
type Snap struct{}

func (Snap) Integrate(_, motion math.Vec3, delta float64) math.Vec3 {
	return motion.MulScalar(delta)
}

func (Snap) Name() string { return IntegratorSnap }

// Accumulate adds motion*delta to the position, integrating velocity over time.
type Accumulate struct{}

func (Accumulate) Integrate(position, motion math.Vec3, delta float64) math.Vec3 {
	return position.Add(motion.MulScalar(delta))
}

func (Accumulate) Name() string { return IntegratorAccumulate }

// IntegratorByName resolves the names used in the application config.
func IntegratorByName(name string) (Integrator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", IntegratorSnap:
		return Snap{}, nil
	case IntegratorAccumulate:
		return Accumulate{}, nil
	}
	return nil, fmt.Errorf("%w: %q", core.ErrUnknownIntegrator, name)
}
