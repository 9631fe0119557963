package testbed

import (
	"github.com/spaghettifunk/easel/engine"
	"github.com/spaghettifunk/easel/engine/core"
	"github.com/spaghettifunk/easel/engine/math"
	"github.com/spaghettifunk/easel/engine/objects"
)

// TestGame is the default scenario: a single robot at the origin.
type TestGame struct {
	*engine.Game
}

type gameState struct {
	robot *objects.Robot
}

func NewTestGame(config *engine.ApplicationConfig) *TestGame {
	if config == nil {
		config = engine.DefaultApplicationConfig()
	}
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: config,
			State:             &gameState{},
		},
	}

	tg.FnInitObjects = tg.InitObjects

	return tg
}

func (g *TestGame) InitObjects() []objects.Entity {
	core.LogDebug("TestGame InitObjects fn....")

	state := g.State.(*gameState)
	state.robot = objects.NewRobot(math.NewVec3Zero())

	return []objects.Entity{state.robot}
}

// Robot returns the robot once InitObjects has run.
func (g *TestGame) Robot() *objects.Robot {
	return g.State.(*gameState).robot
}
