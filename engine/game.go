package engine

import (
	"github.com/spaghettifunk/easel/engine/objects"
)

// Game is the embedding scenario: its config and the hook that supplies the
// entities the application starts with.
type Game struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnInitObjects     InitObjects
}

type InitObjects func() []objects.Entity
