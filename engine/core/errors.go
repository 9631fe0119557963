package core

import (
	"errors"
)

var (
	ErrUnknownIntegrator = errors.New("unknown integration strategy")
	ErrUnknownLogLevel   = errors.New("unknown log level")
	ErrInvalidConfig     = errors.New("invalid application config")
	ErrInvalidInterval   = errors.New("frame interval must be positive")
)
