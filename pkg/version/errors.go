package version

import (
	"errors"
)

var (
	ErrNotAVersion = errors.New("not a semantic version")
	ErrUnknownBump = errors.New("unknown bump type")
)
