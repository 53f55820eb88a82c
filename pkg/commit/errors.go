package commit

import (
	"errors"
)

var (
	ErrUnknownType      = errors.New("unknown commit type")
	ErrEmptyDescription = errors.New("commit description must not be empty")
)
