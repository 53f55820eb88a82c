package gitops

import (
	"errors"
)

var ErrEmptyMessage = errors.New("commit message is empty")
