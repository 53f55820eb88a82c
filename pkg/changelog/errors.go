package changelog

import (
	"errors"
)

var ErrMissingMarker = errors.New("changelog file does not contain the <!-- next-entries --> marker")
