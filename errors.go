package xlist

import (
	"errors"
)

var (
	// ErrOutOfBounds is returned by Insert, Get, Set and Swap when the
	// resolved index has no corresponding position in the list.
	ErrOutOfBounds = errors.New("xlist: index out of bounds")

	// ErrNoMemory is returned by Insert when node allocation fails.
	ErrNoMemory = errors.New("xlist: node allocation failed")
)
