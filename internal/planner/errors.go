package planner

import "errors"

var (
	ErrInvalidSlot  = errors.New("slot end must be after start")
	ErrInvalidClock = errors.New("clock time must be HH:MM")
)
