package game

import "errors"

var (
	ErrUnknownMode     = errors.New("unknown mode")
	ErrUnknownScheme   = errors.New("unknown speed scheme")
	ErrNotRunning      = errors.New("game is not running")
	ErrSpeedLocked     = errors.New("speed is fixed in this mode")
	ErrStageOutOfRange = errors.New("speed stage out of range")
)
