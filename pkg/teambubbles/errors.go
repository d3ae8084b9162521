package teambubbles

import (
	"errors"
)

var (
	ErrClosed        = errors.New("closed")
	ErrNotFound      = errors.New("not found")
	ErrInvalidTask   = errors.New("invalid task")
	ErrUnknownFormat = errors.New("unknown format")
	ErrUnknownLocale = errors.New("unknown locale")
)
