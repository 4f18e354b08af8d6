package attachment

import "errors"

// Causes wrapped in serrors.ErrBadRequest when an upload is refused.
var (
	ErrInvalidType   = errors.New("invalid attachment type")
	ErrInvalidFormat = errors.New("unsupported file format")
	ErrTooLarge      = errors.New("file too large")
)
