package scalable

import "errors"

var (
	ErrInvalidArgument = errors.New("scalable: invalid argument")
	ErrUnknownPreset   = errors.New("scalable: unknown preset")
)
