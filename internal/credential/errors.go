package credential

import "errors"

var (
	ErrInvalidSlot = errors.New("unknown credential slot")
	ErrEmptyKey    = errors.New("credential key is empty")
)
