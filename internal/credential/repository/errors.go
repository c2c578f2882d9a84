package repository

import "errors"

var (
	ErrFailedToLoad  = errors.New("failed to load credentials")
	ErrFailedToSave  = errors.New("failed to save credentials")
	ErrFailedToClear = errors.New("failed to clear credential")
)
