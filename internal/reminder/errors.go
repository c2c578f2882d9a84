package reminder

import "errors"

var (
	ErrNotFound       = errors.New("reminder not found")
	ErrArchived       = errors.New("reminder is archived")
	ErrNotArchived    = errors.New("reminder is not archived")
	ErrInvalidFilter  = errors.New("invalid status filter")
	ErrInvalidPayload = errors.New("invalid payload")
)
