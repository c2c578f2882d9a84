package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToCount  = errors.New("failed to count records")
	ErrFailedToUpdate = errors.New("failed to update record")
)
