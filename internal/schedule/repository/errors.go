package repository

import "errors"

var (
	ErrFailedToUpsert = errors.New("failed to upsert task")
	ErrFailedToGet    = errors.New("failed to get task")
	ErrFailedToList   = errors.New("failed to list tasks")
	ErrFailedToUpdate = errors.New("failed to update task")
)
