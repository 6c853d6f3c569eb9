package schedule

import "errors"

var (
	ErrItemNotFound       = errors.New("care-need item not found")
	ErrItemNotRecurring   = errors.New("item rule does not recur")
	ErrTaskNotFound       = errors.New("task not found")
	ErrTaskNotCompletable = errors.New("task is not in a completable status")
	ErrInvalidWindow      = errors.New("window end precedes window start")
)
