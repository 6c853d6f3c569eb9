package careneed

import "errors"

var (
	ErrItemNotFound         = errors.New("care need item not found")
	ErrPersonRequired       = errors.New("person id is required")
	ErrNameRequired         = errors.New("item name is required")
	ErrInvalidIntervalType  = errors.New("invalid recurrence interval type")
	ErrInvalidIntervalValue = errors.New("recurrence interval value must be positive")
	ErrMissingStartDate     = errors.New("recurrence start date is required")
	ErrInvalidTimeWindow    = errors.New("invalid time window")
	ErrBudgetYearOutOfRange = errors.New("budget year outside the item's date span")
)
