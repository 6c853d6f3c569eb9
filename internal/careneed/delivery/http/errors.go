package http

import (
	"care-coordination/internal/careneed"
	pkgErrors "care-coordination/pkg/errors"
)

var (
	errWrongBody  = pkgErrors.NewHTTPError(400, "Wrong body")
	errWrongQuery = pkgErrors.NewHTTPError(400, "Wrong query")
)

func (h *handler) mapError(err error) error {
	switch err {
	case careneed.ErrItemNotFound:
		return pkgErrors.NewHTTPError(404, "Care need not found")
	case careneed.ErrPersonRequired:
		return pkgErrors.NewHTTPError(400, "Person is required")
	case careneed.ErrNameRequired:
		return pkgErrors.NewHTTPError(400, "Name is required")
	case careneed.ErrInvalidIntervalType:
		return pkgErrors.NewHTTPError(400, "Invalid interval type")
	case careneed.ErrInvalidIntervalValue:
		return pkgErrors.NewHTTPError(400, "Interval value must be positive")
	case careneed.ErrMissingStartDate:
		return pkgErrors.NewHTTPError(400, "Start date is required")
	case careneed.ErrInvalidTimeWindow:
		return pkgErrors.NewHTTPError(400, "Invalid time window")
	case careneed.ErrBudgetYearOutOfRange:
		return pkgErrors.NewHTTPError(400, "Budget year outside the item's schedule")
	}
	return err
}
