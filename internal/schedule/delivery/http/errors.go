package http

import (
	"care-coordination/internal/schedule"
	pkgErrors "care-coordination/pkg/errors"
)

var (
	errWrongBody  = pkgErrors.NewHTTPError(400, "Wrong body")
	errWrongQuery = pkgErrors.NewHTTPError(400, "Wrong query")
)

func (h *handler) mapError(err error) error {
	switch err {
	case schedule.ErrItemNotFound:
		return pkgErrors.NewHTTPError(404, "Care need not found")
	case schedule.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "Task not found")
	case schedule.ErrItemNotRecurring:
		return pkgErrors.NewHTTPError(400, "Item does not recur")
	case schedule.ErrTaskNotCompletable:
		return pkgErrors.NewHTTPError(409, "Task cannot be completed from its current status")
	case schedule.ErrInvalidWindow:
		return pkgErrors.NewHTTPError(400, "Invalid window")
	}
	return err
}
