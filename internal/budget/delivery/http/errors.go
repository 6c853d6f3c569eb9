package http

import (
	"care-coordination/internal/budget"
	pkgErrors "care-coordination/pkg/errors"
)

var errWrongQuery = pkgErrors.NewHTTPError(400, "Wrong query")

func (h *handler) mapError(err error) error {
	switch err {
	case budget.ErrPersonRequired:
		return pkgErrors.NewHTTPError(400, "Person is required")
	case budget.ErrInvalidYear:
		return pkgErrors.NewHTTPError(400, "Invalid year")
	case budget.ErrPersonNotVisible:
		return pkgErrors.NewHTTPError(404, "Person not found")
	}
	return err
}
