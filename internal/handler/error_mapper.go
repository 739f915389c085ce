package handler

import (
	"errors"
	"log/slog"

	"github.com/fantravel1/cheapretreats-sub001/internal/model"
	"github.com/fantravel1/cheapretreats-sub001/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrRetreatNotFound):
		return model.NewNotFoundError("retreat")
	case errors.Is(err, service.ErrLocationNotFound):
		return model.NewNotFoundError("location")
	case errors.Is(err, service.ErrTypeNotFound):
		return model.NewNotFoundError("retreat type")
	case errors.Is(err, service.ErrNeedNotFound):
		return model.NewNotFoundError("need category")
	case errors.Is(err, service.ErrTierNotFound):
		return model.NewNotFoundError("price tier")

	// ===== Bad Request → 400 =====
	case errors.Is(err, service.ErrInvalidSort):
		return model.NewBadRequestError(err.Error())

	// ===== Unavailable → 503 =====
	case errors.Is(err, service.ErrCatalogNotLoaded):
		return model.NewUnavailableError("the catalog has not been loaded yet")

	default:
		slog.Error("unmapped service error", slog.String("error", err.Error()))
		return model.NewInternalError("")
	}
}
