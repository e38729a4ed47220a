package rest

import (
	stderrors "errors"
	"net/http"

	"suprss/domain"
	"suprss/utils/errors"
	"suprss/utils/logger"

	"github.com/labstack/echo/v4"
)

// handleError converts errors to HTTP responses. Domain sentinels map onto
// their canonical error codes; anything else is wrapped as unknown.
func handleError(c echo.Context, err error, operation string) error {
	requestContext := map[string]any{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"remote_addr": c.Request().RemoteAddr,
		"request_id":  c.Response().Header().Get("X-Request-ID"),
	}

	var enrichedErr *errors.AppContextError

	var appErr *errors.AppContextError
	switch {
	case stderrors.As(err, &appErr):
		enrichedErr = errors.EnrichWithContext(appErr, "rest", "RESTHandler", operation, requestContext)

	case stderrors.Is(err, domain.ErrFeedNotFound):
		enrichedErr = errors.NewNotFoundError("feed not found", "rest", "RESTHandler", operation, requestContext)
	case stderrors.Is(err, domain.ErrArticleNotFound):
		enrichedErr = errors.NewNotFoundError("article not found", "rest", "RESTHandler", operation, requestContext)
	case stderrors.Is(err, domain.ErrCollectionNotFound):
		enrichedErr = errors.NewNotFoundError("collection not found", "rest", "RESTHandler", operation, requestContext)
	case stderrors.Is(err, domain.ErrForbidden):
		enrichedErr = errors.NewForbiddenError("insufficient permissions", "rest", "RESTHandler", operation, requestContext)
	case stderrors.Is(err, domain.ErrFeedInactive):
		enrichedErr = errors.NewInvalidStateError("feed is inactive", "rest", "RESTHandler", operation, requestContext)

	default:
		enrichedErr = errors.NewUnknownError("internal server error", "rest", "RESTHandler", operation, err, requestContext)
	}

	logger.Logger.Error("REST handler error",
		"error", enrichedErr.Error(),
		"error_code", enrichedErr.Code,
		"operation", enrichedErr.Operation,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"is_retryable", enrichedErr.IsRetryable(),
	)

	return c.JSON(enrichedErr.HTTPStatusCode(), enrichedErr.ToHTTPResponse())
}

// handleValidationError responds 400 for malformed or missing input.
func handleValidationError(c echo.Context, message, field string, value any) error {
	validationErr := errors.NewValidationError(
		message,
		"rest",
		"RESTHandler",
		"validateInput",
		map[string]any{
			"field":      field,
			"value":      value,
			"path":       c.Request().URL.Path,
			"method":     c.Request().Method,
			"request_id": c.Response().Header().Get("X-Request-ID"),
		},
	)

	logger.Logger.Error("REST validation error",
		"error", validationErr.Error(),
		"field", field,
		"path", c.Request().URL.Path,
	)
	return c.JSON(validationErr.HTTPStatusCode(), validationErr.ToHTTPResponse())
}

// currentUser pulls the authenticated user off the request context.
func currentUser(c echo.Context) (*domain.UserContext, error) {
	user, err := domain.GetUserFromContext(c.Request().Context())
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return user, nil
}
