package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ikrashahmed/taazamart/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Anything unrecognised is treated as an internal failure.
func respondServiceError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return apiError(c, fiber.StatusBadRequest, validationErr.Message)
	}

	var conflictErr *services.ConflictError
	if errors.As(err, &conflictErr) {
		return apiError(c, fiber.StatusConflict, conflictErr.Message)
	}

	var throttledErr *services.ThrottledError
	if errors.As(err, &throttledErr) {
		return apiError(c, fiber.StatusTooManyRequests, throttledErr.Error())
	}

	var notFoundErr *services.NotFoundError
	if errors.As(err, &notFoundErr) {
		return apiError(c, fiber.StatusNotFound, notFoundErr.Message)
	}

	var credentialsErr *services.InvalidCredentialsError
	if errors.As(err, &credentialsErr) {
		return apiError(c, fiber.StatusUnauthorized, credentialsErr.Error())
	}

	var unauthenticatedErr *services.UnauthenticatedError
	if errors.As(err, &unauthenticatedErr) {
		return apiError(c, fiber.StatusUnauthorized, unauthenticatedErr.Error())
	}

	var unavailableErr *services.StoreUnavailableError
	if errors.As(err, &unavailableErr) {
		return apiError(c, fiber.StatusServiceUnavailable, "service temporarily unavailable")
	}

	var persistenceErr *services.OrderPersistenceError
	if errors.As(err, &persistenceErr) {
		return apiError(c, fiber.StatusInternalServerError, "failed to save order")
	}

	return apiError(c, fiber.StatusInternalServerError, "internal error")
}

func respondListError(c *fiber.Ctx, err error) error {
	return respondServiceError(c, &services.StoreUnavailableError{Err: err})
}
