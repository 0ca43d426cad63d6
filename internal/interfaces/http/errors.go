package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/eurocore-global/supplyhub-api/internal/application/dto"
	"github.com/eurocore-global/supplyhub-api/internal/domain"
)

// respondError maps domain errors to HTTP statuses.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnknownRole):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_ROLE", Message: err.Error()})
	case errors.Is(err, domain.ErrIdentityNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "IDENTITY_NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// advisoryStorage reports whether err is a persistence-write failure. Those
// are logged and swallowed: the in-memory state already holds the change, so
// the request still succeeds.
func advisoryStorage(err error) bool {
	var se *domain.StorageError
	if errors.As(err, &se) {
		log.Warn().Err(se).Str("key", se.Key).Msg("persistence write failed, in-memory state remains authoritative")
		return true
	}
	return false
}
