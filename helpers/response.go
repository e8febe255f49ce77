package helpers

import (
	"errors"

	"arenapay/services"

	"github.com/gofiber/fiber/v2"
)

func JSONSuccess(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func JSONError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"data":    nil,
	})
}

// JSONFromError maps the service error taxonomy onto HTTP statuses.
func JSONFromError(c *fiber.Ctx, err error) error {
	var (
		validation *services.ValidationError
		config     *services.ConfigurationError
		upstream   *services.UpstreamError
		notFound   *services.NotFoundError
		processed  *services.AlreadyProcessedError
	)

	switch {
	case errors.As(err, &processed):
		// Idempotent no-op, not a failure.
		return JSONSuccess(c, processed.Error(), nil)
	case errors.As(err, &validation):
		return JSONError(c, fiber.StatusBadRequest, validation.Error())
	case errors.As(err, &notFound):
		return JSONError(c, fiber.StatusNotFound, notFound.Error())
	case errors.As(err, &config):
		return JSONError(c, fiber.StatusInternalServerError, config.Error())
	case errors.As(err, &upstream):
		return JSONError(c, fiber.StatusBadGateway, upstream.Error())
	default:
		return JSONError(c, fiber.StatusInternalServerError, "An internal server error occurred")
	}
}
