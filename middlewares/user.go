package middlewares

import (
	"arenapay/database"
	"arenapay/helpers"
	"arenapay/models"

	"github.com/gofiber/fiber/v2"
)

func UserAuthMiddleware(c *fiber.Ctx) error {
	apiKey := c.Get("X-API-Key")
	if apiKey == "" {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "API_KEY_REQUIRED")
	}

	var user models.User
	if err := database.DB.Where("api_key = ? AND is_active = ?", apiKey, true).First(&user).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_API_KEY")
	}

	c.Locals("user", user)
	return c.Next()
}
