package wallet

import (
	"arenapay/helpers"
	"arenapay/models"

	"github.com/gofiber/fiber/v2"
)

func Balance(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_USER_SESSION")
	}

	return helpers.JSONSuccess(c, "Balance fetched", fiber.Map{
		"uid":             user.UID,
		"balance":         user.Balance,
		"pending_balance": user.PendingBalance,
	})
}
