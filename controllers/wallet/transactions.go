package wallet

import (
	"arenapay/database"
	"arenapay/helpers"
	"arenapay/models"

	"github.com/gofiber/fiber/v2"
)

func Transactions(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_USER_SESSION")
	}

	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}

	var transactions []models.WalletTransaction
	if err := database.DB.
		Where("user_uid = ?", user.UID).
		Order("created_at DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "FAILED_TO_FETCH_TRANSACTIONS")
	}

	return helpers.JSONSuccess(c, "Transactions fetched", transactions)
}
