package payment

import (
	"os"

	"arenapay/database"
	"arenapay/helpers"
	"arenapay/models"
	"arenapay/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type InitiateRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func Initiate(c *fiber.Ctx) error {
	var req InitiateRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}

	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_USER_SESSION")
	}

	result, err := services.InitiatePayment(c.Context(), database.DB, services.MinTopupAmount(), services.InitiateRequest{
		UserUID: user.UID,
		Amount:  req.Amount,
		BaseURL: siteURL(),
	})
	if err != nil {
		return helpers.JSONFromError(c, err)
	}

	return helpers.JSONSuccess(c, "Payment initiated", result)
}

func siteURL() string {
	if v := os.Getenv("SITE_URL"); v != "" {
		return v
	}
	return "http://localhost:3000"
}
