package wallet

import (
	"arenapay/database"
	"arenapay/helpers"
	"arenapay/models"
	"arenapay/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type TopupRequestBody struct {
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	SenderNumber  string          `json:"sender_number"`
	TransactionID string          `json:"transaction_id"`
}

// SubmitTopupRequest records a manual deposit claim. It is credited only
// after an admin approves it.
func SubmitTopupRequest(c *fiber.Ctx) error {
	var body TopupRequestBody
	if err := c.BodyParser(&body); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}

	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_USER_SESSION")
	}

	request, err := services.SubmitTopupRequest(database.DB, services.MinTopupAmount(), services.TopupRequestInput{
		UserUID:       user.UID,
		Amount:        body.Amount,
		Method:        body.Method,
		SenderNumber:  body.SenderNumber,
		TransactionID: body.TransactionID,
	})
	if err != nil {
		return helpers.JSONFromError(c, err)
	}

	return helpers.JSONSuccess(c, "Top-up request submitted", request)
}

func TopupMethods(c *fiber.Ctx) error {
	var methods []models.TopupMethod
	if err := database.DB.
		Where("status = ?", models.TopupMethodActive).
		Order("name").
		Find(&methods).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "FAILED_TO_FETCH_METHODS")
	}

	return helpers.JSONSuccess(c, "Top-up methods fetched", methods)
}
