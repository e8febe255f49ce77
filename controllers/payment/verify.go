package payment

import (
	"arenapay/database"
	"arenapay/helpers"
	"arenapay/services"

	"github.com/gofiber/fiber/v2"
)

type VerifyRequest struct {
	TransactionID string `json:"transaction_id"`
}

// Verify finalizes an order on demand and returns the stored provider
// payload. Calling it repeatedly is a no-op once the order is terminal.
func Verify(c *fiber.Ctx) error {
	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if req.TransactionID == "" {
		return helpers.JSONError(c, fiber.StatusBadRequest, "TRANSACTION_ID_REQUIRED")
	}

	order, err := services.FinalizeOrder(c.Context(), database.DB, req.TransactionID, "")
	if err != nil && order == nil {
		return helpers.JSONFromError(c, err)
	}

	return helpers.JSONSuccess(c, "Verification completed", fiber.Map{
		"transaction_id":   order.TransactionID,
		"status":           order.Status,
		"amount":           order.Amount,
		"gateway":          order.Gateway,
		"gateway_response": order.GatewayResponse,
	})
}
