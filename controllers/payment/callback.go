package payment

import (
	"arenapay/database"
	"arenapay/models"
	"arenapay/services"

	"github.com/gofiber/fiber/v2"
)

type callbackParams struct {
	TransactionID string `query:"transaction_id" form:"transaction_id" json:"transaction_id"`
	TranID        string `query:"tran_id" form:"tran_id" json:"tran_id"`
	Status        string `query:"status" form:"status" json:"status"`
}

// Callback handles the browser redirect (and provider webhook) after a
// checkout. The status parameter is only a hint; a success hint still
// goes through server-side verification before anything is credited.
func Callback(c *fiber.Ctx) error {
	var params callbackParams
	if c.Method() == fiber.MethodGet {
		if err := c.QueryParser(&params); err != nil {
			return c.Redirect(siteURL()+"/payment/fail", fiber.StatusFound)
		}
	} else {
		if err := c.BodyParser(&params); err != nil {
			return c.Redirect(siteURL()+"/payment/fail", fiber.StatusFound)
		}
	}

	transactionID := params.TransactionID
	if transactionID == "" {
		transactionID = params.TranID
	}
	if transactionID == "" {
		return c.Redirect(siteURL()+"/payment/fail", fiber.StatusFound)
	}

	order, err := services.FinalizeOrder(c.Context(), database.DB, transactionID, params.Status)
	if err != nil && order == nil {
		return c.Redirect(siteURL()+"/payment/fail", fiber.StatusFound)
	}

	switch order.Status {
	case models.OrderCompleted:
		return c.Redirect(siteURL()+"/payment/success", fiber.StatusFound)
	case models.OrderCancelled:
		return c.Redirect(siteURL()+"/payment/cancel", fiber.StatusFound)
	default:
		return c.Redirect(siteURL()+"/payment/fail", fiber.StatusFound)
	}
}
