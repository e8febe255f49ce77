package admin

import (
	"arenapay/database"
	"arenapay/helpers"
	"arenapay/models"
	"arenapay/services"

	"github.com/gofiber/fiber/v2"
)

func ListTopupRequests(c *fiber.Ctx) error {
	status := c.Query("status", models.TopupRequestPending)

	var requests []models.TopupRequest
	if err := database.DB.
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&requests).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "FAILED_TO_FETCH_REQUESTS")
	}
	return helpers.JSONSuccess(c, "Top-up requests fetched", requests)
}

type ProcessRequestBody struct {
	Action string `json:"action"` // approve | reject
}

func ProcessTopupRequest(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_REQUEST_ID")
	}

	var body ProcessRequestBody
	if err := c.BodyParser(&body); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if body.Action != "approve" && body.Action != "reject" {
		return helpers.JSONError(c, fiber.StatusBadRequest, "ACTION_MUST_BE_APPROVE_OR_REJECT")
	}

	request, err := services.ProcessTopupRequest(database.DB, uint(id), body.Action == "approve")
	if err != nil {
		return helpers.JSONFromError(c, err)
	}

	return helpers.JSONSuccess(c, "Top-up request processed", request)
}
