package admin

import (
	"errors"

	"arenapay/database"
	"arenapay/helpers"
	"arenapay/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ListGateways(c *fiber.Ctx) error {
	var settings []models.GatewaySettings
	if err := database.DB.Order("provider").Find(&settings).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "FAILED_TO_FETCH_GATEWAYS")
	}
	return helpers.JSONSuccess(c, "Gateways fetched", settings)
}

func CreateGateway(c *fiber.Ctx) error {
	var settings models.GatewaySettings
	if err := c.BodyParser(&settings); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if settings.Provider == "" {
		return helpers.JSONError(c, fiber.StatusBadRequest, "PROVIDER_REQUIRED")
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if settings.Enabled {
			if err := disableOthers(tx, 0); err != nil {
				return err
			}
		}
		return tx.Create(&settings).Error
	})
	if err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "FAILED_TO_SAVE_GATEWAY")
	}

	return helpers.JSONSuccess(c, "Gateway created", settings)
}

func UpdateGateway(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_GATEWAY_ID")
	}

	var settings models.GatewaySettings
	if err := database.DB.First(&settings, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JSONError(c, fiber.StatusNotFound, "GATEWAY_NOT_FOUND")
		}
		return helpers.JSONError(c, fiber.StatusInternalServerError, "FAILED_TO_FETCH_GATEWAY")
	}

	var updates models.GatewaySettings
	if err := c.BodyParser(&updates); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// Only one provider may be enabled at a time.
		if updates.Enabled {
			if err := disableOthers(tx, settings.ID); err != nil {
				return err
			}
		}
		return tx.Model(&settings).Select(
			"StoreID", "StorePassword", "AccessToken", "SignatureKey",
			"SuccessURL", "CancelURL", "FailURL", "WebhookURL", "Enabled",
		).Updates(updates).Error
	})
	if err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "FAILED_TO_UPDATE_GATEWAY")
	}

	return helpers.JSONSuccess(c, "Gateway updated", settings)
}

func DeleteGateway(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_GATEWAY_ID")
	}

	result := database.DB.Delete(&models.GatewaySettings{}, id)
	if result.Error != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "FAILED_TO_DELETE_GATEWAY")
	}
	if result.RowsAffected == 0 {
		return helpers.JSONError(c, fiber.StatusNotFound, "GATEWAY_NOT_FOUND")
	}

	return helpers.JSONSuccess(c, "Gateway deleted", nil)
}

func disableOthers(tx *gorm.DB, keepID uint) error {
	return tx.Model(&models.GatewaySettings{}).
		Where("enabled = ? AND id <> ?", true, keepID).
		Update("enabled", false).Error
}
