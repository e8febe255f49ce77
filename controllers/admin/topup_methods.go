package admin

import (
	"errors"

	"arenapay/database"
	"arenapay/helpers"
	"arenapay/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ListTopupMethods(c *fiber.Ctx) error {
	var methods []models.TopupMethod
	if err := database.DB.Order("name").Find(&methods).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "FAILED_TO_FETCH_METHODS")
	}
	return helpers.JSONSuccess(c, "Top-up methods fetched", methods)
}

func CreateTopupMethod(c *fiber.Ctx) error {
	var method models.TopupMethod
	if err := c.BodyParser(&method); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if method.Name == "" || method.AccountNumber == "" {
		return helpers.JSONError(c, fiber.StatusBadRequest, "NAME_AND_ACCOUNT_NUMBER_REQUIRED")
	}
	if method.Status == "" {
		method.Status = models.TopupMethodActive
	}

	if err := database.DB.Create(&method).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "FAILED_TO_SAVE_METHOD")
	}
	return helpers.JSONSuccess(c, "Top-up method created", method)
}

func UpdateTopupMethod(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_METHOD_ID")
	}

	var method models.TopupMethod
	if err := database.DB.First(&method, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JSONError(c, fiber.StatusNotFound, "METHOD_NOT_FOUND")
		}
		return helpers.JSONError(c, fiber.StatusInternalServerError, "FAILED_TO_FETCH_METHOD")
	}

	var updates models.TopupMethod
	if err := c.BodyParser(&updates); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}

	if err := database.DB.Model(&method).
		Select("Name", "AccountNumber", "Instructions", "Status").
		Updates(updates).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "FAILED_TO_UPDATE_METHOD")
	}
	return helpers.JSONSuccess(c, "Top-up method updated", method)
}

func DeleteTopupMethod(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_METHOD_ID")
	}

	result := database.DB.Delete(&models.TopupMethod{}, id)
	if result.Error != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "FAILED_TO_DELETE_METHOD")
	}
	if result.RowsAffected == 0 {
		return helpers.JSONError(c, fiber.StatusNotFound, "METHOD_NOT_FOUND")
	}
	return helpers.JSONSuccess(c, "Top-up method deleted", nil)
}
