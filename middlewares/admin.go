package middlewares

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"os"

	"arenapay/helpers"

	"github.com/gofiber/fiber/v2"
)

// AdminAuth checks an HMAC signature header computed over the admin key
// pair: hex(hmac-sha256(key+secret, secret)).
func AdminAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		signature := c.Get("X-Admin-Signature")
		if signature == "" {
			return helpers.JSONError(c, fiber.StatusUnauthorized, "ADMIN_SIGNATURE_REQUIRED")
		}

		adminKey := os.Getenv("ADMIN_API_KEY")
		adminSecret := os.Getenv("ADMIN_API_SECRET")
		if adminKey == "" || adminSecret == "" {
			return helpers.JSONError(c, fiber.StatusInternalServerError, "ADMIN_CREDENTIALS_NOT_CONFIGURED")
		}

		h := hmac.New(sha256.New, []byte(adminSecret))
		h.Write([]byte(adminKey + adminSecret))
		expected := hex.EncodeToString(h.Sum(nil))

		if !hmac.Equal([]byte(signature), []byte(expected)) {
			return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_SIGNATURE")
		}

		return c.Next()
	}
}
