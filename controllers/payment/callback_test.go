package payment_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"arenapay/database"
	"arenapay/gateways"
	"arenapay/models"
	"arenapay/routes"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubGateway struct {
	completed bool
}

func (s *stubGateway) Name() string { return "fakepay" }

func (s *stubGateway) Checkout(_ context.Context, req gateways.CheckoutRequest) (*gateways.CheckoutResult, error) {
	return &gateways.CheckoutResult{TransactionID: req.TransactionID, PaymentURL: "https://pay.example/" + req.TransactionID}, nil
}

func (s *stubGateway) Verify(_ context.Context, _ string) (*gateways.VerificationResult, error) {
	raw, _ := json.Marshal(map[string]string{"status": "COMPLETED"})
	if !s.completed {
		raw, _ = json.Marshal(map[string]string{"status": "ERROR"})
	}
	return &gateways.VerificationResult{Completed: s.completed, Status: "COMPLETED", Raw: raw}, nil
}

var stub = &stubGateway{}

func init() {
	gateways.Register("fakepay", func(_ models.GatewaySettings) gateways.PaymentGateway {
		return stub
	})
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("SITE_URL", "https://arena.example")
	stub.completed = false

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db

	db.Create(&models.User{UID: "u1", Name: "Player", Email: "p@example.com", APIKey: "key-u1"})
	db.Create(&models.GatewaySettings{Provider: "fakepay", AccessToken: "tok", Enabled: true})

	app := fiber.New()
	routes.Setup(app)
	return app
}

func TestCallbackHandler(t *testing.T) {
	t.Run("cancel hint redirects to the cancel page and cancels the order", func(t *testing.T) {
		app := setupApp(t)
		database.DB.Create(&models.Order{TransactionID: "TRN-1", UserUID: "u1", Amount: decimal.NewFromInt(100), Gateway: "fakepay", Status: models.OrderPending})

		req := httptest.NewRequest(http.MethodGet, "/payment/callback?transaction_id=TRN-1&status=cancel", nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusFound {
			t.Fatalf("expected 302, got %d", resp.StatusCode)
		}
		if loc := resp.Header.Get("Location"); loc != "https://arena.example/payment/cancel" {
			t.Errorf("unexpected redirect %s", loc)
		}

		var order models.Order
		database.DB.Where("transaction_id = ?", "TRN-1").First(&order)
		if order.Status != models.OrderCancelled {
			t.Errorf("expected CANCELLED, got %s", order.Status)
		}
	})

	t.Run("verified success credits and redirects to the success page", func(t *testing.T) {
		app := setupApp(t)
		stub.completed = true
		database.DB.Create(&models.Order{TransactionID: "TRN-2", UserUID: "u1", Amount: decimal.NewFromInt(500), Gateway: "fakepay", Status: models.OrderPending})

		req := httptest.NewRequest(http.MethodGet, "/payment/callback?transaction_id=TRN-2&status=success", nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if loc := resp.Header.Get("Location"); loc != "https://arena.example/payment/success" {
			t.Errorf("unexpected redirect %s", loc)
		}

		var user models.User
		database.DB.Where("uid = ?", "u1").First(&user)
		if !user.Balance.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected balance 500, got %s", user.Balance)
		}
	})

	t.Run("unknown transaction redirects to the fail page", func(t *testing.T) {
		app := setupApp(t)

		req := httptest.NewRequest(http.MethodGet, "/payment/callback?transaction_id=TRN-nope&status=success", nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if loc := resp.Header.Get("Location"); loc != "https://arena.example/payment/fail" {
			t.Errorf("unexpected redirect %s", loc)
		}
	})
}

func TestInitiateHandler(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		app := setupApp(t)

		body, _ := json.Marshal(map[string]any{"amount": 100})
		req := httptest.NewRequest(http.MethodPost, "/payment/initiate", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", resp.StatusCode)
		}
	})

	t.Run("returns a payment url for a valid request", func(t *testing.T) {
		app := setupApp(t)

		body, _ := json.Marshal(map[string]any{"amount": 100})
		req := httptest.NewRequest(http.MethodPost, "/payment/initiate", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-API-Key", "key-u1")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			raw, _ := io.ReadAll(resp.Body)
			t.Fatalf("expected 200, got %d: %s", resp.StatusCode, raw)
		}

		var envelope struct {
			Data struct {
				PaymentURL    string `json:"payment_url"`
				TransactionID string `json:"transaction_id"`
			} `json:"data"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if envelope.Data.PaymentURL == "" {
			t.Error("expected a payment url")
		}

		var order models.Order
		if err := database.DB.Where("transaction_id = ?", envelope.Data.TransactionID).First(&order).Error; err != nil {
			t.Fatalf("expected a pending order: %v", err)
		}
		if order.Status != models.OrderPending {
			t.Errorf("expected PENDING, got %s", order.Status)
		}
	})

	t.Run("rejects amounts below the minimum", func(t *testing.T) {
		app := setupApp(t)

		body, _ := json.Marshal(map[string]any{"amount": 9})
		req := httptest.NewRequest(http.MethodPost, "/payment/initiate", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-API-Key", "key-u1")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", resp.StatusCode)
		}
	})
}
