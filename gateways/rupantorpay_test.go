package gateways

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"arenapay/models"

	"github.com/shopspring/decimal"
)

func rupantorSettings() models.GatewaySettings {
	return models.GatewaySettings{Provider: "rupantorpay", AccessToken: "tok-123"}
}

func TestRupantorPayCheckout(t *testing.T) {
	t.Run("sends credentials and returns the payment url", func(t *testing.T) {
		var got map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/checkout" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			json.NewEncoder(w).Encode(map[string]string{"payment_url": "https://pay.example/abc"})
		}))
		defer server.Close()

		gw := NewRupantorPay(rupantorSettings(), server.URL)
		result, err := gw.Checkout(context.Background(), CheckoutRequest{
			TransactionID: "TRN-1",
			Amount:        decimal.NewFromInt(500),
			CustomerName:  "Player One",
			CustomerEmail: "p1@example.com",
			SuccessURL:    "https://arena.example/payment/callback?transaction_id=TRN-1&status=success",
			Metadata:      map[string]string{"uid": "u1"},
		})
		if err != nil {
			t.Fatalf("Checkout failed: %v", err)
		}
		if result.PaymentURL != "https://pay.example/abc" {
			t.Errorf("unexpected payment url %s", result.PaymentURL)
		}
		if got["access_token"] != "tok-123" {
			t.Errorf("expected access token in body, got %v", got["access_token"])
		}
		if got["transaction_id"] != "TRN-1" {
			t.Errorf("expected transaction id TRN-1, got %v", got["transaction_id"])
		}
		if got["amount"] != "500.00" {
			t.Errorf("expected amount 500.00, got %v", got["amount"])
		}
	})

	t.Run("missing payment url is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": "invalid token"})
		}))
		defer server.Close()

		gw := NewRupantorPay(rupantorSettings(), server.URL)
		if _, err := gw.Checkout(context.Background(), CheckoutRequest{TransactionID: "TRN-1", Amount: decimal.NewFromInt(100)}); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("missing access token fails before any network call", func(t *testing.T) {
		gw := NewRupantorPay(models.GatewaySettings{Provider: "rupantorpay"}, "http://127.0.0.1:0")
		if _, err := gw.Checkout(context.Background(), CheckoutRequest{TransactionID: "TRN-1", Amount: decimal.NewFromInt(100)}); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestRupantorPayVerify(t *testing.T) {
	t.Run("completed payment", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/verify-payment" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if r.Header.Get("X-API-KEY") != "tok-123" {
				t.Errorf("expected X-API-KEY header, got %q", r.Header.Get("X-API-KEY"))
			}
			json.NewEncoder(w).Encode(map[string]string{
				"status":         "COMPLETED",
				"amount":         "500.00",
				"payment_method": "bkash",
			})
		}))
		defer server.Close()

		gw := NewRupantorPay(rupantorSettings(), server.URL)
		result, err := gw.Verify(context.Background(), "TRN-1")
		if err != nil {
			t.Fatalf("Verify failed: %v", err)
		}
		if !result.Completed {
			t.Error("expected Completed")
		}
		if !result.Amount.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected amount 500, got %s", result.Amount)
		}
		if len(result.Raw) == 0 {
			t.Error("expected raw payload")
		}
	})

	t.Run("pending payment is not completed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{"status": "PENDING"})
		}))
		defer server.Close()

		gw := NewRupantorPay(rupantorSettings(), server.URL)
		result, err := gw.Verify(context.Background(), "TRN-1")
		if err != nil {
			t.Fatalf("Verify failed: %v", err)
		}
		if result.Completed {
			t.Error("PENDING must not be treated as completed")
		}
	})

	t.Run("non-200 response is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "bad key"})
		}))
		defer server.Close()

		gw := NewRupantorPay(rupantorSettings(), server.URL)
		if _, err := gw.Verify(context.Background(), "TRN-1"); err == nil {
			t.Fatal("expected an error")
		}
	})
}
