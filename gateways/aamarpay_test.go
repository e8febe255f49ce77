package gateways

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"arenapay/models"

	"github.com/shopspring/decimal"
)

func aamarSettings() models.GatewaySettings {
	return models.GatewaySettings{Provider: "aamarpay", StoreID: "teststore", SignatureKey: "sig-key"}
}

func TestAamarPayCheckout(t *testing.T) {
	var form map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/jsonpost.php" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		form = r.PostForm
		json.NewEncoder(w).Encode(map[string]string{"result": "true", "payment_url": "https://pay.example/amp"})
	}))
	defer server.Close()

	gw := NewAamarPay(aamarSettings(), server.URL)
	result, err := gw.Checkout(context.Background(), CheckoutRequest{
		TransactionID: "TRN-7",
		Amount:        decimal.NewFromInt(75),
		CustomerName:  "Player One",
		CustomerEmail: "p1@example.com",
		CustomerPhone: "01700000000",
	})
	if err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}
	if result.PaymentURL != "https://pay.example/amp" {
		t.Errorf("unexpected payment url %s", result.PaymentURL)
	}
	if got := form["store_id"]; len(got) != 1 || got[0] != "teststore" {
		t.Errorf("expected store_id teststore, got %v", got)
	}
	if got := form["signature_key"]; len(got) != 1 || got[0] != "sig-key" {
		t.Errorf("expected signature_key, got %v", got)
	}
	if got := form["tran_id"]; len(got) != 1 || got[0] != "TRN-7" {
		t.Errorf("expected tran_id TRN-7, got %v", got)
	}
	if got := form["currency"]; len(got) != 1 || got[0] != "BDT" {
		t.Errorf("expected currency BDT, got %v", got)
	}
}

func TestAamarPayVerify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/trxcheck/request.php" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("request_id") != "TRN-7" {
			t.Errorf("expected request_id TRN-7, got %s", r.URL.Query().Get("request_id"))
		}
		json.NewEncoder(w).Encode(map[string]string{
			"pay_status":   "Successful",
			"amount":       "75.00",
			"payment_type": "VISA",
		})
	}))
	defer server.Close()

	gw := NewAamarPay(aamarSettings(), server.URL)
	result, err := gw.Verify(context.Background(), "TRN-7")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !result.Completed {
		t.Error("expected Completed")
	}
	if result.PaymentMethod != "VISA" {
		t.Errorf("expected payment method VISA, got %s", result.PaymentMethod)
	}
}

func TestAamarPayVerifySignature(t *testing.T) {
	gw := NewAamarPay(aamarSettings(), "")

	sum := md5.Sum([]byte("TRN-7" + "75.00" + "Successful" + "sig-key"))
	valid := hex.EncodeToString(sum[:])

	if !gw.VerifySignature("TRN-7", "75.00", "Successful", valid) {
		t.Error("valid signature rejected")
	}
	if gw.VerifySignature("TRN-7", "75.00", "Successful", "deadbeef") {
		t.Error("invalid signature accepted")
	}
}
