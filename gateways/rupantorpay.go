package gateways

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"arenapay/models"

	"github.com/shopspring/decimal"
)

const rupantorPayBaseURL = "https://payment.rupantorpay.com/api/payment"

// RupantorPay speaks the access-token JSON API: POST /checkout to create a
// hosted payment page, POST /verify-payment for the authoritative status.
type RupantorPay struct {
	settings models.GatewaySettings
	baseURL  string
	client   *http.Client
}

func NewRupantorPay(settings models.GatewaySettings, baseURL string) *RupantorPay {
	if baseURL == "" {
		baseURL = rupantorPayBaseURL
	}
	return &RupantorPay{
		settings: settings,
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   newHTTPClient(),
	}
}

func (g *RupantorPay) Name() string { return "rupantorpay" }

func (g *RupantorPay) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	if g.settings.AccessToken == "" {
		return nil, errors.New("rupantorpay access token is not configured")
	}

	payload := map[string]any{
		"access_token":   g.settings.AccessToken,
		"transaction_id": req.TransactionID,
		"amount":         req.Amount.StringFixed(2),
		"success_url":    req.SuccessURL,
		"cancel_url":     req.CancelURL,
		"fail_url":       req.FailURL,
		"customer_name":  req.CustomerName,
		"customer_email": req.CustomerEmail,
		"customer_phone": req.CustomerPhone,
	}
	if req.WebhookURL != "" {
		payload["webhook_url"] = req.WebhookURL
	}
	if len(req.Metadata) > 0 {
		payload["metadata"] = req.Metadata
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/checkout", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	raw, status, err := doWithRetry(g.client, httpReq)
	if err != nil {
		return nil, err
	}

	var resp struct {
		PaymentURL string `json:"payment_url"`
		Message    string `json:"message"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("rupantorpay checkout: malformed response: %w", err)
	}
	if status != http.StatusOK || resp.PaymentURL == "" {
		if resp.Message != "" {
			return nil, fmt.Errorf("rupantorpay checkout: %s", resp.Message)
		}
		return nil, fmt.Errorf("rupantorpay checkout: no payment url (status %d)", status)
	}

	return &CheckoutResult{TransactionID: req.TransactionID, PaymentURL: resp.PaymentURL}, nil
}

func (g *RupantorPay) Verify(ctx context.Context, transactionID string) (*VerificationResult, error) {
	if g.settings.AccessToken == "" {
		return nil, errors.New("rupantorpay access token is not configured")
	}

	body, err := json.Marshal(map[string]string{
		"access_token":   g.settings.AccessToken,
		"transaction_id": transactionID,
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/verify-payment", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-API-KEY", g.settings.AccessToken)

	raw, status, err := doWithRetry(g.client, httpReq)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Status        string `json:"status"`
		Amount        string `json:"amount"`
		PaymentMethod string `json:"payment_method"`
		Message       string `json:"message"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("rupantorpay verify: malformed response: %w", err)
	}
	if status != http.StatusOK {
		if resp.Message != "" {
			return nil, fmt.Errorf("rupantorpay verify: %s", resp.Message)
		}
		return nil, fmt.Errorf("rupantorpay verify: status %d", status)
	}

	amount, _ := decimal.NewFromString(resp.Amount)
	return &VerificationResult{
		Completed:     strings.EqualFold(resp.Status, "COMPLETED") || strings.EqualFold(resp.Status, "success"),
		Status:        resp.Status,
		PaymentMethod: resp.PaymentMethod,
		Amount:        amount,
		Raw:           raw,
	}, nil
}

func init() {
	Register("rupantorpay", func(settings models.GatewaySettings) PaymentGateway {
		return NewRupantorPay(settings, "")
	})
}
