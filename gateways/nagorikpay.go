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

const nagorikPayBaseURL = "https://secure-pay.nagorikpay.com/api"

// NagorikPay authenticates with an API-KEY header. Metadata rides in a
// meta_data JSON string and comes back on verification.
type NagorikPay struct {
	settings models.GatewaySettings
	baseURL  string
	client   *http.Client
}

func NewNagorikPay(settings models.GatewaySettings, baseURL string) *NagorikPay {
	if baseURL == "" {
		baseURL = nagorikPayBaseURL
	}
	return &NagorikPay{
		settings: settings,
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   newHTTPClient(),
	}
}

func (g *NagorikPay) Name() string { return "nagorikpay" }

func (g *NagorikPay) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	if g.settings.AccessToken == "" {
		return nil, errors.New("nagorikpay access token is not configured")
	}

	metaData, err := json.Marshal(req.Metadata)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"amount":         req.Amount.StringFixed(2),
		"cus_name":       req.CustomerName,
		"cus_email":      req.CustomerEmail,
		"success_url":    req.SuccessURL,
		"cancel_url":     req.CancelURL,
		"transaction_id": req.TransactionID,
		"meta_data":      string(metaData),
	}
	if req.WebhookURL != "" {
		payload["webhook_url"] = req.WebhookURL
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/payment/create", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("API-KEY", g.settings.AccessToken)

	raw, status, err := doWithRetry(g.client, httpReq)
	if err != nil {
		return nil, err
	}

	var resp struct {
		PaymentURL string `json:"payment_url"`
		Message    string `json:"message"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("nagorikpay checkout: malformed response: %w", err)
	}
	if status != http.StatusOK || resp.PaymentURL == "" {
		if resp.Message != "" {
			return nil, fmt.Errorf("nagorikpay checkout: %s", resp.Message)
		}
		return nil, fmt.Errorf("nagorikpay checkout: no payment url (status %d)", status)
	}

	return &CheckoutResult{TransactionID: req.TransactionID, PaymentURL: resp.PaymentURL}, nil
}

func (g *NagorikPay) Verify(ctx context.Context, transactionID string) (*VerificationResult, error) {
	if g.settings.AccessToken == "" {
		return nil, errors.New("nagorikpay access token is not configured")
	}

	body, err := json.Marshal(map[string]string{"transaction_id": transactionID})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/payment/verify", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("API-KEY", g.settings.AccessToken)

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
		return nil, fmt.Errorf("nagorikpay verify: malformed response: %w", err)
	}
	if status != http.StatusOK {
		if resp.Message != "" {
			return nil, fmt.Errorf("nagorikpay verify: %s", resp.Message)
		}
		return nil, fmt.Errorf("nagorikpay verify: status %d", status)
	}

	amount, _ := decimal.NewFromString(resp.Amount)
	return &VerificationResult{
		Completed:     strings.EqualFold(resp.Status, "COMPLETED"),
		Status:        resp.Status,
		PaymentMethod: resp.PaymentMethod,
		Amount:        amount,
		Raw:           raw,
	}, nil
}

func init() {
	Register("nagorikpay", func(settings models.GatewaySettings) PaymentGateway {
		return NewNagorikPay(settings, "")
	})
}
