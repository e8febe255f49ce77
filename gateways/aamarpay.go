package gateways

import (
	"context"
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"arenapay/models"

	"github.com/shopspring/decimal"
)

const aamarPayBaseURL = "https://sandbox.aamarpay.com"

// AamarPay uses the store_id + signature_key credential model and a
// form-encoded checkout endpoint. Verification goes through the trxcheck
// endpoint; webhook payloads additionally carry an md5 signature.
type AamarPay struct {
	settings models.GatewaySettings
	baseURL  string
	client   *http.Client
}

func NewAamarPay(settings models.GatewaySettings, baseURL string) *AamarPay {
	if baseURL == "" {
		baseURL = aamarPayBaseURL
	}
	return &AamarPay{
		settings: settings,
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   newHTTPClient(),
	}
}

func (g *AamarPay) Name() string { return "aamarpay" }

func (g *AamarPay) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	if g.settings.StoreID == "" || g.settings.SignatureKey == "" {
		return nil, errors.New("aamarpay store id or signature key is not configured")
	}

	form := url.Values{}
	form.Set("store_id", g.settings.StoreID)
	form.Set("signature_key", g.settings.SignatureKey)
	form.Set("amount", req.Amount.StringFixed(2))
	form.Set("currency", "BDT")
	form.Set("tran_id", req.TransactionID)
	form.Set("cus_name", req.CustomerName)
	form.Set("cus_email", req.CustomerEmail)
	form.Set("cus_phone", req.CustomerPhone)
	form.Set("desc", "Wallet top-up")
	form.Set("success_url", req.SuccessURL)
	form.Set("fail_url", req.FailURL)
	form.Set("cancel_url", req.CancelURL)
	form.Set("type", "json")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/jsonpost.php", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	raw, status, err := doWithRetry(g.client, httpReq)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Result     string `json:"result"`
		PaymentURL string `json:"payment_url"`
		Message    string `json:"message"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("aamarpay checkout: malformed response: %w", err)
	}
	if status != http.StatusOK || resp.Result != "true" || resp.PaymentURL == "" {
		if resp.Message != "" {
			return nil, fmt.Errorf("aamarpay checkout: %s", resp.Message)
		}
		return nil, fmt.Errorf("aamarpay checkout: no payment url (status %d)", status)
	}

	return &CheckoutResult{TransactionID: req.TransactionID, PaymentURL: resp.PaymentURL}, nil
}

func (g *AamarPay) Verify(ctx context.Context, transactionID string) (*VerificationResult, error) {
	if g.settings.StoreID == "" || g.settings.SignatureKey == "" {
		return nil, errors.New("aamarpay store id or signature key is not configured")
	}

	query := url.Values{}
	query.Set("request_id", transactionID)
	query.Set("store_id", g.settings.StoreID)
	query.Set("signature_key", g.settings.SignatureKey)
	query.Set("type", "json")

	endpoint := g.baseURL + "/api/v1/trxcheck/request.php?" + query.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	raw, status, err := doWithRetry(g.client, httpReq)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("aamarpay verify: status %d", status)
	}

	var resp struct {
		PayStatus   string `json:"pay_status"`
		Amount      string `json:"amount"`
		PaymentType string `json:"payment_type"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("aamarpay verify: malformed response: %w", err)
	}

	amount, _ := decimal.NewFromString(resp.Amount)
	return &VerificationResult{
		Completed:     strings.EqualFold(resp.PayStatus, "Successful"),
		Status:        resp.PayStatus,
		PaymentMethod: resp.PaymentType,
		Amount:        amount,
		Raw:           raw,
	}, nil
}

// VerifySignature checks the md5 mer_signature_key AamarPay attaches to
// webhook payloads: md5(mer_txnid + amount + pay_status + signature_key).
func (g *AamarPay) VerifySignature(merTxnID, amount, payStatus, merSignature string) bool {
	sum := md5.Sum([]byte(merTxnID + amount + payStatus + g.settings.SignatureKey))
	expected := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(expected), []byte(merSignature)) == 1
}

func init() {
	Register("aamarpay", func(settings models.GatewaySettings) PaymentGateway {
		return NewAamarPay(settings, "")
	})
}
