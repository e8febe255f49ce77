package gateways

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"arenapay/models"

	"github.com/shopspring/decimal"
)

// CheckoutRequest carries everything a provider needs to build a hosted
// checkout page. Metadata is echoed back on verification and carries the
// user uid.
type CheckoutRequest struct {
	TransactionID string
	Amount        decimal.Decimal
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	SuccessURL    string
	CancelURL     string
	FailURL       string
	WebhookURL    string
	Metadata      map[string]string
}

type CheckoutResult struct {
	TransactionID string
	PaymentURL    string
}

// VerificationResult is the outcome of a server-to-server status check.
// Completed is only true when the provider itself reports a finished
// payment; it is never derived from a client-supplied status hint.
type VerificationResult struct {
	Completed     bool
	Status        string
	PaymentMethod string
	Amount        decimal.Decimal
	Raw           json.RawMessage
}

// PaymentGateway is the capability every provider adapter implements.
type PaymentGateway interface {
	Name() string
	Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)
	Verify(ctx context.Context, transactionID string) (*VerificationResult, error)
}

// Factory builds an adapter from stored settings. Settings are read per
// request so credential changes take effect without a restart.
type Factory func(settings models.GatewaySettings) PaymentGateway

var factories = map[string]Factory{}

func Register(name string, f Factory) {
	factories[strings.ToLower(name)] = f
}

func ForSettings(settings models.GatewaySettings) (PaymentGateway, error) {
	f, ok := factories[strings.ToLower(settings.Provider)]
	if !ok {
		return nil, fmt.Errorf("unknown payment provider %q", settings.Provider)
	}
	return f(settings), nil
}
