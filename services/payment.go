package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"arenapay/gateways"
	"arenapay/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type InitiateRequest struct {
	UserUID string
	Amount  decimal.Decimal
	BaseURL string
}

type InitiateResult struct {
	TransactionID string `json:"transaction_id"`
	PaymentURL    string `json:"payment_url"`
}

func MinTopupAmount() decimal.Decimal {
	if v := os.Getenv("MIN_TOPUP_AMOUNT"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil && d.IsPositive() {
			return d
		}
	}
	return decimal.NewFromInt(10)
}

// NewTransactionID returns an order id like TRN-1724990000000-a1b2c3d4.
func NewTransactionID() string {
	suffix := strings.Split(uuid.New().String(), "-")[0]
	return fmt.Sprintf("TRN-%d-%s", time.Now().UnixMilli(), suffix)
}

// EnabledGateway resolves the single enabled provider and builds its
// adapter from the stored settings.
func EnabledGateway(db *gorm.DB) (gateways.PaymentGateway, *models.GatewaySettings, error) {
	var settings models.GatewaySettings
	if err := db.Where("enabled = ?", true).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, &ConfigurationError{Message: "Payment gateway is not configured. Please contact support."}
		}
		return nil, nil, err
	}

	gw, err := gateways.ForSettings(settings)
	if err != nil {
		return nil, nil, &ConfigurationError{Message: err.Error()}
	}
	return gw, &settings, nil
}

// InitiatePayment validates the request, asks the enabled gateway for a
// checkout URL and only then records the PENDING order. A failed gateway
// call leaves no order behind.
func InitiatePayment(ctx context.Context, db *gorm.DB, minAmount decimal.Decimal, req InitiateRequest) (*InitiateResult, error) {
	if req.Amount.LessThan(minAmount) {
		return nil, &ValidationError{Message: fmt.Sprintf("Amount must be at least %s", minAmount.String())}
	}

	var user models.User
	if err := db.Where("uid = ? AND is_active = ?", req.UserUID, true).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "User not found"}
		}
		return nil, err
	}

	gw, settings, err := EnabledGateway(db)
	if err != nil {
		return nil, err
	}

	transactionID := NewTransactionID()

	checkout, err := gw.Checkout(ctx, gateways.CheckoutRequest{
		TransactionID: transactionID,
		Amount:        req.Amount,
		CustomerName:  user.Name,
		CustomerEmail: user.Email,
		CustomerPhone: user.Phone,
		SuccessURL:    callbackURL(settings.SuccessURL, req.BaseURL, transactionID, "success"),
		CancelURL:     callbackURL(settings.CancelURL, req.BaseURL, transactionID, "cancel"),
		FailURL:       callbackURL(settings.FailURL, req.BaseURL, transactionID, "fail"),
		WebhookURL:    settings.WebhookURL,
		Metadata:      map[string]string{"uid": user.UID},
	})
	if err != nil {
		return nil, &UpstreamError{Message: "Failed to create payment link", Err: err}
	}

	order := models.Order{
		TransactionID: transactionID,
		UserUID:       user.UID,
		Amount:        req.Amount,
		Gateway:       gw.Name(),
		Status:        models.OrderPending,
	}
	if err := db.Create(&order).Error; err != nil {
		return nil, err
	}

	return &InitiateResult{TransactionID: transactionID, PaymentURL: checkout.PaymentURL}, nil
}

func callbackURL(configured, base, transactionID, status string) string {
	if configured != "" {
		return configured
	}
	return fmt.Sprintf("%s/payment/callback?transaction_id=%s&status=%s",
		strings.TrimRight(base, "/"), url.QueryEscape(transactionID), status)
}

// FinalizeOrder drives a pending order to a terminal state. The inbound
// status hint is honored only for fail/cancel; a success hint still goes
// through the provider's verify endpoint before any credit. The returned
// order always reflects the stored terminal state.
func FinalizeOrder(ctx context.Context, db *gorm.DB, transactionID, hint string) (*models.Order, error) {
	var order models.Order
	if err := db.Where("transaction_id = ?", transactionID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "Order not found"}
		}
		return nil, err
	}

	if order.Terminal() {
		return &order, nil
	}

	switch strings.ToLower(hint) {
	case "fail":
		return finalizeWithStatus(db, &order, models.OrderFailed, rawMessage("cancelled or failed at gateway"))
	case "cancel":
		return finalizeWithStatus(db, &order, models.OrderCancelled, rawMessage("cancelled or failed at gateway"))
	}

	gw, _, err := EnabledGateway(db)
	if err != nil {
		_, _ = finalizeWithStatus(db, &order, models.OrderFailed, rawMessage(err.Error()))
		return &order, err
	}

	verification, err := gw.Verify(ctx, transactionID)
	if err != nil {
		upstream := &UpstreamError{Message: "Payment verification failed", Err: err}
		_, _ = finalizeWithStatus(db, &order, models.OrderFailed, rawMessage(err.Error()))
		return &order, upstream
	}

	if !verification.Completed {
		return finalizeWithStatus(db, &order, models.OrderFailed, datatypes.JSON(verification.Raw))
	}

	if err := creditOrder(db, &order, datatypes.JSON(verification.Raw)); err != nil {
		var processed *AlreadyProcessedError
		if errors.As(err, &processed) {
			// A concurrent callback won the race; report its outcome.
			if reloadErr := db.Where("transaction_id = ?", transactionID).First(&order).Error; reloadErr != nil {
				return nil, reloadErr
			}
			return &order, nil
		}
		_, _ = finalizeWithStatus(db, &order, models.OrderFailed, rawMessage(err.Error()))
		return &order, err
	}

	return &order, nil
}

// creditOrder performs the atomic credit: flip the order out of PENDING,
// increment the balance and insert the ledger row, all or nothing. The
// conditional update is the concurrency guard — of two racing callbacks
// only one observes RowsAffected == 1.
func creditOrder(db *gorm.DB, order *models.Order, raw datatypes.JSON) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Order{}).
			Where("transaction_id = ? AND status = ?", order.TransactionID, models.OrderPending).
			Updates(map[string]any{"status": models.OrderCompleted, "gateway_response": raw})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &AlreadyProcessedError{Status: order.Status}
		}

		var user models.User
		if err := tx.Where("uid = ?", order.UserUID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Message: "User not found"}
			}
			return err
		}

		if err := tx.Model(&models.User{}).
			Where("uid = ?", order.UserUID).
			Update("balance", gorm.Expr("balance + ?", order.Amount)).Error; err != nil {
			return err
		}

		ledger := models.WalletTransaction{
			UserUID:              order.UserUID,
			Amount:               order.Amount,
			TrxType:              models.TrxDeposit,
			Description:          "Deposit via " + order.Gateway,
			Status:               models.OrderCompleted,
			GatewayTransactionID: order.TransactionID,
		}
		return tx.Create(&ledger).Error
	})
	if err != nil {
		return err
	}

	order.Status = models.OrderCompleted
	order.GatewayResponse = raw
	return nil
}

// finalizeWithStatus moves a pending order to the given terminal status.
// Losing the race to another callback is not an error: the stored outcome
// is reloaded and returned.
func finalizeWithStatus(db *gorm.DB, order *models.Order, status string, raw datatypes.JSON) (*models.Order, error) {
	res := db.Model(&models.Order{}).
		Where("transaction_id = ? AND status = ?", order.TransactionID, models.OrderPending).
		Updates(map[string]any{"status": status, "gateway_response": raw})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		if err := db.Where("transaction_id = ?", order.TransactionID).First(order).Error; err != nil {
			return nil, err
		}
		return order, nil
	}

	order.Status = status
	order.GatewayResponse = raw
	return order, nil
}

func rawMessage(msg string) datatypes.JSON {
	raw, _ := json.Marshal(map[string]string{"error": msg})
	return datatypes.JSON(raw)
}
