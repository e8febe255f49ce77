package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TrxDeposit         = "deposit"
	TrxWithdrawal      = "withdrawal"
	TrxPrize           = "prize"
	TrxFee             = "fee"
	TrxAdminAdjustment = "admin_adjustment"
)

// WalletTransaction is an immutable ledger entry. The unique index on
// GatewayTransactionID is what makes duplicate credits impossible: the
// second insert for the same gateway transaction fails.
type WalletTransaction struct {
	gorm.Model

	UserUID              string          `gorm:"index;size:64" json:"user_uid"`
	Amount               decimal.Decimal `gorm:"type:numeric(12,2)" json:"amount"`
	TrxType              string          `gorm:"size:24;index" json:"type"`
	Description          string          `gorm:"size:255" json:"description"`
	Status               string          `gorm:"size:16" json:"status"`
	GatewayTransactionID string          `gorm:"uniqueIndex;size:64" json:"gateway_transaction_id"`
}
