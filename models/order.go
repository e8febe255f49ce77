package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order statuses. An order is terminal once it leaves PENDING.
const (
	OrderPending   = "PENDING"
	OrderCompleted = "COMPLETED"
	OrderFailed    = "FAILED"
	OrderCancelled = "CANCELLED"
)

// Order is a single payment attempt. TransactionID is the idempotency key
// shared with the gateway; only the verifier moves status out of PENDING.
type Order struct {
	gorm.Model

	TransactionID   string          `gorm:"uniqueIndex;size:64" json:"transaction_id"`
	UserUID         string          `gorm:"index;size:64" json:"user_uid"`
	Amount          decimal.Decimal `gorm:"type:numeric(12,2)" json:"amount"`
	Gateway         string          `gorm:"size:32" json:"gateway"`
	Status          string          `gorm:"size:16;index;default:PENDING" json:"status"`
	GatewayResponse datatypes.JSON  `json:"gateway_response,omitempty"`
}

func (o *Order) Terminal() bool {
	return o.Status != OrderPending
}
