package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TopupMethodActive   = "active"
	TopupMethodInactive = "inactive"
)

const (
	TopupRequestPending  = "pending"
	TopupRequestApproved = "approved"
	TopupRequestRejected = "rejected"
)

// TopupMethod is a manual deposit channel (bKash, Nagad, bank transfer)
// shown to users alongside the automated gateways.
type TopupMethod struct {
	gorm.Model

	Name          string `gorm:"uniqueIndex;size:64" json:"name"`
	AccountNumber string `gorm:"size:64" json:"account_number"`
	Instructions  string `gorm:"size:512" json:"instructions"`
	Status        string `gorm:"size:16;default:active" json:"status"`
}

// TopupRequest is a user-submitted manual deposit awaiting admin review.
// TransactionID is the sender-side reference and doubles as the ledger
// idempotency key when the request is approved.
type TopupRequest struct {
	gorm.Model

	UserUID       string          `gorm:"index;size:64" json:"user_uid"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2)" json:"amount"`
	Method        string          `gorm:"size:64" json:"method"`
	SenderNumber  string          `gorm:"size:32" json:"sender_number"`
	TransactionID string          `gorm:"uniqueIndex;size:64" json:"transaction_id"`
	Status        string          `gorm:"size:16;index;default:pending" json:"status"`
}
