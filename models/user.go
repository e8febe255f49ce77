package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model

	UID            string          `gorm:"uniqueIndex;size:64" json:"uid"`
	Name           string          `gorm:"size:128" json:"name"`
	Email          string          `gorm:"size:128" json:"email"`
	Phone          string          `gorm:"size:32" json:"phone"`
	APIKey         string          `gorm:"uniqueIndex;size:64" json:"-"`
	Balance        decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"balance"`
	PendingBalance decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"pending_balance"`
	IsActive       bool            `gorm:"default:true" json:"is_active"`
}
