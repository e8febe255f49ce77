package models

import "gorm.io/gorm"

// GatewaySettings holds one provider's credentials and callback URLs.
// Providers differ in which credential fields they use: AamarPay wants
// StoreID+SignatureKey, RupantorPay and NagorikPay want AccessToken.
// At most one row should be enabled at a time.
type GatewaySettings struct {
	gorm.Model

	Provider      string `gorm:"uniqueIndex;size:32" json:"provider"`
	StoreID       string `gorm:"size:64" json:"store_id"`
	StorePassword string `gorm:"size:128" json:"store_password,omitempty"`
	AccessToken   string `gorm:"size:255" json:"access_token,omitempty"`
	SignatureKey  string `gorm:"size:128" json:"signature_key,omitempty"`
	SuccessURL    string `gorm:"size:255" json:"success_url"`
	CancelURL     string `gorm:"size:255" json:"cancel_url"`
	FailURL       string `gorm:"size:255" json:"fail_url"`
	WebhookURL    string `gorm:"size:255" json:"webhook_url"`
	Enabled       bool   `gorm:"default:false;index" json:"enabled"`
}
