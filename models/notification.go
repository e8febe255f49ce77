package models

import "gorm.io/gorm"

type Notification struct {
	gorm.Model

	UserUID     string `gorm:"index;size:64" json:"user_uid"`
	Title       string `gorm:"size:128" json:"title"`
	Description string `gorm:"size:255" json:"description"`
	Link        string `gorm:"size:255" json:"link"`
	Read        bool   `gorm:"default:false;index" json:"read"`
}
