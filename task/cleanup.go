package tasks

import (
	"log"
	"time"

	"arenapay/database"
	"arenapay/models"
)

func CleanupOldNotifications() {
	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	result := database.DB.
		Where("read = ? AND created_at < ?", true, thirtyDaysAgo).
		Delete(&models.Notification{})

	if result.Error != nil {
		log.Println("❌ Failed to delete old notifications:", result.Error)
	} else {
		log.Printf("✅ Deleted %d read notifications older than 30 days\n", result.RowsAffected)
	}
}
