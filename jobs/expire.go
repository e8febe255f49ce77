package jobs

import (
	"log"
	"os"
	"strconv"
	"time"

	"arenapay/database"
	"arenapay/models"
	tasks "arenapay/task"
)

// StartOrderExpiryScheduler sweeps orders that never received a callback.
// A PENDING order older than ORDER_TTL_HOURS is moved to CANCELLED with
// the same conditional update the verifier uses, so a late callback that
// races the sweep still resolves to exactly one terminal state.
func StartOrderExpiryScheduler() {
	ttl := orderTTL()

	ticker := time.NewTicker(5 * time.Minute)
	go func() {
		for {
			<-ticker.C
			cutoff := time.Now().Add(-ttl)
			result := database.DB.Model(&models.Order{}).
				Where("status = ? AND created_at < ?", models.OrderPending, cutoff).
				Update("status", models.OrderCancelled)
			if result.Error != nil {
				log.Printf("❌ error expiring stale orders: %v", result.Error)
				continue
			}
			if result.RowsAffected > 0 {
				log.Printf("✅ Cancelled %d stale pending orders", result.RowsAffected)
			}
		}
	}()

	tickerCleanup := time.NewTicker(24 * time.Hour)
	go func() {
		for {
			<-tickerCleanup.C
			tasks.CleanupOldNotifications()
		}
	}()
}

func orderTTL() time.Duration {
	if v := os.Getenv("ORDER_TTL_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return 6 * time.Hour
}
