package logging

import (
	"log/slog"
	"time"

	"github.com/guestwall/guestwall-backend/internal/models"
	"gorm.io/gorm"
)

// StartCleanup prunes system_logs older than the retention window once a
// day until done is closed.
func StartCleanup(db *gorm.DB, retention time.Duration, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				result := db.Where("timestamp < ?", time.Now().Add(-retention)).
					Delete(&models.SystemLog{})
				if result.Error != nil {
					slog.Error("log cleanup failed", "error", result.Error)
				} else if result.RowsAffected > 0 {
					slog.Info("log cleanup completed", "deleted", result.RowsAffected)
				}
			case <-done:
				return
			}
		}
	}()
}
