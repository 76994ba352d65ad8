package logging

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/hopee-platform/hopee-backend/internal/models"
)

const logRetention = 30 * 24 * time.Hour

// StartCleanup purges system_logs rows past the retention window, once at
// startup and then daily, until done is closed.
func StartCleanup(db *gorm.DB, done chan struct{}) {
	go func() {
		purgeOldLogs(db)
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				purgeOldLogs(db)
			case <-done:
				return
			}
		}
	}()
}

func purgeOldLogs(db *gorm.DB) {
	cutoff := time.Now().Add(-logRetention)
	result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	if result.Error != nil {
		slog.Error("log cleanup failed", "error", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		slog.Info("log cleanup completed", "deleted", result.RowsAffected)
	}
}
