package logging

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/lifeos-app/lifeos-backend/internal/models"
)

// logRetention bounds how far back persisted error records are kept.
const logRetention = 30 * 24 * time.Hour

// StartCleanup sweeps expired system_logs rows once at startup and then once
// a day, until done is closed.
func StartCleanup(db *gorm.DB, done chan struct{}) {
	go func() {
		sweep(db)
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sweep(db)
			case <-done:
				return
			}
		}
	}()
}

func sweep(db *gorm.DB) {
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
