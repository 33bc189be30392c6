package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	pendingModel "absenku_backend/internals/features/pending/model"
)

// StartPendingCleanupScheduler menghapus row pending action yang sudah lama
// lewat masa hidupnya. Expiry sendiri soft (LookupActive sudah menyaring);
// scheduler ini cuma menjaga tabel tidak menumpuk row mati.
func StartPendingCleanupScheduler(db *gorm.DB) {
	go func() {
		// umur minimum row sebelum layak dihapus (default: 24 jam)
		retentionHours := 24
		if val := os.Getenv("PENDING_ACTION_RETENTION_HOURS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				retentionHours = parsed
			}
		}
		intervalMinutes := 60
		if val := os.Getenv("PENDING_CLEANUP_INTERVAL_MINUTES"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalMinutes = parsed
			}
		}

		for {
			log.Println("[CLEANUP] Menjalankan pembersihan pending_actions...")

			deleteBefore := time.Now().Add(-time.Duration(retentionHours) * time.Hour)

			res := db.
				Where("pending_action_expires_at < ?", deleteBefore).
				Delete(&pendingModel.PendingActionModel{})
			if res.Error != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus pending action: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[CLEANUP] %d pending action lama dihapus", res.RowsAffected)
			} else {
				log.Println("[CLEANUP] Tidak ada pending action yang memenuhi syarat dihapus")
			}

			time.Sleep(time.Duration(intervalMinutes) * time.Minute)
		}
	}()
}
