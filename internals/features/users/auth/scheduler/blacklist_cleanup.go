// internals/features/users/auth/scheduler/blacklist_cleanup.go
package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "madrasahku_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler membersihkan token blacklist yang sudah
// kadaluarsa tiap jam, supaya tabelnya tidak tumbuh tanpa batas.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			res := db.Where("expired_at < ?", time.Now()).
				Delete(&authModel.TokenBlacklistModel{})
			if res.Error != nil {
				log.Printf("[WARN] Gagal membersihkan token blacklist: %v", res.Error)
				continue
			}
			if res.RowsAffected > 0 {
				log.Printf("🧹 Blacklist cleanup: %d token kadaluarsa dihapus", res.RowsAffected)
			}
		}
	}()
}
