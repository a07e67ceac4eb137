// internals/features/logs/service/recorder.go
package service

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	logModel "madrasahku_backend/internals/features/logs/model"
	helper "madrasahku_backend/internals/helpers"
)

// RecordMeta menulis satu entri log aktivitas dengan konteks terstruktur.
// Kegagalan mencatat tidak boleh menggagalkan operasi utamanya; cukup dicatat
// ke console.
func RecordMeta(db *gorm.DB, username, role, action, subject, details string, meta map[string]any) {
	entry := logModel.ActivityLogModel{
		LogUsername: username,
		LogRole:     role,
		LogAction:   action,
		LogSubject:  subject,
		LogDetails:  details,
	}
	if len(meta) > 0 {
		entry.LogMeta = datatypes.JSONMap(meta)
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Printf("[WARN] gagal mencatat log aktivitas (%s): %v", action, err)
	}
}

// Record: varian tanpa meta.
func Record(db *gorm.DB, username, role, action, subject, details string) {
	RecordMeta(db, username, role, action, subject, details, nil)
}

// RecordFromCtx mengambil username & role dari Locals lalu mencatat.
func RecordFromCtx(c *fiber.Ctx, db *gorm.DB, action, subject, details string) {
	Record(db, helper.GetUserNameFromToken(c), helper.GetRoleFromToken(c), action, subject, details)
}

// RecordFromCtxMeta: RecordFromCtx + konteks terstruktur.
func RecordFromCtxMeta(c *fiber.Ctx, db *gorm.DB, action, subject, details string, meta map[string]any) {
	RecordMeta(db, helper.GetUserNameFromToken(c), helper.GetRoleFromToken(c), action, subject, details, meta)
}
