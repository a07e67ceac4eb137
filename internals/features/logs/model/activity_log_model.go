// internals/features/logs/model/activity_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Kode aksi yang dicatat ke log aktivitas.
const (
	ActionLogin            = "LOGIN"
	ActionLogout           = "LOGOUT"
	ActionCreateUser       = "CREATE_USER"
	ActionUpdateUser       = "UPDATE_USER"
	ActionDeleteUser       = "DELETE_USER"
	ActionSubmitReport     = "SUBMIT_REPORT"
	ActionApproveReport    = "APPROVE_REPORT"
	ActionReviseReport     = "REVISE_REPORT"
	ActionDeleteLaporan    = "DELETE_LAPORAN"
	ActionRestoreLaporan   = "RESTORE_LAPORAN"
	ActionPermanentDelete  = "PERMANENT_DELETE_LAPORAN"
	ActionCreateMadrasah   = "CREATE_MADRASAH"
	ActionUpdateMadrasah   = "UPDATE_MADRASAH"
	ActionDeleteMadrasah   = "DELETE_MADRASAH"
	ActionUpdateProfile    = "UPDATE_PROFILE"
	ActionCreatePengumuman = "CREATE_ANNOUNCEMENT"
	ActionDeletePengumuman = "DELETE_ANNOUNCEMENT"
)

// ActivityLogModel append-only dari sisi aplikasi; hanya kasi yang boleh
// menghapus (satuan atau bulk).
type ActivityLogModel struct {
	LogID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:log_id" json:"id"`
	LogUsername  string    `gorm:"size:50;not null;column:log_username" json:"username"`
	LogRole      string    `gorm:"size:30;not null;column:log_role" json:"role"`
	LogAction    string    `gorm:"size:50;not null;index;column:log_action" json:"action"`
	LogSubject   string    `gorm:"size:200;column:log_subject" json:"subject"`
	LogDetails   string    `gorm:"type:text;column:log_details" json:"details"`
	LogCreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index;column:log_created_at" json:"created_at"`

	// Konteks terstruktur (id_laporan, bulan, dst.) untuk filter di sisi query;
	// log_details tetap teks bebas untuk dibaca manusia.
	LogMeta datatypes.JSONMap `gorm:"type:jsonb;column:log_meta" json:"meta,omitempty"`
}

func (ActivityLogModel) TableName() string { return "activity_logs" }
