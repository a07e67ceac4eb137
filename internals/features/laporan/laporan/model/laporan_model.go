// internals/features/laporan/laporan/model/laporan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	madrasahModel "madrasahku_backend/internals/features/madrasah/model"
)

type LaporanModel struct {
	LaporanID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:laporan_id" json:"id_laporan"`
	LaporanMadrasahID uuid.UUID `gorm:"type:uuid;not null;column:laporan_madrasah_id;uniqueIndex:uq_laporan_madrasah_bulan" json:"id_madrasah"`

	// Periode laporan: selalu tanggal 1 bulan berjalan (YYYY-MM-01)
	LaporanBulanTahun time.Time     `gorm:"type:date;not null;column:laporan_bulan_tahun;uniqueIndex:uq_laporan_madrasah_bulan" json:"bulan_tahun"`
	LaporanStatus     StatusLaporan `gorm:"type:varchar(20);not null;default:'draft';column:laporan_status" json:"status_laporan"`

	// Wajib terisi hanya saat status = revisi; ditampilkan apa adanya ke operator
	LaporanCatatanRevisi *string `gorm:"type:text;column:laporan_catatan_revisi" json:"catatan_revisi,omitempty"`

	LaporanSubmittedAt *time.Time     `gorm:"column:laporan_submitted_at" json:"submitted_at,omitempty"`
	LaporanCreatedAt   time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP;column:laporan_created_at" json:"created_at"`
	LaporanUpdatedAt   *time.Time     `gorm:"column:laporan_updated_at" json:"updated_at,omitempty"`
	LaporanDeletedAt   gorm.DeletedAt `gorm:"column:laporan_deleted_at;index" json:"-"`

	Madrasah *madrasahModel.MadrasahModel `gorm:"foreignKey:LaporanMadrasahID;references:MadrasahID;constraint:OnUpdate:RESTRICT,OnDelete:CASCADE" json:"-"`
}

func (LaporanModel) TableName() string { return "laporan" }
