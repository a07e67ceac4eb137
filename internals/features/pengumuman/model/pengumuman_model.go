// internals/features/pengumuman/model/pengumuman_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// PengumumanModel: informasi broadcast untuk operator. Tidak ada siklus hidup
// selain ada/tidak ada.
type PengumumanModel struct {
	PengumumanID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:pengumuman_id" json:"id"`
	PengumumanJudul     string    `gorm:"size:200;not null;column:pengumuman_judul" json:"judul"`
	PengumumanIsi       string    `gorm:"type:text;not null;column:pengumuman_isi" json:"isi"`
	PengumumanCreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;column:pengumuman_created_at" json:"created_at"`
}

func (PengumumanModel) TableName() string { return "pengumuman" }
