// internals/features/madrasah/model/madrasah_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MadrasahModel struct {
	MadrasahID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:madrasah_id" json:"id_madrasah"`

	MadrasahNama string  `gorm:"size:200;not null;column:madrasah_nama" json:"nama_madrasah"`
	MadrasahNPSN string  `gorm:"size:20;not null;unique;column:madrasah_npsn" json:"npsn"`
	MadrasahNSM  *string `gorm:"size:20;column:madrasah_nsm" json:"nsm,omitempty"`

	MadrasahAlamat    *string `gorm:"type:text;column:madrasah_alamat" json:"alamat,omitempty"`
	MadrasahKecamatan *string `gorm:"size:100;column:madrasah_kecamatan" json:"kecamatan,omitempty"`
	MadrasahKabupaten *string `gorm:"size:100;column:madrasah_kabupaten" json:"kabupaten,omitempty"`
	MadrasahLatitude  *string `gorm:"size:50;column:madrasah_latitude" json:"latitude,omitempty"`
	MadrasahLongitude *string `gorm:"size:50;column:madrasah_longitude" json:"longitude,omitempty"`

	MadrasahNamaKepala *string `gorm:"size:150;column:madrasah_nama_kepala" json:"nama_kepala,omitempty"`
	MadrasahNIPKepala  *string `gorm:"size:30;column:madrasah_nip_kepala" json:"nip_kepala,omitempty"`
	MadrasahTelpKepala *string `gorm:"size:30;column:madrasah_telp_kepala" json:"telp_kepala,omitempty"`
	MadrasahEmail      *string `gorm:"size:255;column:madrasah_email" json:"email_madrasah,omitempty"`

	// Flag aktif berdiri sendiri; di-toggle terpisah dari form edit.
	MadrasahStatusAktif int `gorm:"not null;default:1;column:madrasah_status_aktif" json:"status_aktif"`

	MadrasahCreatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP;column:madrasah_created_at" json:"created_at"`
	MadrasahUpdatedAt *time.Time     `gorm:"column:madrasah_updated_at" json:"updated_at,omitempty"`
	MadrasahDeletedAt gorm.DeletedAt `gorm:"column:madrasah_deleted_at;index" json:"-"`
}

func (MadrasahModel) TableName() string { return "madrasah" }
