// internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	madrasahModel "madrasahku_backend/internals/features/madrasah/model"
)

// UserModel merepresentasikan tabel users di database.
// Username operator biasanya NPSN/NSM madrasahnya.
type UserModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"id"`
	UserUsername string    `gorm:"size:50;not null;unique;column:user_username" json:"username"`
	UserPassword string    `gorm:"not null;column:user_password" json:"-"`
	UserRole     string    `gorm:"type:varchar(30);not null;column:user_role" json:"role"`

	// Wajib terisi iff role = operator_sekolah
	UserMadrasahID *uuid.UUID `gorm:"type:uuid;column:user_madrasah_id" json:"id_madrasah,omitempty"`

	UserCreatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP;column:user_created_at" json:"created_at"`
	UserUpdatedAt *time.Time     `gorm:"column:user_updated_at" json:"updated_at,omitempty"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`

	Madrasah *madrasahModel.MadrasahModel `gorm:"foreignKey:UserMadrasahID;references:MadrasahID;constraint:OnUpdate:RESTRICT,OnDelete:SET NULL" json:"-"`
}

func (UserModel) TableName() string { return "users" }
