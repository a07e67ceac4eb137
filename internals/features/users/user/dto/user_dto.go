// internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "madrasahku_backend/internals/features/users/user/model"
)

type CreateUserRequest struct {
	Username   string     `json:"username" validate:"required,min=3,max=50"`
	Password   string     `json:"password" validate:"required,min=6"`
	Role       string     `json:"role" validate:"required,oneof=operator_sekolah staff_penmad kasi_penmad"`
	MadrasahID *uuid.UUID `json:"id_madrasah"` // wajib iff role operator_sekolah
}

// Update: password kosong = tidak diganti.
type UpdateUserRequest struct {
	Username   *string    `json:"username" validate:"omitempty,min=3,max=50"`
	Password   *string    `json:"password" validate:"omitempty,min=6"`
	Role       *string    `json:"role" validate:"omitempty,oneof=operator_sekolah staff_penmad kasi_penmad"`
	MadrasahID *uuid.UUID `json:"id_madrasah"`
}

// UserResponse melengkapi baris user dengan nama madrasah untuk tabel master.
type UserResponse struct {
	UserID       uuid.UUID  `json:"id"`
	Username     string     `json:"username"`
	Role         string     `json:"role"`
	MadrasahID   *uuid.UUID `json:"id_madrasah,omitempty"`
	NamaMadrasah string     `json:"madrasah,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

func NewUserResponse(m *model.UserModel) *UserResponse {
	if m == nil {
		return nil
	}
	resp := &UserResponse{
		UserID:     m.UserID,
		Username:   m.UserUsername,
		Role:       m.UserRole,
		MadrasahID: m.UserMadrasahID,
		CreatedAt:  m.UserCreatedAt,
		UpdatedAt:  m.UserUpdatedAt,
	}
	if m.Madrasah != nil {
		resp.NamaMadrasah = m.Madrasah.MadrasahNama
	}
	return resp
}

func NewUserResponses(rows []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *NewUserResponse(&rows[i]))
	}
	return out
}
