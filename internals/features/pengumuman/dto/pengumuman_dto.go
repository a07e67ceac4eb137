// internals/features/pengumuman/dto/pengumuman_dto.go
package dto

type CreatePengumumanRequest struct {
	Judul string `json:"judul" validate:"required,min=3,max=200"`
	Isi   string `json:"isi" validate:"required"`
}
