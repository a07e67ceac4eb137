// internals/features/madrasah/dto/madrasah_dto.go
package dto

import (
	model "madrasahku_backend/internals/features/madrasah/model"
)

type CreateMadrasahRequest struct {
	Nama string  `json:"nama_madrasah" validate:"required,min=3,max=200"`
	NPSN string  `json:"npsn" validate:"required,min=5,max=20"`
	NSM  *string `json:"nsm" validate:"omitempty,max=20"`

	Alamat    *string `json:"alamat"`
	Kecamatan *string `json:"kecamatan" validate:"omitempty,max=100"`
	Kabupaten *string `json:"kabupaten" validate:"omitempty,max=100"`
	Latitude  *string `json:"latitude" validate:"omitempty,max=50"`
	Longitude *string `json:"longitude" validate:"omitempty,max=50"`

	NamaKepala *string `json:"nama_kepala" validate:"omitempty,max=150"`
	NIPKepala  *string `json:"nip_kepala" validate:"omitempty,max=30"`
	TelpKepala *string `json:"telp_kepala" validate:"omitempty,max=30"`
	Email      *string `json:"email_madrasah" validate:"omitempty,email"`
}

func (r CreateMadrasahRequest) ToModel() *model.MadrasahModel {
	return &model.MadrasahModel{
		MadrasahNama:        r.Nama,
		MadrasahNPSN:        r.NPSN,
		MadrasahNSM:         r.NSM,
		MadrasahAlamat:      r.Alamat,
		MadrasahKecamatan:   r.Kecamatan,
		MadrasahKabupaten:   r.Kabupaten,
		MadrasahLatitude:    r.Latitude,
		MadrasahLongitude:   r.Longitude,
		MadrasahNamaKepala:  r.NamaKepala,
		MadrasahNIPKepala:   r.NIPKepala,
		MadrasahTelpKepala:  r.TelpKepala,
		MadrasahEmail:       r.Email,
		MadrasahStatusAktif: 1,
	}
}

// Update: semua pointer; field yang nil tidak disentuh.
// status_aktif ikut di sini supaya toggle aktif/nonaktif cukup satu endpoint.
type UpdateMadrasahRequest struct {
	Nama *string `json:"nama_madrasah" validate:"omitempty,min=3,max=200"`
	NPSN *string `json:"npsn" validate:"omitempty,min=5,max=20"`
	NSM  *string `json:"nsm" validate:"omitempty,max=20"`

	Alamat    *string `json:"alamat"`
	Kecamatan *string `json:"kecamatan" validate:"omitempty,max=100"`
	Kabupaten *string `json:"kabupaten" validate:"omitempty,max=100"`
	Latitude  *string `json:"latitude" validate:"omitempty,max=50"`
	Longitude *string `json:"longitude" validate:"omitempty,max=50"`

	NamaKepala *string `json:"nama_kepala" validate:"omitempty,max=150"`
	NIPKepala  *string `json:"nip_kepala" validate:"omitempty,max=30"`
	TelpKepala *string `json:"telp_kepala" validate:"omitempty,max=30"`
	Email      *string `json:"email_madrasah" validate:"omitempty,email"`

	StatusAktif *int `json:"status_aktif" validate:"omitempty,oneof=0 1"`
}

func (r UpdateMadrasahRequest) Apply(m *model.MadrasahModel) {
	if r.Nama != nil {
		m.MadrasahNama = *r.Nama
	}
	if r.NPSN != nil {
		m.MadrasahNPSN = *r.NPSN
	}
	if r.NSM != nil {
		m.MadrasahNSM = r.NSM
	}
	if r.Alamat != nil {
		m.MadrasahAlamat = r.Alamat
	}
	if r.Kecamatan != nil {
		m.MadrasahKecamatan = r.Kecamatan
	}
	if r.Kabupaten != nil {
		m.MadrasahKabupaten = r.Kabupaten
	}
	if r.Latitude != nil {
		m.MadrasahLatitude = r.Latitude
	}
	if r.Longitude != nil {
		m.MadrasahLongitude = r.Longitude
	}
	if r.NamaKepala != nil {
		m.MadrasahNamaKepala = r.NamaKepala
	}
	if r.NIPKepala != nil {
		m.MadrasahNIPKepala = r.NIPKepala
	}
	if r.TelpKepala != nil {
		m.MadrasahTelpKepala = r.TelpKepala
	}
	if r.Email != nil {
		m.MadrasahEmail = r.Email
	}
	if r.StatusAktif != nil {
		m.MadrasahStatusAktif = *r.StatusAktif
	}
}

// UpdateProfilMadrasahRequest: versi operator — identitas administratif
// (NPSN/NSM/status) dikunci, hanya data profil yang bisa diubah.
type UpdateProfilMadrasahRequest struct {
	Alamat    *string `json:"alamat"`
	Kecamatan *string `json:"kecamatan" validate:"omitempty,max=100"`
	Kabupaten *string `json:"kabupaten" validate:"omitempty,max=100"`
	Latitude  *string `json:"latitude" validate:"omitempty,max=50"`
	Longitude *string `json:"longitude" validate:"omitempty,max=50"`

	NamaKepala *string `json:"nama_kepala" validate:"omitempty,max=150"`
	NIPKepala  *string `json:"nip_kepala" validate:"omitempty,max=30"`
	TelpKepala *string `json:"telp_kepala" validate:"omitempty,max=30"`
	Email      *string `json:"email_madrasah" validate:"omitempty,email"`
}

func (r UpdateProfilMadrasahRequest) Apply(m *model.MadrasahModel) {
	if r.Alamat != nil {
		m.MadrasahAlamat = r.Alamat
	}
	if r.Kecamatan != nil {
		m.MadrasahKecamatan = r.Kecamatan
	}
	if r.Kabupaten != nil {
		m.MadrasahKabupaten = r.Kabupaten
	}
	if r.Latitude != nil {
		m.MadrasahLatitude = r.Latitude
	}
	if r.Longitude != nil {
		m.MadrasahLongitude = r.Longitude
	}
	if r.NamaKepala != nil {
		m.MadrasahNamaKepala = r.NamaKepala
	}
	if r.NIPKepala != nil {
		m.MadrasahNIPKepala = r.NIPKepala
	}
	if r.TelpKepala != nil {
		m.MadrasahTelpKepala = r.TelpKepala
	}
	if r.Email != nil {
		m.MadrasahEmail = r.Email
	}
}
