// internals/features/laporan/laporan/dto/laporan_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "madrasahku_backend/internals/features/laporan/laporan/model"
	sectionModel "madrasahku_backend/internals/features/laporan/sections/model"
)

/* ===================== REQUESTS ===================== */

// Create: id_madrasah diambil dari token operator (bukan dari body)
type CreateLaporanRequest struct {
	BulanTahun string `json:"bulan_tahun" validate:"required,datetime=2006-01-02"` // YYYY-MM-01
}

func (r CreateLaporanRequest) ToModel(madrasahID uuid.UUID) *model.LaporanModel {
	d, _ := time.Parse("2006-01-02", strings.TrimSpace(r.BulanTahun))
	// normalisasi ke tanggal 1
	d = time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	return &model.LaporanModel{
		LaporanMadrasahID: madrasahID,
		LaporanBulanTahun: d,
		LaporanStatus:     model.StatusDraft,
	}
}

// Verify: keputusan reviewer. status harus verified atau revisi;
// catatan_revisi wajib non-kosong saat revisi.
type VerifyLaporanRequest struct {
	Status        string  `json:"status" validate:"required,oneof=verified revisi"`
	CatatanRevisi *string `json:"catatan_revisi"`
}

type ListLaporanQuery struct {
	Trashed int     `query:"trashed"` // 0 = aktif (default), 1 = tempat sampah
	Bulan   *string `query:"bulan"`   // filter YYYY-MM
	Status  *string `query:"status"`
}

/* ===================== RESPONSES ===================== */

type LaporanResponse struct {
	LaporanID     uuid.UUID  `json:"id_laporan"`
	MadrasahID    uuid.UUID  `json:"id_madrasah"`
	NamaMadrasah  string     `json:"madrasah,omitempty"`
	BulanTahun    string     `json:"bulan_tahun"`
	Status        string     `json:"status_laporan"`
	CatatanRevisi *string    `json:"catatan_revisi,omitempty"`
	SubmittedAt   *time.Time `json:"submitted_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
	Trashed       bool       `json:"trashed"`

	// Aksi yang diizinkan untuk pemanggil; dipakai UI untuk menampilkan tombol,
	// server tetap memvalidasi ulang di tiap endpoint.
	AllowedActions []string `json:"allowed_actions"`
}

func NewLaporanResponse(m *model.LaporanModel, role string) *LaporanResponse {
	if m == nil {
		return nil
	}
	trashed := m.LaporanDeletedAt.Valid
	acts := model.AllowedActions(m.LaporanStatus, role, trashed)
	names := make([]string, 0, len(acts))
	for _, a := range []model.Action{
		model.ActionEditSections, model.ActionSubmit, model.ActionVerify,
		model.ActionRevisi, model.ActionSoftDelete, model.ActionRestore,
		model.ActionPermanentDelete,
	} {
		if acts.Has(a) {
			names = append(names, string(a))
		}
	}

	resp := &LaporanResponse{
		LaporanID:      m.LaporanID,
		MadrasahID:     m.LaporanMadrasahID,
		BulanTahun:     m.LaporanBulanTahun.Format("2006-01-02"),
		Status:         string(m.LaporanStatus),
		CatatanRevisi:  m.LaporanCatatanRevisi,
		SubmittedAt:    m.LaporanSubmittedAt,
		CreatedAt:      m.LaporanCreatedAt,
		UpdatedAt:      m.LaporanUpdatedAt,
		Trashed:        trashed,
		AllowedActions: names,
	}
	if m.Madrasah != nil {
		resp.NamaMadrasah = m.Madrasah.MadrasahNama
	}
	return resp
}

// LaporanDetailResponse: laporan + seluruh isi enam section.
type LaporanDetailResponse struct {
	LaporanResponse
	Siswa         []sectionModel.LaporanSiswaModel         `json:"siswa"`
	RekapPersonal []sectionModel.LaporanRekapPersonalModel `json:"rekap_personal"`
	Guru          []sectionModel.LaporanGuruModel          `json:"guru"`
	Sarpras       []sectionModel.LaporanSarprasModel       `json:"sarpras"`
	Mobiler       []sectionModel.LaporanMobilerModel       `json:"mobiler"`
	Keuangan      []sectionModel.LaporanKeuanganModel      `json:"keuangan"`
}
