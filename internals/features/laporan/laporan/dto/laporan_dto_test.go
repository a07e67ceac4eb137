package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	model "madrasahku_backend/internals/features/laporan/laporan/model"
)

func TestCreateLaporanRequestToModelNormalisasiTanggal(t *testing.T) {
	madrasahID := uuid.New()
	req := CreateLaporanRequest{BulanTahun: "2026-08-17"}

	m := req.ToModel(madrasahID)
	assert.Equal(t, madrasahID, m.LaporanMadrasahID)
	assert.Equal(t, model.StatusDraft, m.LaporanStatus)
	// tanggal berapapun dinormalisasi ke tanggal 1 bulan itu
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), m.LaporanBulanTahun)
}

func TestNewLaporanResponseAllowedActions(t *testing.T) {
	m := &model.LaporanModel{
		LaporanID:         uuid.New(),
		LaporanMadrasahID: uuid.New(),
		LaporanBulanTahun: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		LaporanStatus:     model.StatusDraft,
	}

	resp := NewLaporanResponse(m, constants.RoleOperatorSekolah)
	require.NotNil(t, resp)
	assert.Equal(t, "2026-08-01", resp.BulanTahun)
	assert.False(t, resp.Trashed)
	assert.Equal(t, []string{"edit_sections", "submit"}, resp.AllowedActions)

	// reviewer tidak dapat aksi apapun atas draft
	resp = NewLaporanResponse(m, constants.RoleStaffPenmad)
	assert.Empty(t, resp.AllowedActions)
}

func TestNewLaporanResponseTrashed(t *testing.T) {
	m := &model.LaporanModel{
		LaporanID:         uuid.New(),
		LaporanMadrasahID: uuid.New(),
		LaporanBulanTahun: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		LaporanStatus:     model.StatusVerified,
		LaporanDeletedAt:  gorm.DeletedAt{Time: time.Now(), Valid: true},
	}

	resp := NewLaporanResponse(m, constants.RoleOperatorSekolah)
	assert.True(t, resp.Trashed)
	assert.Equal(t, []string{"restore", "permanent_delete"}, resp.AllowedActions)
}

func TestNewLaporanResponseNil(t *testing.T) {
	assert.Nil(t, NewLaporanResponse(nil, constants.RoleKasiPenmad))
}
