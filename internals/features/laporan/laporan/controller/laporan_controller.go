// internals/features/laporan/laporan/controller/laporan_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	lapDTO "madrasahku_backend/internals/features/laporan/laporan/dto"
	lapModel "madrasahku_backend/internals/features/laporan/laporan/model"
	sectionModel "madrasahku_backend/internals/features/laporan/sections/model"
	logModel "madrasahku_backend/internals/features/logs/model"
	logService "madrasahku_backend/internals/features/logs/service"
	constants "madrasahku_backend/internals/constants"
	helper "madrasahku_backend/internals/helpers"
)

type LaporanController struct {
	DB *gorm.DB
}

func NewLaporanController(db *gorm.DB) *LaporanController {
	return &LaporanController{DB: db}
}

var validateLaporan = validator.New()

/* ================= Helpers ================= */

func isUniqueErr(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}

// findLaporan mengambil laporan (termasuk yang di tempat sampah bila withTrashed)
// dan menegakkan scope: operator hanya boleh menyentuh laporan madrasahnya sendiri.
func (h *LaporanController) findLaporan(c *fiber.Ctx, withTrashed bool) (*lapModel.LaporanModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID laporan tidak valid")
	}

	tx := h.DB
	if withTrashed {
		tx = tx.Unscoped()
	}

	var m lapModel.LaporanModel
	if err := tx.Preload("Madrasah").Where("laporan_id = ?", id).First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Laporan tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}

	if helper.GetRoleFromToken(c) == constants.RoleOperatorSekolah {
		madrasahID, err := helper.GetMadrasahIDFromToken(c)
		if err != nil {
			return nil, err
		}
		if m.LaporanMadrasahID != madrasahID {
			return nil, fiber.NewError(fiber.StatusForbidden, "Laporan ini bukan milik madrasah Anda")
		}
	}
	return &m, nil
}

func (h *LaporanController) guardAction(c *fiber.Ctx, m *lapModel.LaporanModel, action lapModel.Action, denied string) error {
	role := helper.GetRoleFromToken(c)
	acts := lapModel.AllowedActions(m.LaporanStatus, role, m.LaporanDeletedAt.Valid)
	if !acts.Has(action) {
		return fiber.NewError(fiber.StatusForbidden, denied)
	}
	return nil
}

/* ================= Operator ================= */

// POST /laporan — buat laporan baru untuk satu bulan
func (h *LaporanController) Create(c *fiber.Ctx) error {
	madrasahID, err := helper.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}

	var req lapDTO.CreateLaporanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateLaporan.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel(madrasahID)
	if err := h.DB.Create(m).Error; err != nil {
		if isUniqueErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Laporan untuk bulan tersebut sudah ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat laporan")
	}

	role := helper.GetRoleFromToken(c)
	return helper.JsonCreated(c, "Laporan berhasil dibuat", lapDTO.NewLaporanResponse(m, role))
}

// GET /laporan/:id — detail laporan + enam section
func (h *LaporanController) GetDetail(c *fiber.Ctx) error {
	m, err := h.findLaporan(c, true)
	if err != nil {
		return err
	}

	role := helper.GetRoleFromToken(c)
	detail := lapDTO.LaporanDetailResponse{
		LaporanResponse: *lapDTO.NewLaporanResponse(m, role),
		Siswa:           []sectionModel.LaporanSiswaModel{},
		RekapPersonal:   []sectionModel.LaporanRekapPersonalModel{},
		Guru:            []sectionModel.LaporanGuruModel{},
		Sarpras:         []sectionModel.LaporanSarprasModel{},
		Mobiler:         []sectionModel.LaporanMobilerModel{},
		Keuangan:        []sectionModel.LaporanKeuanganModel{},
	}

	id := m.LaporanID
	if err := h.DB.Where("siswa_laporan_id = ?", id).Order("siswa_urutan ASC").Find(&detail.Siswa).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}
	if err := h.DB.Where("rekap_laporan_id = ?", id).Order("rekap_urutan ASC").Find(&detail.RekapPersonal).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil rekap personal")
	}
	if err := h.DB.Where("guru_laporan_id = ?", id).Order("guru_urutan ASC").Find(&detail.Guru).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data guru")
	}
	if err := h.DB.Where("sarpras_laporan_id = ?", id).Order("sarpras_urutan ASC").Find(&detail.Sarpras).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data sarpras")
	}
	if err := h.DB.Where("mobiler_laporan_id = ?", id).Order("mobiler_urutan ASC").Find(&detail.Mobiler).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data mobiler")
	}
	if err := h.DB.Where("keuangan_laporan_id = ?", id).Order("keuangan_urutan ASC").Find(&detail.Keuangan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data keuangan")
	}

	return helper.JsonOK(c, "OK", detail)
}

// POST /laporan/:id/submit — kirim untuk review. Tidak ada "unsubmit".
func (h *LaporanController) Submit(c *fiber.Ctx) error {
	m, err := h.findLaporan(c, false)
	if err != nil {
		return err
	}
	if err := h.guardAction(c, m, lapModel.ActionSubmit,
		"Laporan hanya bisa dikirim saat berstatus draft atau revisi"); err != nil {
		return err
	}

	now := time.Now()
	updates := map[string]any{
		"laporan_status":       lapModel.StatusSubmitted,
		"laporan_submitted_at": now,
		"laporan_updated_at":   now,
	}
	if err := h.DB.Model(m).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim laporan")
	}
	m.LaporanStatus = lapModel.StatusSubmitted
	m.LaporanSubmittedAt = &now

	logService.RecordFromCtxMeta(c, h.DB, logModel.ActionSubmitReport,
		m.LaporanID.String(), "Laporan bulan "+m.LaporanBulanTahun.Format("2006-01"),
		map[string]any{
			"id_laporan": m.LaporanID.String(),
			"bulan":      m.LaporanBulanTahun.Format("2006-01"),
		})

	role := helper.GetRoleFromToken(c)
	return helper.JsonUpdated(c, "Laporan berhasil dikirim", lapDTO.NewLaporanResponse(m, role))
}

/* ================= Reviewer (staff/kasi penmad) ================= */

// GET /admin/laporan?trashed=0|1
func (h *LaporanController) ListAdmin(c *fiber.Ctx) error {
	var q lapDTO.ListLaporanQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}

	tx := h.DB.Model(&lapModel.LaporanModel{}).Preload("Madrasah")
	if q.Trashed == 1 {
		tx = tx.Unscoped().Where("laporan_deleted_at IS NOT NULL")
	}
	if q.Bulan != nil && strings.TrimSpace(*q.Bulan) != "" {
		if d, err := time.Parse("2006-01", strings.TrimSpace(*q.Bulan)); err == nil {
			tx = tx.Where("laporan_bulan_tahun = ?", time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC))
		}
	}
	if q.Status != nil && lapModel.StatusLaporan(*q.Status).Valid() {
		tx = tx.Where("laporan_status = ?", *q.Status)
	}

	var rows []lapModel.LaporanModel
	if err := tx.Order("laporan_bulan_tahun DESC, laporan_created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar laporan")
	}

	role := helper.GetRoleFromToken(c)
	resp := make([]*lapDTO.LaporanResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, lapDTO.NewLaporanResponse(&rows[i], role))
	}
	return helper.JsonOK(c, "OK", resp)
}

// POST /admin/laporan/:id/verify — terima (verified) atau kembalikan (revisi + catatan)
func (h *LaporanController) Verify(c *fiber.Ctx) error {
	m, err := h.findLaporan(c, false)
	if err != nil {
		return err
	}

	var req lapDTO.VerifyLaporanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateLaporan.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	now := time.Now()
	updates := map[string]any{"laporan_updated_at": now}

	switch req.Status {
	case string(lapModel.StatusVerified):
		if err := h.guardAction(c, m, lapModel.ActionVerify,
			"Hanya laporan berstatus submitted yang bisa diverifikasi"); err != nil {
			return err
		}
		updates["laporan_status"] = lapModel.StatusVerified
		updates["laporan_catatan_revisi"] = nil
	case string(lapModel.StatusRevisi):
		if err := h.guardAction(c, m, lapModel.ActionRevisi,
			"Hanya laporan berstatus submitted yang bisa dikembalikan"); err != nil {
			return err
		}
		// Catatan wajib dan disimpan apa adanya (kutip dsb. tidak diubah).
		if req.CatatanRevisi == nil || strings.TrimSpace(*req.CatatanRevisi) == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Catatan revisi wajib diisi saat mengembalikan laporan")
		}
		updates["laporan_status"] = lapModel.StatusRevisi
		updates["laporan_catatan_revisi"] = *req.CatatanRevisi
	}

	if err := h.DB.Model(m).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses verifikasi")
	}

	action := logModel.ActionApproveReport
	detail := "Laporan diverifikasi"
	if req.Status == string(lapModel.StatusRevisi) {
		action = logModel.ActionReviseReport
		detail = "Dikembalikan: " + *req.CatatanRevisi
		m.LaporanStatus = lapModel.StatusRevisi
		m.LaporanCatatanRevisi = req.CatatanRevisi
	} else {
		m.LaporanStatus = lapModel.StatusVerified
		m.LaporanCatatanRevisi = nil
	}
	logService.RecordFromCtxMeta(c, h.DB, action, m.LaporanID.String(), detail,
		map[string]any{
			"id_laporan": m.LaporanID.String(),
			"bulan":      m.LaporanBulanTahun.Format("2006-01"),
		})

	role := helper.GetRoleFromToken(c)
	return helper.JsonUpdated(c, "Keputusan tersimpan", lapDTO.NewLaporanResponse(m, role))
}

/* ================= Tempat sampah (shared) ================= */

// DELETE /laporan/:id & /admin/laporan/:id — soft delete.
// Hanya dari verified atau revisi; tidak pernah saat submitted.
func (h *LaporanController) SoftDelete(c *fiber.Ctx) error {
	m, err := h.findLaporan(c, false)
	if err != nil {
		return err
	}
	if err := h.guardAction(c, m, lapModel.ActionSoftDelete,
		"Laporan hanya bisa dihapus setelah diverifikasi atau dikembalikan (revisi)"); err != nil {
		return err
	}

	if err := h.DB.Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memindahkan ke tempat sampah")
	}

	logService.RecordFromCtxMeta(c, h.DB, logModel.ActionDeleteLaporan,
		m.LaporanID.String(), "Laporan bulan "+m.LaporanBulanTahun.Format("2006-01"),
		map[string]any{
			"id_laporan": m.LaporanID.String(),
			"bulan":      m.LaporanBulanTahun.Format("2006-01"),
		})

	return helper.JsonDeleted(c, "Laporan dipindahkan ke tempat sampah", fiber.Map{
		"id_laporan": m.LaporanID,
	})
}

// POST /laporan/:id/restore — kembalikan dari tempat sampah ke status semula.
func (h *LaporanController) Restore(c *fiber.Ctx) error {
	m, err := h.findLaporan(c, true)
	if err != nil {
		return err
	}
	if err := h.guardAction(c, m, lapModel.ActionRestore,
		"Hanya laporan di tempat sampah yang bisa dipulihkan"); err != nil {
		return err
	}

	if err := h.DB.Unscoped().Model(m).Update("laporan_deleted_at", nil).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulihkan laporan")
	}
	m.LaporanDeletedAt = gorm.DeletedAt{}

	logService.RecordFromCtxMeta(c, h.DB, logModel.ActionRestoreLaporan,
		m.LaporanID.String(), "Status kembali ke "+string(m.LaporanStatus),
		map[string]any{
			"id_laporan": m.LaporanID.String(),
			"bulan":      m.LaporanBulanTahun.Format("2006-01"),
		})

	role := helper.GetRoleFromToken(c)
	return helper.JsonUpdated(c, "Laporan dipulihkan", lapDTO.NewLaporanResponse(m, role))
}

// DELETE /laporan/:id/permanent — hapus permanen beserta isi section-nya.
func (h *LaporanController) PermanentDelete(c *fiber.Ctx) error {
	m, err := h.findLaporan(c, true)
	if err != nil {
		return err
	}
	if err := h.guardAction(c, m, lapModel.ActionPermanentDelete,
		"Hanya laporan di tempat sampah yang bisa dihapus permanen"); err != nil {
		return err
	}

	id := m.LaporanID
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("siswa_laporan_id = ?", id).Delete(&sectionModel.LaporanSiswaModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("rekap_laporan_id = ?", id).Delete(&sectionModel.LaporanRekapPersonalModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("guru_laporan_id = ?", id).Delete(&sectionModel.LaporanGuruModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("sarpras_laporan_id = ?", id).Delete(&sectionModel.LaporanSarprasModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("mobiler_laporan_id = ?", id).Delete(&sectionModel.LaporanMobilerModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("keuangan_laporan_id = ?", id).Delete(&sectionModel.LaporanKeuanganModel{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Where("laporan_id = ?", id).Delete(&lapModel.LaporanModel{}).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus laporan secara permanen")
	}

	logService.RecordFromCtxMeta(c, h.DB, logModel.ActionPermanentDelete,
		id.String(), "Laporan bulan "+m.LaporanBulanTahun.Format("2006-01"),
		map[string]any{
			"id_laporan": id.String(),
			"bulan":      m.LaporanBulanTahun.Format("2006-01"),
		})

	return helper.JsonDeleted(c, "Laporan dihapus permanen", fiber.Map{
		"id_laporan": id,
	})
}
