// internals/features/laporan/sections/controller/section_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	lapModel "madrasahku_backend/internals/features/laporan/laporan/model"
	sectionDTO "madrasahku_backend/internals/features/laporan/sections/dto"
	sectionModel "madrasahku_backend/internals/features/laporan/sections/model"
	constants "madrasahku_backend/internals/constants"
	helper "madrasahku_backend/internals/helpers"
)

// SectionController melayani GET/PUT per section:
// /laporan/:id/{siswa,rekap-personal,guru,sarpras,mobiler,keuangan}.
// PUT mengganti seluruh baris section (upsert idempoten); urutan baris ikut
// posisi array pada payload.
type SectionController struct {
	DB *gorm.DB
}

func NewSectionController(db *gorm.DB) *SectionController {
	return &SectionController{DB: db}
}

/* ================= Guards ================= */

// loadLaporan: ambil laporan aktif + scope operator.
func (h *SectionController) loadLaporan(c *fiber.Ctx) (*lapModel.LaporanModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID laporan tidak valid")
	}

	var m lapModel.LaporanModel
	if err := h.DB.Where("laporan_id = ?", id).First(&m).Error; err != nil {
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

// guardEditable: PUT section hanya saat draft/revisi, dan hanya oleh operator.
func (h *SectionController) guardEditable(c *fiber.Ctx) (*lapModel.LaporanModel, error) {
	m, err := h.loadLaporan(c)
	if err != nil {
		return nil, err
	}
	acts := lapModel.AllowedActions(m.LaporanStatus, helper.GetRoleFromToken(c), false)
	if !acts.Has(lapModel.ActionEditSections) {
		return nil, fiber.NewError(fiber.StatusForbidden,
			"Section hanya bisa diubah saat laporan berstatus draft atau revisi")
	}
	return m, nil
}

/* ================= Siswa ================= */

func (h *SectionController) GetSiswa(c *fiber.Ctx) error {
	m, err := h.loadLaporan(c)
	if err != nil {
		return err
	}
	rows := []sectionModel.LaporanSiswaModel{}
	if err := h.DB.Where("siswa_laporan_id = ?", m.LaporanID).Order("siswa_urutan ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"data":   rows,
		"footer": sectionDTO.HitungSiswaFooter(rows),
	})
}

func (h *SectionController) PutSiswa(c *fiber.Ctx) error {
	m, err := h.guardEditable(c)
	if err != nil {
		return err
	}
	var body struct {
		Data []sectionModel.LaporanSiswaModel `json:"data"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("siswa_laporan_id = ?", m.LaporanID).Delete(&sectionModel.LaporanSiswaModel{}).Error; err != nil {
			return err
		}
		for i := range body.Data {
			body.Data[i].SiswaID = uuid.Nil
			body.Data[i].SiswaLaporanID = m.LaporanID
			body.Data[i].SiswaUrutan = i
		}
		if len(body.Data) == 0 {
			return nil
		}
		return tx.Create(&body.Data).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data siswa")
	}
	return helper.JsonUpdated(c, "Data siswa tersimpan", fiber.Map{
		"jumlah_baris": len(body.Data),
		"footer":       sectionDTO.HitungSiswaFooter(body.Data),
	})
}

/* ================= Rekap Personal ================= */

func (h *SectionController) GetRekapPersonal(c *fiber.Ctx) error {
	m, err := h.loadLaporan(c)
	if err != nil {
		return err
	}
	rows := []sectionModel.LaporanRekapPersonalModel{}
	if err := h.DB.Where("rekap_laporan_id = ?", m.LaporanID).Order("rekap_urutan ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil rekap personal")
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"data":   rows,
		"footer": sectionDTO.HitungRekapPersonalFooter(rows),
	})
}

func (h *SectionController) PutRekapPersonal(c *fiber.Ctx) error {
	m, err := h.guardEditable(c)
	if err != nil {
		return err
	}
	var body struct {
		Data []sectionModel.LaporanRekapPersonalModel `json:"data"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("rekap_laporan_id = ?", m.LaporanID).Delete(&sectionModel.LaporanRekapPersonalModel{}).Error; err != nil {
			return err
		}
		for i := range body.Data {
			body.Data[i].RekapID = uuid.Nil
			body.Data[i].RekapLaporanID = m.LaporanID
			body.Data[i].RekapUrutan = i
		}
		if len(body.Data) == 0 {
			return nil
		}
		return tx.Create(&body.Data).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan rekap personal")
	}
	return helper.JsonUpdated(c, "Rekap personal tersimpan", fiber.Map{
		"jumlah_baris": len(body.Data),
		"footer":       sectionDTO.HitungRekapPersonalFooter(body.Data),
	})
}

/* ================= Guru ================= */

func (h *SectionController) GetGuru(c *fiber.Ctx) error {
	m, err := h.loadLaporan(c)
	if err != nil {
		return err
	}
	rows := []sectionModel.LaporanGuruModel{}
	if err := h.DB.Where("guru_laporan_id = ?", m.LaporanID).Order("guru_urutan ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data guru")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"data": rows})
}

func (h *SectionController) PutGuru(c *fiber.Ctx) error {
	m, err := h.guardEditable(c)
	if err != nil {
		return err
	}
	var body struct {
		Data []sectionModel.LaporanGuruModel `json:"data"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	for i := range body.Data {
		switch body.Data[i].MutasiStatus {
		case "aktif", "masuk", "keluar":
		case "":
			body.Data[i].MutasiStatus = "aktif"
		default:
			return helper.JsonError(c, fiber.StatusBadRequest, "mutasi_status harus aktif/masuk/keluar")
		}
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("guru_laporan_id = ?", m.LaporanID).Delete(&sectionModel.LaporanGuruModel{}).Error; err != nil {
			return err
		}
		for i := range body.Data {
			body.Data[i].GuruID = uuid.Nil
			body.Data[i].GuruLaporanID = m.LaporanID
			body.Data[i].GuruUrutan = i
		}
		if len(body.Data) == 0 {
			return nil
		}
		return tx.Create(&body.Data).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data guru")
	}
	return helper.JsonUpdated(c, "Data guru tersimpan", fiber.Map{"jumlah_baris": len(body.Data)})
}

/* ================= Sarpras ================= */

func (h *SectionController) GetSarpras(c *fiber.Ctx) error {
	m, err := h.loadLaporan(c)
	if err != nil {
		return err
	}
	rows := []sectionModel.LaporanSarprasModel{}
	if err := h.DB.Where("sarpras_laporan_id = ?", m.LaporanID).Order("sarpras_urutan ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data sarpras")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"data": rows})
}

func (h *SectionController) PutSarpras(c *fiber.Ctx) error {
	m, err := h.guardEditable(c)
	if err != nil {
		return err
	}
	var body struct {
		Data []sectionModel.LaporanSarprasModel `json:"data"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sarpras_laporan_id = ?", m.LaporanID).Delete(&sectionModel.LaporanSarprasModel{}).Error; err != nil {
			return err
		}
		for i := range body.Data {
			body.Data[i].SarprasID = uuid.Nil
			body.Data[i].SarprasLaporanID = m.LaporanID
			body.Data[i].SarprasUrutan = i
		}
		if len(body.Data) == 0 {
			return nil
		}
		return tx.Create(&body.Data).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data sarpras")
	}
	return helper.JsonUpdated(c, "Data sarpras tersimpan", fiber.Map{"jumlah_baris": len(body.Data)})
}

/* ================= Mobiler ================= */

func (h *SectionController) GetMobiler(c *fiber.Ctx) error {
	m, err := h.loadLaporan(c)
	if err != nil {
		return err
	}
	rows := []sectionModel.LaporanMobilerModel{}
	if err := h.DB.Where("mobiler_laporan_id = ?", m.LaporanID).Order("mobiler_urutan ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data mobiler")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"data": rows})
}

func (h *SectionController) PutMobiler(c *fiber.Ctx) error {
	m, err := h.guardEditable(c)
	if err != nil {
		return err
	}
	var body struct {
		Data []sectionModel.LaporanMobilerModel `json:"data"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("mobiler_laporan_id = ?", m.LaporanID).Delete(&sectionModel.LaporanMobilerModel{}).Error; err != nil {
			return err
		}
		for i := range body.Data {
			body.Data[i].MobilerID = uuid.Nil
			body.Data[i].MobilerLaporanID = m.LaporanID
			body.Data[i].MobilerUrutan = i
		}
		if len(body.Data) == 0 {
			return nil
		}
		return tx.Create(&body.Data).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data mobiler")
	}
	return helper.JsonUpdated(c, "Data mobiler tersimpan", fiber.Map{"jumlah_baris": len(body.Data)})
}

/* ================= Keuangan ================= */

func (h *SectionController) GetKeuangan(c *fiber.Ctx) error {
	m, err := h.loadLaporan(c)
	if err != nil {
		return err
	}
	rows := []sectionModel.LaporanKeuanganModel{}
	if err := h.DB.Where("keuangan_laporan_id = ?", m.LaporanID).Order("keuangan_urutan ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data keuangan")
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"data":   sectionDTO.NewKeuanganRows(rows),
		"footer": sectionDTO.HitungKeuanganFooter(rows),
	})
}

func (h *SectionController) PutKeuangan(c *fiber.Ctx) error {
	m, err := h.guardEditable(c)
	if err != nil {
		return err
	}
	var body struct {
		Data []sectionModel.LaporanKeuanganModel `json:"data"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("keuangan_laporan_id = ?", m.LaporanID).Delete(&sectionModel.LaporanKeuanganModel{}).Error; err != nil {
			return err
		}
		for i := range body.Data {
			body.Data[i].KeuanganID = uuid.Nil
			body.Data[i].KeuanganLaporanID = m.LaporanID
			body.Data[i].KeuanganUrutan = i
		}
		if len(body.Data) == 0 {
			return nil
		}
		return tx.Create(&body.Data).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data keuangan")
	}
	return helper.JsonUpdated(c, "Data keuangan tersimpan", fiber.Map{
		"jumlah_baris": len(body.Data),
		"footer":       sectionDTO.HitungKeuanganFooter(body.Data),
	})
}
