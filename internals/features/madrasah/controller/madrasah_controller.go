// internals/features/madrasah/controller/madrasah_controller.go
package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "madrasahku_backend/internals/features/madrasah/dto"
	model "madrasahku_backend/internals/features/madrasah/model"
	logModel "madrasahku_backend/internals/features/logs/model"
	logService "madrasahku_backend/internals/features/logs/service"
	helper "madrasahku_backend/internals/helpers"
)

var validateMadrasah = validator.New()

type MadrasahController struct {
	DB *gorm.DB
}

func NewMadrasahController(db *gorm.DB) *MadrasahController {
	return &MadrasahController{DB: db}
}

func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

/* ================= Master (penmad) ================= */

// GET /master/madrasah — daftar lengkap, dipakai tabel master data.
func (h *MadrasahController) List(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))

	tx := h.DB.Model(&model.MadrasahModel{})
	if q != "" {
		like := "%" + q + "%"
		tx = tx.Where("madrasah_nama ILIKE ? OR madrasah_npsn ILIKE ?", like, like)
	}

	var rows []model.MadrasahModel
	if err := tx.Order("madrasah_nama ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar madrasah")
	}
	return helper.JsonOK(c, "OK", rows)
}

// GET /master/madrasah/:id
func (h *MadrasahController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID madrasah tidak valid")
	}

	var m model.MadrasahModel
	if err := h.DB.First(&m, "madrasah_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Madrasah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil madrasah")
	}
	return helper.JsonOK(c, "OK", m)
}

// POST /master/madrasah
func (h *MadrasahController) Create(c *fiber.Ctx) error {
	var req dto.CreateMadrasahRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateMadrasah.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		if isDuplicateErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "NPSN sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat madrasah")
	}

	logService.RecordFromCtx(c, h.DB, logModel.ActionCreateMadrasah, m.MadrasahNama,
		fmt.Sprintf("NPSN %s", m.MadrasahNPSN))
	return helper.JsonCreated(c, "Madrasah berhasil dibuat", m)
}

// PUT /master/madrasah/:id
func (h *MadrasahController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID madrasah tidak valid")
	}

	var req dto.UpdateMadrasahRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateMadrasah.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.MadrasahModel
	if err := h.DB.First(&m, "madrasah_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Madrasah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil madrasah")
	}

	req.Apply(&m)
	now := time.Now()
	m.MadrasahUpdatedAt = &now
	if err := h.DB.Save(&m).Error; err != nil {
		if isDuplicateErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "NPSN sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui madrasah")
	}

	logService.RecordFromCtx(c, h.DB, logModel.ActionUpdateMadrasah, m.MadrasahNama, "")
	return helper.JsonUpdated(c, "Madrasah berhasil diperbarui", m)
}

// DELETE /master/madrasah/:id — soft delete; datanya tetap ada untuk laporan lama.
func (h *MadrasahController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID madrasah tidak valid")
	}

	var m model.MadrasahModel
	if err := h.DB.First(&m, "madrasah_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Madrasah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil madrasah")
	}

	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus madrasah")
	}

	logService.RecordFromCtx(c, h.DB, logModel.ActionDeleteMadrasah, m.MadrasahNama,
		fmt.Sprintf("NPSN %s", m.MadrasahNPSN))
	return helper.JsonDeleted(c, "Madrasah berhasil dihapus", fiber.Map{"id": id})
}

/* ================= Profil (operator) ================= */

func (h *MadrasahController) ownMadrasah(c *fiber.Ctx) (*model.MadrasahModel, error) {
	madrasahID, err := helper.GetMadrasahIDFromToken(c)
	if err != nil {
		return nil, err
	}

	var m model.MadrasahModel
	if err := h.DB.First(&m, "madrasah_id = ?", madrasahID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Madrasah tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil madrasah")
	}
	return &m, nil
}

// GET /operator/madrasah — profil madrasah milik operator yang login.
func (h *MadrasahController) GetOwn(c *fiber.Ctx) error {
	m, err := h.ownMadrasah(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", m)
}

// PUT /operator/madrasah — operator memperbarui profil madrasahnya sendiri.
func (h *MadrasahController) UpdateOwn(c *fiber.Ctx) error {
	m, err := h.ownMadrasah(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfilMadrasahRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateMadrasah.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	req.Apply(m)
	now := time.Now()
	m.MadrasahUpdatedAt = &now
	if err := h.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui profil madrasah")
	}

	logService.RecordFromCtx(c, h.DB, logModel.ActionUpdateMadrasah, m.MadrasahNama, "profil oleh operator")
	return helper.JsonUpdated(c, "Profil madrasah berhasil diperbarui", m)
}
