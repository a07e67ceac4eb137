// internals/features/pengumuman/controller/pengumuman_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	logModel "madrasahku_backend/internals/features/logs/model"
	logService "madrasahku_backend/internals/features/logs/service"
	dto "madrasahku_backend/internals/features/pengumuman/dto"
	model "madrasahku_backend/internals/features/pengumuman/model"
	helper "madrasahku_backend/internals/helpers"
)

var validatePengumuman = validator.New()

type PengumumanController struct {
	DB *gorm.DB
}

func NewPengumumanController(db *gorm.DB) *PengumumanController {
	return &PengumumanController{DB: db}
}

// GET /pengumuman — terbaru dulu, bisa dibaca semua role.
func (h *PengumumanController) List(c *fiber.Ctx) error {
	var rows []model.PengumumanModel
	if err := h.DB.Order("pengumuman_created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}
	return helper.JsonOK(c, "OK", rows)
}

// POST /master/pengumuman
func (h *PengumumanController) Create(c *fiber.Ctx) error {
	var req dto.CreatePengumumanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validatePengumuman.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := model.PengumumanModel{
		PengumumanJudul: req.Judul,
		PengumumanIsi:   req.Isi,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat pengumuman")
	}

	logService.RecordFromCtx(c, h.DB, logModel.ActionCreatePengumuman, m.PengumumanJudul, "")
	return helper.JsonCreated(c, "Pengumuman berhasil dibuat", m)
}

// DELETE /master/pengumuman/:id
func (h *PengumumanController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pengumuman tidak valid")
	}

	var m model.PengumumanModel
	if err := h.DB.First(&m, "pengumuman_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pengumuman")
	}

	logService.RecordFromCtx(c, h.DB, logModel.ActionDeletePengumuman, m.PengumumanJudul, "")
	return helper.JsonDeleted(c, "Pengumuman berhasil dihapus", fiber.Map{"id": id})
}
