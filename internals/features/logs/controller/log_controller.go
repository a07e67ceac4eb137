// internals/features/logs/controller/log_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "madrasahku_backend/internals/features/logs/model"
	helper "madrasahku_backend/internals/helpers"
)

type LogController struct {
	DB *gorm.DB
}

func NewLogController(db *gorm.DB) *LogController {
	return &LogController{DB: db}
}

// GET /admin/logs — terbaru dulu, paginasi + filter action/username.
func (h *LogController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	tx := h.DB.Model(&model.ActivityLogModel{})
	if action := strings.TrimSpace(c.Query("action")); action != "" {
		tx = tx.Where("log_action = ?", action)
	}
	if username := strings.TrimSpace(c.Query("username")); username != "" {
		tx = tx.Where("log_username ILIKE ?", "%"+username+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung log")
	}

	var rows []model.ActivityLogModel
	if err := tx.Order("log_created_at DESC").Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil log")
	}

	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// DELETE /admin/logs/:id — hanya kasi (diguard di route).
func (h *LogController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID log tidak valid")
	}

	res := h.DB.Delete(&model.ActivityLogModel{}, "log_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus log")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Log tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Log berhasil dihapus", fiber.Map{"id": id})
}

type bulkDeleteRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

// POST /admin/logs/bulk-delete — hanya kasi (diguard di route).
func (h *LogController) BulkDelete(c *fiber.Ctx) error {
	var req bulkDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if len(req.IDs) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Daftar ids kosong")
	}

	res := h.DB.Delete(&model.ActivityLogModel{}, "log_id IN ?", req.IDs)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus log")
	}
	return helper.JsonDeleted(c, "Log berhasil dihapus", fiber.Map{"jumlah_terhapus": res.RowsAffected})
}
