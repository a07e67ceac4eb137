// internals/features/users/user/controller/user_controller.go
package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	constants "madrasahku_backend/internals/constants"
	logModel "madrasahku_backend/internals/features/logs/model"
	logService "madrasahku_backend/internals/features/logs/service"
	dto "madrasahku_backend/internals/features/users/user/dto"
	model "madrasahku_backend/internals/features/users/user/model"
	helper "madrasahku_backend/internals/helpers"
)

var validateUser = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

// GET /master/users
func (h *UserController) List(c *fiber.Ctx) error {
	tx := h.DB.Model(&model.UserModel{}).Preload("Madrasah")
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		tx = tx.Where("user_role = ?", role)
	}

	var rows []model.UserModel
	if err := tx.Order("user_username ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar user")
	}
	return helper.JsonOK(c, "OK", dto.NewUserResponses(rows))
}

// GET /master/users/:id
func (h *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID user tidak valid")
	}

	var m model.UserModel
	if err := h.DB.Preload("Madrasah").First(&m, "user_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	return helper.JsonOK(c, "OK", dto.NewUserResponse(&m))
}

// POST /master/users
func (h *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateUser.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// operator wajib terikat ke madrasah; role penmad sebaliknya
	if req.Role == constants.RoleOperatorSekolah && req.MadrasahID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Operator sekolah wajib memiliki id_madrasah")
	}
	if req.Role != constants.RoleOperatorSekolah {
		req.MadrasahID = nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	m := model.UserModel{
		UserUsername:   strings.TrimSpace(req.Username),
		UserPassword:   string(hash),
		UserRole:       req.Role,
		UserMadrasahID: req.MadrasahID,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	logService.RecordFromCtx(c, h.DB, logModel.ActionCreateUser, m.UserUsername,
		fmt.Sprintf("role %s", m.UserRole))
	return helper.JsonCreated(c, "User berhasil dibuat", dto.NewUserResponse(&m))
}

// PUT /master/users/:id
func (h *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID user tidak valid")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateUser.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.UserModel
	if err := h.DB.First(&m, "user_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	if req.Username != nil {
		m.UserUsername = strings.TrimSpace(*req.Username)
	}
	if req.Role != nil {
		m.UserRole = *req.Role
	}
	if req.MadrasahID != nil {
		m.UserMadrasahID = req.MadrasahID
	}
	if m.UserRole == constants.RoleOperatorSekolah && m.UserMadrasahID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Operator sekolah wajib memiliki id_madrasah")
	}
	if m.UserRole != constants.RoleOperatorSekolah {
		m.UserMadrasahID = nil
	}
	if req.Password != nil && strings.TrimSpace(*req.Password) != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
		}
		m.UserPassword = string(hash)
	}

	now := time.Now()
	m.UserUpdatedAt = &now
	if err := h.DB.Save(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui user")
	}

	logService.RecordFromCtx(c, h.DB, logModel.ActionUpdateUser, m.UserUsername, "")
	return helper.JsonUpdated(c, "User berhasil diperbarui", dto.NewUserResponse(&m))
}

// DELETE /master/users/:id — soft delete; user tidak bisa menghapus dirinya sendiri.
func (h *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID user tidak valid")
	}
	if selfID, err := helper.GetUserIDFromToken(c); err == nil && selfID == id {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak bisa menghapus akun sendiri")
	}

	var m model.UserModel
	if err := h.DB.First(&m, "user_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus user")
	}

	logService.RecordFromCtx(c, h.DB, logModel.ActionDeleteUser, m.UserUsername, "")
	return helper.JsonDeleted(c, "User berhasil dihapus", fiber.Map{"id": id})
}
