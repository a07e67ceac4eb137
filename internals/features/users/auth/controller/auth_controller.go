// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	logModel "madrasahku_backend/internals/features/logs/model"
	logService "madrasahku_backend/internals/features/logs/service"
	authService "madrasahku_backend/internals/features/users/auth/service"
	userDTO "madrasahku_backend/internals/features/users/user/dto"
	userModel "madrasahku_backend/internals/features/users/user/model"
	helper "madrasahku_backend/internals/helpers"
)

var validateAuth = validator.New()

type AuthController struct {
	DB      *gorm.DB
	Service *authService.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Service: authService.NewAuthService(db)}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// POST /login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	u, err := h.Service.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, authService.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	token, exp, err := h.Service.IssueToken(u)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	logService.Record(h.DB, u.UserUsername, u.UserRole, logModel.ActionLogin, u.UserUsername, "")
	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"token":      token,
		"expires_at": exp,
		"user":       userDTO.NewUserResponse(u),
	})
}

// POST /logout — token berjalan dimasukkan ke blacklist.
func (h *AuthController) Logout(c *fiber.Ctx) error {
	token := helper.GetRawAccessToken(c)
	if token == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
	}
	if err := h.Service.BlacklistToken(token); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses logout")
	}

	logService.RecordFromCtx(c, h.DB, logModel.ActionLogout, helper.GetUserNameFromToken(c), "")
	return helper.JsonOK(c, "Logout berhasil", nil)
}

func (h *AuthController) currentUser(c *fiber.Ctx) (*userModel.UserModel, error) {
	id, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}
	var u userModel.UserModel
	if err := h.DB.Preload("Madrasah").First(&u, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "User tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	return &u, nil
}

// GET /me
func (h *AuthController) Me(c *fiber.Ctx) error {
	u, err := h.currentUser(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", userDTO.NewUserResponse(u))
}

type updateProfileRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
}

// PUT /profile/update — saat ini profil user hanya berisi username.
func (h *AuthController) UpdateProfile(c *fiber.Ctx) error {
	u, err := h.currentUser(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	u.UserUsername = strings.TrimSpace(req.Username)
	now := time.Now()
	u.UserUpdatedAt = &now
	if err := h.DB.Save(u).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") {
			return helper.JsonError(c, fiber.StatusConflict, "Username sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui profil")
	}

	logService.RecordFromCtx(c, h.DB, logModel.ActionUpdateProfile, u.UserUsername, "ganti username")
	return helper.JsonUpdated(c, "Profil berhasil diperbarui", userDTO.NewUserResponse(u))
}

type updatePasswordRequest struct {
	PasswordLama string `json:"password_lama" validate:"required"`
	PasswordBaru string `json:"password_baru" validate:"required,min=6"`
}

// PUT /profile/password
func (h *AuthController) UpdatePassword(c *fiber.Ctx) error {
	u, err := h.currentUser(c)
	if err != nil {
		return err
	}

	var req updatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(req.PasswordLama)) != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Password lama salah")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.PasswordBaru), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	now := time.Now()
	u.UserPassword = string(hash)
	u.UserUpdatedAt = &now
	if err := h.DB.Save(u).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui password")
	}

	logService.RecordFromCtx(c, h.DB, logModel.ActionUpdateProfile, u.UserUsername, "ganti password")
	return helper.JsonUpdated(c, "Password berhasil diperbarui", nil)
}
