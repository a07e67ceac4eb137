package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Kunci Locals yang diisi middleware auth setelah verifikasi token.
const (
	LocUserID     = "user_id"
	LocUserName   = "user_name"
	LocUserRole   = "userRole"
	LocMadrasahID = "madrasah_id"
	LocRawToken   = "raw_token"
)

// GetUserIDFromToken mengambil user_id dari Locals (diset middleware).
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v, ok := c.Locals(LocUserID).(string)
	if !ok || v == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user tidak dikenali")
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user id tidak valid")
	}
	return id, nil
}

func GetUserNameFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUserName).(string); ok {
		return v
	}
	return ""
}

func GetRoleFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUserRole).(string); ok {
		return v
	}
	return ""
}

// GetMadrasahIDFromToken mengambil scope madrasah milik operator.
// Reviewer (staff/kasi penmad) tidak punya scope ini.
func GetMadrasahIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v, ok := c.Locals(LocMadrasahID).(string)
	if !ok || v == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Akun ini tidak terikat ke madrasah manapun")
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Scope madrasah tidak valid")
	}
	return id, nil
}

// GetRawAccessToken mengembalikan access token dari Locals atau header Authorization.
func GetRawAccessToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRawToken).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}
