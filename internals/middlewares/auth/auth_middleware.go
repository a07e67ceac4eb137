// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"madrasahku_backend/internals/configs"
	authModel "madrasahku_backend/internals/features/users/auth/model"
	helper "madrasahku_backend/internals/helpers"
)

// AuthMiddleware memverifikasi bearer token: blacklist, signature, expiry,
// lalu menyimpan klaim (user_id, user_name, role, madrasah_id) ke Locals.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// 1) Cek blacklist (token yang sudah logout)
		var existing authModel.TokenBlacklistModel
		if err := db.Where("token = ?", tokenString).First(&existing).Error; err == nil {
			log.Println("[WARNING] Token ditemukan di blacklist")
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[ERROR] DB error saat cek blacklist:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		// 2) Parse & verifikasi JWT
		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		// 3) Validasi exp (toleransi skew 30 detik)
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Exp validation:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		// 4) Simpan klaim ke context
		storeClaimsToLocals(c, claims)
		c.Locals(helper.LocRawToken, tokenString)

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get("Authorization"))
	const p = "Bearer "
	if auth == "" || !strings.HasPrefix(auth, p) {
		return "", errors.New("Unauthorized - Missing bearer token")
	}
	token := strings.TrimSpace(auth[len(p):])
	if token == "" {
		return "", errors.New("Unauthorized - Missing bearer token")
	}
	return token, nil
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("exp claim tidak ada")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("exp claim bukan angka")
	}
	exp := time.Unix(int64(expFloat), 0)
	if time.Now().After(exp.Add(leeway)) {
		return errors.New("token kadaluarsa")
	}
	return nil
}

func storeClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if v, ok := claims["user_id"].(string); ok {
		c.Locals(helper.LocUserID, v)
	}
	if v, ok := claims["user_name"].(string); ok {
		c.Locals(helper.LocUserName, v)
	}
	if v, ok := claims["role"].(string); ok {
		c.Locals(helper.LocUserRole, v)
	}
	if v, ok := claims["madrasah_id"].(string); ok && v != "" {
		c.Locals(helper.LocMadrasahID, v)
	}
}
