// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"madrasahku_backend/internals/configs"
	authModel "madrasahku_backend/internals/features/users/auth/model"
	userModel "madrasahku_backend/internals/features/users/user/model"
)

var (
	ErrInvalidCredentials = errors.New("username atau password salah")
)

// TokenTTL masa berlaku access token.
const TokenTTL = 12 * time.Hour

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Authenticate mencocokkan username+password dan mengembalikan user-nya.
func (s *AuthService) Authenticate(username, password string) (*userModel.UserModel, error) {
	var u userModel.UserModel
	err := s.DB.Preload("Madrasah").
		Where("user_username = ?", strings.TrimSpace(username)).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}

// IssueToken membuat access token dengan klaim yang dibaca AuthMiddleware.
func (s *AuthService) IssueToken(u *userModel.UserModel) (string, time.Time, error) {
	if configs.JWTSecret == "" {
		return "", time.Time{}, errors.New("JWT_SECRET belum diset")
	}

	exp := time.Now().Add(TokenTTL)
	claims := jwt.MapClaims{
		"user_id":   u.UserID.String(),
		"user_name": u.UserUsername,
		"role":      u.UserRole,
		"iat":       time.Now().Unix(),
		"exp":       exp.Unix(),
	}
	if u.UserMadrasahID != nil {
		claims["madrasah_id"] = u.UserMadrasahID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// BlacklistToken menonaktifkan token saat logout. ExpiredAt diambil dari klaim
// exp supaya baris blacklist bisa dibersihkan setelah token kadaluarsa.
func (s *AuthService) BlacklistToken(tokenString string) error {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	_, _ = parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})

	expiredAt := time.Now().Add(TokenTTL)
	if expFloat, ok := claims["exp"].(float64); ok {
		expiredAt = time.Unix(int64(expFloat), 0)
	}

	entry := authModel.TokenBlacklistModel{
		Token:     tokenString,
		ExpiredAt: expiredAt,
	}
	return s.DB.Create(&entry).Error
}
