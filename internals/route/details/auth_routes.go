// internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "madrasahku_backend/internals/features/users/auth/controller"
	"madrasahku_backend/internals/middlewares"
	authMw "madrasahku_backend/internals/middlewares/auth"
)

// AuthRoutes: login/logout + profil user yang sedang login.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	protected := api.Group("", authMw.AuthMiddleware(db))
	protected.Post("/logout", ctrl.Logout)
	protected.Get("/me", ctrl.Me)
	protected.Put("/profile/update", ctrl.UpdateProfile)
	protected.Put("/profile/password", ctrl.UpdatePassword)
}
