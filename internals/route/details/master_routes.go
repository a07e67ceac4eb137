// internals/route/details/master_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	madrasahController "madrasahku_backend/internals/features/madrasah/controller"
	pengumumanController "madrasahku_backend/internals/features/pengumuman/controller"
	userController "madrasahku_backend/internals/features/users/user/controller"
	authMw "madrasahku_backend/internals/middlewares/auth"
)

// MasterRoutes: master data madrasah, user, dan pengumuman (penmad saja).
func MasterRoutes(api fiber.Router, db *gorm.DB) {
	madrasah := madrasahController.NewMadrasahController(db)
	users := userController.NewUserController(db)
	pengumuman := pengumumanController.NewPengumumanController(db)

	g := api.Group("/master",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles(
			constants.RoleErrorPenmad("master data"),
			constants.PenmadRoles...,
		),
	)

	g.Get("/madrasah", madrasah.List)
	g.Post("/madrasah", madrasah.Create)
	g.Get("/madrasah/:id", madrasah.GetByID)
	g.Put("/madrasah/:id", madrasah.Update)
	g.Delete("/madrasah/:id", madrasah.Delete)

	g.Get("/users", users.List)
	g.Post("/users", users.Create)
	g.Get("/users/:id", users.GetByID)
	g.Put("/users/:id", users.Update)
	g.Delete("/users/:id", users.Delete)

	g.Post("/pengumuman", pengumuman.Create)
	g.Delete("/pengumuman/:id", pengumuman.Delete)
}
