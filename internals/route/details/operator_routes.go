// internals/route/details/operator_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	dashboardController "madrasahku_backend/internals/features/dashboard/controller"
	madrasahController "madrasahku_backend/internals/features/madrasah/controller"
	pengumumanController "madrasahku_backend/internals/features/pengumuman/controller"
	authMw "madrasahku_backend/internals/middlewares/auth"
)

// OperatorRoutes: permukaan khusus operator sekolah.
func OperatorRoutes(api fiber.Router, db *gorm.DB) {
	dash := dashboardController.NewDashboardController(db)
	madrasah := madrasahController.NewMadrasahController(db)
	pengumuman := pengumumanController.NewPengumumanController(db)

	g := api.Group("/operator",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles(
			constants.RoleErrorOperator("operator"),
			constants.RoleOperatorSekolah,
		),
	)

	g.Get("/dashboard", dash.Operator)
	g.Get("/madrasah", madrasah.GetOwn)
	g.Put("/madrasah", madrasah.UpdateOwn)

	// Pengumuman dibaca semua role yang login
	api.Get("/pengumuman", authMw.AuthMiddleware(db), pengumuman.List)
}
