// internals/route/details/admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	dashboardController "madrasahku_backend/internals/features/dashboard/controller"
	lapController "madrasahku_backend/internals/features/laporan/laporan/controller"
	logController "madrasahku_backend/internals/features/logs/controller"
	authMw "madrasahku_backend/internals/middlewares/auth"
)

// AdminRoutes: permukaan reviewer kabupaten (staff & kasi penmad).
// Penghapusan log dibatasi kasi saja.
func AdminRoutes(api fiber.Router, db *gorm.DB) {
	dash := dashboardController.NewDashboardController(db)
	lap := lapController.NewLaporanController(db)
	logs := logController.NewLogController(db)

	g := api.Group("/admin",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles(
			constants.RoleErrorPenmad("admin"),
			constants.PenmadRoles...,
		),
	)

	g.Get("/dashboard", dash.Admin)
	g.Get("/recap", dash.Recap)

	g.Get("/laporan", lap.ListAdmin)
	g.Post("/laporan/:id/verify", lap.Verify)
	g.Delete("/laporan/:id", lap.SoftDelete)
	g.Post("/laporan/:id/restore", lap.Restore)
	g.Delete("/laporan/:id/permanent", lap.PermanentDelete)

	kasiOnly := authMw.OnlyRoles(
		constants.RoleErrorKasi("hapus log"),
		constants.RoleKasiPenmad,
	)
	g.Get("/logs", logs.List)
	g.Delete("/logs/:id", kasiOnly, logs.Delete)
	g.Post("/logs/bulk-delete", kasiOnly, logs.BulkDelete)
}
