// internals/route/details/laporan_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	lapController "madrasahku_backend/internals/features/laporan/laporan/controller"
	sectionController "madrasahku_backend/internals/features/laporan/sections/controller"
	authMw "madrasahku_backend/internals/middlewares/auth"
)

// LaporanRoutes: siklus hidup laporan + enam section editor.
// Detail & section GET bisa diakses semua role (controller menegakkan scope
// madrasah untuk operator); mutasi isi hanya operator.
func LaporanRoutes(api fiber.Router, db *gorm.DB) {
	lap := lapController.NewLaporanController(db)
	sec := sectionController.NewSectionController(db)

	g := api.Group("/laporan", authMw.AuthMiddleware(db))

	operatorOnly := authMw.OnlyRoles(
		constants.RoleErrorOperator("laporan bulanan"),
		constants.RoleOperatorSekolah,
	)

	g.Post("/", operatorOnly, lap.Create)
	g.Get("/:id", lap.GetDetail)
	g.Post("/:id/submit", operatorOnly, lap.Submit)

	// Trash (AllowedActions di controller menentukan siapa boleh apa)
	g.Delete("/:id", lap.SoftDelete)
	g.Post("/:id/restore", lap.Restore)
	g.Delete("/:id/permanent", lap.PermanentDelete)

	// Section editor
	g.Get("/:id/siswa", sec.GetSiswa)
	g.Put("/:id/siswa", operatorOnly, sec.PutSiswa)
	g.Get("/:id/rekap-personal", sec.GetRekapPersonal)
	g.Put("/:id/rekap-personal", operatorOnly, sec.PutRekapPersonal)
	g.Get("/:id/guru", sec.GetGuru)
	g.Put("/:id/guru", operatorOnly, sec.PutGuru)
	g.Get("/:id/sarpras", sec.GetSarpras)
	g.Put("/:id/sarpras", operatorOnly, sec.PutSarpras)
	g.Get("/:id/mobiler", sec.GetMobiler)
	g.Put("/:id/mobiler", operatorOnly, sec.PutMobiler)
	g.Get("/:id/keuangan", sec.GetKeuangan)
	g.Put("/:id/keuangan", operatorOnly, sec.PutKeuangan)
}
