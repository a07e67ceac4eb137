// internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/route/details"
)

// SetupRoutes merakit seluruh route aplikasi di bawah prefix /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	details.AuthRoutes(api, db)
	details.OperatorRoutes(api, db)
	details.LaporanRoutes(api, db)
	details.AdminRoutes(api, db)
	details.MasterRoutes(api, db)
}
