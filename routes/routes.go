package routes

import (
	"backoffice-app/dmss"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes registers every route group on the app.
func SetupRoutes(app *fiber.App, db *gorm.DB, camera *dmss.Client) {
	SetupAuthRoutes(app, db)
	SetupUserRoutes(app, db)
	SetupDashboardRoutes(app, db)
	SetupTakingRoutes(app, db)
	SetupWeeklyCostRoutes(app, db)
	SetupPayrollRoutes(app, db)
	SetupStaffRoutes(app, db)
	SetupSupplierRoutes(app, db)
	SetupSubscriptionRoutes(app, db)
	SetupLicenseRoutes(app, db)
	SetupTaskRoutes(app, db)
	SetupInvoiceRoutes(app, db)
	SetupDmssRoutes(app, camera)
}
