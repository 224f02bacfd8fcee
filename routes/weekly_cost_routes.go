package routes

import (
	"backoffice-app/config"
	"backoffice-app/controllers"
	"backoffice-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupWeeklyCostRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/weekly-costs", middleware.AuthMiddleware)
	weeklyCostController := controllers.NewWeeklyCostController(db)

	api.Get("/", weeklyCostController.GetWeeklyCost)
	api.Post("/bills", weeklyCostController.SaveBills)
	api.Post("/wages", weeklyCostController.SaveWages)
	api.Post("/gst", weeklyCostController.SaveGst)
	api.Post("/psila", weeklyCostController.SavePsila)
	api.Get("/export/csv", weeklyCostController.ExportOutgoingsCSV)
}
