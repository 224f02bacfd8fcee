package routes

import (
	"backoffice-app/config"
	"backoffice-app/controllers"
	"backoffice-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupTakingRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/takings", middleware.AuthMiddleware)
	takingController := controllers.NewTakingController(db)

	api.Get("/", takingController.GetTakings)
	api.Post("/", takingController.SaveTaking)
	api.Get("/export/csv", takingController.ExportTakingsCSV)
	api.Get("/export/excel", takingController.ExportTakingsExcel)
	api.Get("/:date", takingController.GetTakingByDate)
	api.Delete("/:id", takingController.DeleteTaking)
}
