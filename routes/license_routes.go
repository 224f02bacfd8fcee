package routes

import (
	"backoffice-app/config"
	"backoffice-app/controllers"
	"backoffice-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLicenseRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/licenses", middleware.AuthMiddleware)
	licenseController := controllers.NewLicenseController(db)

	api.Get("/", licenseController.GetAllLicenses)
	api.Post("/", licenseController.CreateLicense)
	api.Get("/:id", licenseController.GetLicenseByID)
	api.Put("/:id", licenseController.UpdateLicense)
	api.Delete("/:id", licenseController.DeleteLicense)
}
