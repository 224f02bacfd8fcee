package routes

import (
	"backoffice-app/config"
	"backoffice-app/controllers"
	"backoffice-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSupplierRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/suppliers", middleware.AuthMiddleware)
	supplierController := controllers.NewSupplierController(db)

	api.Get("/", supplierController.GetAllSuppliers)
	api.Post("/", supplierController.CreateSupplier)
	api.Post("/upload-excel", supplierController.CreateSupplierFromExcel)
	api.Get("/export", supplierController.ExportSuppliers)
	api.Get("/:id", supplierController.GetSupplierByID)
	api.Put("/:id", supplierController.UpdateSupplier)
	api.Delete("/:id", supplierController.DeleteSupplier)
}
