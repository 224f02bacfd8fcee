package routes

import (
	"backoffice-app/config"
	"backoffice-app/controllers"
	"backoffice-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupInvoiceRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/invoices", middleware.AuthMiddleware)
	invoiceController := controllers.NewInvoiceController(db)

	api.Get("/", invoiceController.GetAllInvoices)
	api.Post("/", invoiceController.CreateInvoice)
	api.Get("/:id", invoiceController.GetInvoiceByID)
	api.Post("/:id/file", invoiceController.UploadInvoiceFile)
	api.Patch("/:id/status", invoiceController.UpdateInvoiceStatus)
	api.Delete("/:id", invoiceController.DeleteInvoice)
}
