package routes

import (
	"backoffice-app/config"
	"backoffice-app/controllers"
	"backoffice-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupStaffRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/staff", middleware.AuthMiddleware)
	staffController := controllers.NewStaffController(db)

	api.Get("/", staffController.GetAllStaff)
	api.Post("/", staffController.CreateStaff)
	api.Get("/:id", staffController.GetStaffByID)
	api.Put("/:id", staffController.UpdateStaff)
	api.Delete("/:id", staffController.DeleteStaff)
}
