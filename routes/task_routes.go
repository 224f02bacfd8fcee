package routes

import (
	"backoffice-app/config"
	"backoffice-app/controllers"
	"backoffice-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupTaskRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/tasks", middleware.AuthMiddleware)
	taskController := controllers.NewTaskController(db)

	api.Get("/", taskController.GetAllTasks)
	api.Post("/", taskController.CreateTask)
	api.Get("/:id", taskController.GetTaskByID)
	api.Put("/:id", taskController.UpdateTask)
	api.Patch("/:id/status", taskController.UpdateTaskStatus)
	api.Delete("/:id", taskController.DeleteTask)
}
