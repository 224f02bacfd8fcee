package routes

import (
	"backoffice-app/config"
	"backoffice-app/controllers"
	"backoffice-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSubscriptionRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/subscriptions", middleware.AuthMiddleware)
	subscriptionController := controllers.NewSubscriptionController(db)

	api.Get("/", subscriptionController.GetAllSubscriptions)
	api.Post("/", subscriptionController.CreateSubscription)
	api.Get("/:id", subscriptionController.GetSubscriptionByID)
	api.Put("/:id", subscriptionController.UpdateSubscription)
	api.Delete("/:id", subscriptionController.DeleteSubscription)
}
