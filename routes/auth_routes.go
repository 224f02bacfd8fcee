package routes

import (
	"backoffice-app/config"
	"backoffice-app/controllers"
	"backoffice-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controllers.NewAuthController(db)

	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Post("/login", controllers.Login)
	api.Post("/login/confirm", controllers.LoginConfirm)
	api.Post("/refresh", controllers.RefreshToken)

	secured := app.Group(config.MAIN_ROUTES+"/auth", middleware.AuthMiddleware)
	secured.Get("/logout", authController.Logout)
	secured.Get("/isLoggedIn", authController.IsLoggedIn)
}
