package routes

import (
	"backoffice-app/config"
	"backoffice-app/controllers"
	"backoffice-app/dmss"
	"backoffice-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDmssRoutes(app *fiber.App, client *dmss.Client) {
	api := app.Group(config.MAIN_ROUTES+"/cameras", middleware.AuthMiddleware)
	dmssController := controllers.NewDmssController(client)

	api.Post("/connect", dmssController.Connect)
	api.Post("/connect-qr", dmssController.ConnectQR)
	api.Post("/disconnect", dmssController.Disconnect)
	api.Get("/status", dmssController.Status)
	api.Post("/test", dmssController.TestConnection)
	api.Post("/test-qr", dmssController.TestQRConnection)
	api.Get("/health", dmssController.Health)
	api.Get("/system-info", dmssController.SystemInfo)
	api.Get("/", dmssController.ListCameras)
	api.Post("/:id/record/start", dmssController.StartRecording)
	api.Post("/:id/record/stop", dmssController.StopRecording)
	api.Get("/:id/recordings", dmssController.ListRecordings)
	api.Get("/:id/stream-url", dmssController.StreamURL)
	api.Get("/:id/thumbnail-url", dmssController.ThumbnailURL)
}
