package routes

import (
	"backoffice-app/config"
	"backoffice-app/controllers"
	"backoffice-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPayrollRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/payroll", middleware.AuthMiddleware)
	payrollController := controllers.NewPayrollController(db)

	api.Post("/calculate", payrollController.CalculatePayroll)
	api.Post("/records", payrollController.CreatePayrollRecord)
	api.Get("/records", payrollController.GetPayrollRecords)
	api.Get("/records/:id", payrollController.GetPayrollRecordByID)
	api.Get("/staff/:id/records", payrollController.GetStaffPayrollRecords)
}
