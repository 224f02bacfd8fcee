package main

import (
	"fmt"
	"log"

	"backoffice-app/config"
	"backoffice-app/controllers/idgen"
	"backoffice-app/database"
	"backoffice-app/dmss"
	"backoffice-app/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadConfig()

	app := fiber.New()

	database.EnsureDatabaseExists(config.DBName)

	db, err := database.GetDBConnection(config.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	database.RunSeeders(db)
	idgen.Init()

	config.SetupCORS(app)

	// One camera session shared by every request
	camera := dmss.NewClient()

	routes.SetupRoutes(app, db, camera)

	port := config.APP_PORT
	fmt.Println("🚀 Server running on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
