package main

import (
	"log"

	"fridgemate/cmd/config"
	migration "fridgemate/cmd/database/migrate"
	"fridgemate/internal/utils"

	"gorm.io/gorm"
)

func main() {
	utils.LoadConfig()

	var db *gorm.DB
	if utils.GetConfig("STORAGE_DRIVER") == "postgres" {
		var err error
		db, err = config.ConnectDB()
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		if err := migration.Migrate(db); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}

	if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
