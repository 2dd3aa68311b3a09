package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"saree-crm/config"
	"saree-crm/database"
	"saree-crm/models"
	"saree-crm/router"
	"saree-crm/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()
	cfg := config.Load()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open database %s: %v", cfg.DBPath, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to get database handle: %v", err)
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Order{},
		&models.FollowUp{},
	); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}

	if err := database.Seed(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed demo data: %v", err)
	}

	r := router.SetupRouter(db, cfg)

	utils.InfoLogger.Printf("Starting %s CRM on :%s (db: %s)", cfg.BusinessName, cfg.Port, cfg.DBPath)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
