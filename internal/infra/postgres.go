package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"wxbrief/internal/models/db_models"
)

func InitPostgresql(cfg *Config) *gorm.DB {

	connectionPool, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&db_models.User{},
		&db_models.FlightPlan{},
		&db_models.Briefing{},
	)
	if err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
