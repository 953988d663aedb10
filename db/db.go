package db

import (
	"os"

	"github.com/Jaydip614/medisync/models"
	"github.com/Jaydip614/medisync/utils"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		utils.LogError(err, "Warning: impossible to load the .env file")
		utils.LogInfo("The environment variable DB_URL must be defined in the system environment")
	}

	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		utils.LogError(nil, "Variable DB_URL not defined")
		panic("Database URL not configured")
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: utils.GetGormLogger(),
	})
	if err != nil {
		utils.LogError(err, "Error connecting to the database")
		panic("Could not connect to the database")
	}

	err = DB.AutoMigrate(
		&models.Specialization{},
		&models.User{},
		&models.PatientProfile{},
		&models.SubscriptionPlan{},
		&models.Subscription{},
		&models.Payment{},
		&models.Appointment{},
		&models.ChatRoom{},
		&models.ChatMessage{},
		&models.MedicalRecord{},
		&models.Prescription{},
		&models.AIAnalysis{},
	)
	if err != nil {
		utils.LogError(err, "Error migrating database")
		panic("Could not migrate database")
	}

	utils.LogSuccess("Database connection successful")
}
