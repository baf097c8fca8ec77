package db

import (
	"time"

	"ballotbox/internal/config"
	"ballotbox/internal/models"
	"ballotbox/internal/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	// Bounded connection pool, reused across requests.
	sqlDB, err := DB.DB()
	if err != nil {
		logrus.Fatalf("Failed to access connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	logrus.Info("Database connection established")

	err = DB.AutoMigrate(
		&models.User{},
		&models.Election{},
		&models.Candidate{},
		&models.Vote{},
	)
	if err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}
	logrus.Info("Database migration completed")

	seedAdmin(cfg)
}

// seedAdmin creates the administrator account from configuration if it does
// not exist yet. The admin authenticates like any other user; there is no
// credential comparison against config values at login time.
func seedAdmin(cfg *config.Config) {
	var count int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		logrus.Info("Admin account already seeded, skipping")
		return
	}

	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		logrus.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := models.User{
		Username:     cfg.AdminUsername,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Email:        cfg.AdminEmail,
		DateOfBirth:  time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := DB.Create(&admin).Error; err != nil {
		logrus.Fatalf("Failed to create admin account: %v", err)
	}
	logrus.WithField("username", admin.Username).Info("Admin account created")
}
