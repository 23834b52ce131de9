package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"halladmin/internal/auth"
	"halladmin/internal/config"
	"halladmin/internal/db"
	"halladmin/internal/model"
	"halladmin/internal/repository"
	"halladmin/pkg/logger"
)

// Seeds the bootstrap admin account so the dashboard is usable before any
// admin exists to create users. Idempotent: re-running against a database
// that already has the account is a no-op.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogPretty)

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	pin := os.Getenv("ADMIN_PIN")
	if !auth.ValidPIN(pin) {
		log.Fatal().Msg("ADMIN_PIN must be set to exactly 4 digits")
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.ActivityLog{},
		&model.HallData{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	userRepo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	existing, err := userRepo.FindByUsername(ctx, username)
	if err != nil && err != gorm.ErrRecordNotFound {
		log.Fatal().Err(err).Msg("lookup admin user")
	}
	if existing != nil {
		log.Info().Str("username", username).Msg("admin user already exists, nothing to do")
		return
	}

	pinHash, err := auth.HashPIN(pin)
	if err != nil {
		log.Fatal().Err(err).Msg("hash pin")
	}

	admin := &model.User{
		Username: username,
		PINHash:  pinHash,
		Role:     model.RoleAdmin,
		IsActive: true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("create admin user")
	}

	log.Info().Str("username", username).Str("id", admin.ID.String()).Msg("admin user created")
}
