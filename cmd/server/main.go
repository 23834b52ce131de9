package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "halladmin/docs" // swagger docs

	"halladmin/internal/auth"
	"halladmin/internal/cache"
	"halladmin/internal/config"
	"halladmin/internal/db"
	"halladmin/internal/handler"
	"halladmin/internal/model"
	"halladmin/internal/repository"
	"halladmin/internal/router"
	"halladmin/internal/service"
	"halladmin/pkg/logger"
)

// @title Hall Admin API
// @version 1.0
// @description Administrative dashboard API for user and hall data management.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogPretty)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Info().Msg("RESET_DB=true detected, dropping all tables")
		tables := []interface{}{
			&model.HallData{},
			&model.ActivityLog{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Warn().Err(err).Msg("failed to drop table (may not exist)")
			}
		}
		log.Info().Msg("tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.ActivityLog{},
		&model.HallData{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, log)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	activityLogRepo := repository.NewActivityLogRepository(gormDB)
	hallDataRepo := repository.NewHallDataRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	auditRecorder := service.NewAuditRecorder(activityLogRepo, log)
	defer auditRecorder.Close()

	authService := service.NewAuthService(userRepo, jwtService, tokenStore, auditRecorder, log, nil)
	userService := service.NewUserService(userRepo, cacheClient, auditRecorder)
	hallService := service.NewHallService(hallDataRepo, auditRecorder, nil)
	statsService := service.NewStatsService(userRepo, hallDataRepo, activityLogRepo, cacheClient, nil)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	hallHandler := handler.NewHallHandler(hallService, userService)
	dashboardHandler := handler.NewDashboardHandler(statsService, auditRecorder)

	// Register routes
	router.Register(e, cfg, authHandler, userHandler, hallHandler, dashboardHandler)

	log.Info().Str("port", cfg.ServerPort).Msg("starting server")

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
