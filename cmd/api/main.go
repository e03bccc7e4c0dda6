package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-profile-backend/config"
	_ "go-profile-backend/docs" // Important for Swagger
	v1 "go-profile-backend/internal/delivery/http/v1"
	"go-profile-backend/internal/repository/postgres"
	"go-profile-backend/internal/usecase"
	"go-profile-backend/pkg/auth"
	"go-profile-backend/pkg/database"
	"go-profile-backend/pkg/email"
	"go-profile-backend/pkg/identity"
	"go-profile-backend/pkg/logger"
	"go-profile-backend/pkg/redis"
	"go-profile-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Profile Backend API
// @version         1.0
// @description     Backend for developer profile management using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting profile backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting backend, in-memory fallback when absent)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	projectRepo := postgres.NewProjectRepository(dbPool)
	experienceRepo := postgres.NewExperienceRepository(dbPool)
	educationRepo := postgres.NewEducationRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	countryRepo := postgres.NewCountryRepository(dbPool)

	// 6. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - verification mail will be skipped")
	}

	// 7. Setup Token Service and Identity Provider
	tokenService := auth.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenExpireMinutes)*time.Minute)
	googleProvider := identity.NewGoogleProvider(cfg.GoogleUserInfoURL)

	// 8. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	authUC := usecase.NewAuthUsecase(userRepo, profileRepo, tokenService, googleProvider, emailService, validate)
	profileUC := usecase.NewProfileUsecase(profileRepo, userRepo, validate)
	projectUC := usecase.NewProjectUsecase(projectRepo, profileRepo, skillRepo, validate)
	skillUC := usecase.NewSkillUsecase(skillRepo, profileRepo)
	experienceUC := usecase.NewExperienceUsecase(experienceRepo, profileRepo, validate)
	educationUC := usecase.NewEducationUsecase(educationRepo, userRepo, validate)
	countryUC := usecase.NewCountryUsecase(countryRepo)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:       authUC,
		ProfileUC:    profileUC,
		ProjectUC:    projectUC,
		SkillUC:      skillUC,
		ExperienceUC: experienceUC,
		EducationUC:  educationUC,
		CountryUC:    countryUC,
		Tokens:       tokenService,
		Config:       cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
