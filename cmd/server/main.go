package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	api "volunmatch-backend/internal/api/http"
	"volunmatch-backend/internal/config"
	"volunmatch-backend/internal/logger"
	"volunmatch-backend/internal/repository/postgres"
	"volunmatch-backend/internal/security"
	"volunmatch-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting matching backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	matchTokens := security.NewMatchTokenGenerator()

	// Initialize Services
	emailSvc := service.NewEmailService(
		cfg.Email.APIKey,
		cfg.Email.From,
		cfg.Email.FromName,
		cfg.Site.BaseURL,
	)
	matchSvc := service.NewMatchService(
		store.VolunteerRepository,
		store.OpportunityRepository,
		store.MatchRepository,
		store.SettingRepository,
		emailSvc,
		matchTokens,
		cfg.Matching.StaleLookbackDays,
	)
	settingsSvc := service.NewSettingsService(store.SettingRepository)
	profileSvc := service.NewProfileService(
		store.UserRepository,
		store.VolunteerRepository,
		store.AssociationRepository,
		store.OpportunityRepository,
		emailSvc,
	)
	adminSvc := service.NewAdminService(
		store.UserRepository,
		store.VolunteerRepository,
		store.AssociationRepository,
		store.OpportunityRepository,
		store.MatchRepository,
		tokenManager,
	)

	// Initialize HTTP API
	handler := api.NewHandler(matchSvc, settingsSvc, profileSvc, adminSvc, tokenManager)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), handler.Router()); err != nil {
		logger.Error("HTTP server failed", "error", err)
		log.Fatalf("HTTP server failed: %v", err)
	}
}
