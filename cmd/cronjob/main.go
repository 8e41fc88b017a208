package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"volunmatch-backend/internal/config"
	"volunmatch-backend/internal/jobs"
	"volunmatch-backend/internal/logger"
	"volunmatch-backend/internal/repository/postgres"
	"volunmatch-backend/internal/scheduler"
	"volunmatch-backend/internal/security"
	"volunmatch-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'escalate-stale-volunteers')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting cronjob runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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
		security.NewMatchTokenGenerator(),
		cfg.Matching.StaleLookbackDays,
	)

	jobRunner := jobs.NewJobRunner(matchSvc, cfg)

	// Manual single-job execution
	if *runOnce != "" {
		switch *runOnce {
		case "escalate-stale-volunteers":
			jobRunner.EscalateStaleVolunteers()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		return
	}

	// Start the scheduler
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	sched.Stop()
}
