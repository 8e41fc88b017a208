package jobs

import (
	"volunmatch-backend/internal/config"
	"volunmatch-backend/internal/logger"
	"volunmatch-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	matchSvc service.MatchService
	config   *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(matchSvc service.MatchService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		matchSvc: matchSvc,
		config:   cfg,
	}
}

// Config exposes the runner's configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
