package jobs

import (
	"context"

	"volunmatch-backend/internal/logger"
)

// EscalateStaleVolunteers re-runs matching in relaxed mode for volunteers
// without a recent proposal, then dispatches proposal notifications for any
// matches the run produced.
func (jr *JobRunner) EscalateStaleVolunteers() {
	jr.runWithRecovery("EscalateStaleVolunteers", func() {
		ctx := context.Background()

		result, err := jr.matchSvc.WidenScopeAndMatch(ctx)
		if err != nil {
			logger.Error("Failed to escalate stale volunteers", "error", err)
			return
		}
		if result.MatchesCreated == 0 {
			logger.Info("No stale volunteers needed escalation")
			return
		}

		sent, err := jr.matchSvc.NotifyMatches(ctx, result.MatchIDs)
		if err != nil {
			logger.Error("Failed to notify escalated matches", "error", err, "sent", sent)
			return
		}
		logger.Info("Escalation run finished", "matches_created", result.MatchesCreated, "notifications_sent", sent)
	})
}
