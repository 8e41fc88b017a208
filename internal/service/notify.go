package service

import (
	"context"
	"time"

	"volunmatch-backend/internal/logger"
)

// NotifyMatches sends the proposal email for PROPOSED matches that were
// never notified, optionally restricted to the given ids, then stamps the
// notified timestamp. Already-notified matches are never re-sent through
// this path. A send failure propagates; matches notified before it keep
// their stamp.
func (s *matchService) NotifyMatches(ctx context.Context, matchIDs []int32) (int32, error) {
	matches, err := s.matchRepo.ListUnnotified(ctx, matchIDs)
	if err != nil {
		return 0, err
	}

	var sent int32
	for i := range matches {
		match := &matches[i]

		contacts, err := s.matchRepo.GetContacts(ctx, match.ID)
		if err != nil {
			return sent, err
		}

		if err := s.emailSvc.SendMatchProposal(ctx,
			contacts.VolunteerEmail, contacts.AssociationEmail,
			match.ID, match.VolunteerToken, match.AssociationToken); err != nil {
			return sent, err
		}

		if err := s.matchRepo.MarkNotified(ctx, match.ID, time.Now()); err != nil {
			return sent, err
		}
		sent++
		logger.Debug("Proposal email sent", "match_id", match.ID)
	}

	logger.Info("Proposal notifications dispatched", "sent", sent)
	return sent, nil
}
