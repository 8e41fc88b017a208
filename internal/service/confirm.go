package service

import (
	"context"

	"volunmatch-backend/internal/domain"
	"volunmatch-backend/internal/logger"
)

// ConfirmMatch resolves a confirmation token to a match and applies the
// requested transition. The response never reveals which token side was
// attempted when the lookup misses.
//
// Decline is a one-way transition to DECLINED regardless of the current
// acceptance flags. Accept sets the token side's flag (a no-op if already
// set) and promotes the match to ACCEPTED once both sides have accepted,
// sending the acceptance email synchronously within this call.
func (s *matchService) ConfirmMatch(ctx context.Context, token string, action ConfirmAction) (*ConfirmResult, error) {
	match, err := s.matchRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return &ConfirmResult{OK: false, Message: "Match not found"}, nil
	}

	if action == ConfirmActionDecline {
		if err := s.matchRepo.UpdateStatus(ctx, match.ID, domain.MatchStatusDeclined); err != nil {
			return nil, err
		}
		logger.Info("Match declined", "match_id", match.ID)
		return &ConfirmResult{OK: true, Status: domain.MatchStatusDeclined}, nil
	}

	isVolunteer := match.VolunteerToken == token
	if isVolunteer {
		if err := s.matchRepo.SetVolunteerAccepted(ctx, match.ID); err != nil {
			return nil, err
		}
		match.VolunteerAccepted = true
	} else {
		if err := s.matchRepo.SetAssociationAccepted(ctx, match.ID); err != nil {
			return nil, err
		}
		match.AssociationAccepted = true
	}

	status := match.Status
	if match.VolunteerAccepted && match.AssociationAccepted {
		if err := s.matchRepo.UpdateStatus(ctx, match.ID, domain.MatchStatusAccepted); err != nil {
			return nil, err
		}
		status = domain.MatchStatusAccepted

		contacts, err := s.matchRepo.GetContacts(ctx, match.ID)
		if err != nil {
			return nil, err
		}
		if err := s.emailSvc.SendMatchAccepted(ctx, contacts.VolunteerEmail, contacts.AssociationEmail); err != nil {
			return nil, err
		}
		logger.Info("Match accepted by both sides", "match_id", match.ID)
	}

	return &ConfirmResult{OK: true, Status: status}, nil
}
