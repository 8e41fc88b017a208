package service

import (
	"context"
	"math"
	"sort"
	"time"

	"volunmatch-backend/internal/domain"
	"volunmatch-backend/internal/logger"
	"volunmatch-backend/internal/matching"
	"volunmatch-backend/internal/repository"
	"volunmatch-backend/internal/security"
)

// maxProposalsPerRun caps how many opportunities a single run proposes to
// one volunteer.
const maxProposalsPerRun = 3

// relaxedThresholdFactor lowers the acceptance threshold on escalation
// re-runs.
const relaxedThresholdFactor = 0.85

type matchService struct {
	volunteerRepo   repository.VolunteerRepository
	opportunityRepo repository.OpportunityRepository
	matchRepo       repository.MatchRepository
	settingRepo     repository.SettingRepository
	emailSvc        EmailService
	tokens          security.MatchTokenGenerator
	staleLookback   time.Duration
}

func NewMatchService(
	volunteerRepo repository.VolunteerRepository,
	opportunityRepo repository.OpportunityRepository,
	matchRepo repository.MatchRepository,
	settingRepo repository.SettingRepository,
	emailSvc EmailService,
	tokens security.MatchTokenGenerator,
	staleLookbackDays int,
) MatchService {
	return &matchService{
		volunteerRepo:   volunteerRepo,
		opportunityRepo: opportunityRepo,
		matchRepo:       matchRepo,
		settingRepo:     settingRepo,
		emailSvc:        emailSvc,
		tokens:          tokens,
		staleLookback:   time.Duration(staleLookbackDays) * 24 * time.Hour,
	}
}

func (s *matchService) loadSettings(ctx context.Context) (*domain.MatchSettings, error) {
	settings, err := s.settingRepo.GetMatchSettings(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return domain.DefaultMatchSettings(), nil
	}
	return settings, nil
}

// RunMatching scores every active opportunity against each candidate
// volunteer, keeps the top candidates at or above the threshold, and
// persists new PROPOSED matches. The per-pair existence check is the only
// duplicate guard; concurrent runs are best-effort. Storage errors
// propagate with whatever partial progress was already committed.
func (s *matchService) RunMatching(ctx context.Context, opts RunOptions) (*RunResult, error) {
	settings, err := s.loadSettings(ctx)
	if err != nil {
		return nil, err
	}

	threshold := settings.Threshold
	if opts.Relaxed {
		threshold = int32(math.Round(float64(settings.Threshold) * relaxedThresholdFactor))
	}

	volunteers, err := s.volunteerRepo.ListApproved(ctx, opts.VolunteerIDs)
	if err != nil {
		return nil, err
	}
	opportunities, err := s.opportunityRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	logger.Info("Matching run started",
		"volunteers", len(volunteers),
		"opportunities", len(opportunities),
		"threshold", threshold,
		"relaxed", opts.Relaxed)

	result := &RunResult{}

	type candidate struct {
		score       int32
		opportunity *domain.Opportunity
	}

	for i := range volunteers {
		vol := &volunteers[i]

		var scored []candidate
		for j := range opportunities {
			opp := &opportunities[j]
			score := matching.Score(vol, opp, settings.Weights, opts.Relaxed)
			if score >= threshold {
				scored = append(scored, candidate{score: score, opportunity: opp})
			}
		}

		// Ties keep opportunity insertion order; the ordering beyond the
		// score is not semantically meaningful.
		sort.SliceStable(scored, func(a, b int) bool {
			return scored[a].score > scored[b].score
		})
		if len(scored) > maxProposalsPerRun {
			scored = scored[:maxProposalsPerRun]
		}

		for _, cand := range scored {
			exists, err := s.matchRepo.Exists(ctx, vol.ID, cand.opportunity.ID)
			if err != nil {
				return result, err
			}
			if exists {
				continue
			}

			match := &domain.Match{
				VolunteerID:      vol.ID,
				OpportunityID:    cand.opportunity.ID,
				Score:            cand.score,
				Status:           domain.MatchStatusProposed,
				VolunteerToken:   s.tokens.NewToken(),
				AssociationToken: s.tokens.NewToken(),
			}
			if err := s.matchRepo.Create(ctx, match); err != nil {
				return result, err
			}
			if err := s.volunteerRepo.UpdateLastProposal(ctx, vol.ID, time.Now()); err != nil {
				return result, err
			}

			result.MatchIDs = append(result.MatchIDs, match.ID)
			result.MatchesCreated++
			logger.Debug("Match proposed",
				"match_id", match.ID,
				"volunteer_id", vol.ID,
				"opportunity_id", cand.opportunity.ID,
				"score", cand.score)
		}
	}

	logger.Info("Matching run finished", "matches_created", result.MatchesCreated)
	return result, nil
}

// WidenScopeAndMatch re-runs matching in relaxed mode for approved
// volunteers that have not received a proposal within the lookback window.
func (s *matchService) WidenScopeAndMatch(ctx context.Context) (*RunResult, error) {
	cutoff := time.Now().Add(-s.staleLookback)
	ids, err := s.volunteerRepo.ListStaleIDs(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return &RunResult{}, nil
	}

	logger.Info("Escalating stale volunteers", "count", len(ids))
	return s.RunMatching(ctx, RunOptions{Relaxed: true, VolunteerIDs: ids})
}
