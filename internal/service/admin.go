package service

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"volunmatch-backend/internal/domain"
	"volunmatch-backend/internal/repository"
	"volunmatch-backend/internal/security"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidProfileType = errors.New("invalid profile type")
)

type adminService struct {
	userRepo        repository.UserRepository
	volunteerRepo   repository.VolunteerRepository
	associationRepo repository.AssociationRepository
	opportunityRepo repository.OpportunityRepository
	matchRepo       repository.MatchRepository
	tokenManager    security.TokenManager
}

func NewAdminService(
	userRepo repository.UserRepository,
	volunteerRepo repository.VolunteerRepository,
	associationRepo repository.AssociationRepository,
	opportunityRepo repository.OpportunityRepository,
	matchRepo repository.MatchRepository,
	tokenManager security.TokenManager,
) AdminService {
	return &adminService{
		userRepo:        userRepo,
		volunteerRepo:   volunteerRepo,
		associationRepo: associationRepo,
		opportunityRepo: opportunityRepo,
		matchRepo:       matchRepo,
		tokenManager:    tokenManager,
	}
}

func (s *adminService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if user.Role != domain.RoleAdmin {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokenManager.GenerateAccessToken(user.ID, user.Email)
}

func (s *adminService) Approve(ctx context.Context, profileType string, id int32, approved bool) error {
	switch profileType {
	case "volunteer":
		return s.volunteerRepo.SetApproved(ctx, id, approved)
	case "association":
		return s.associationRepo.SetApproved(ctx, id, approved)
	default:
		return ErrInvalidProfileType
	}
}

func (s *adminService) Stats(ctx context.Context) (*PlatformStats, error) {
	stats := &PlatformStats{}
	var err error

	if stats.Volunteers, err = s.volunteerRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Associations, err = s.associationRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Opportunities, err = s.opportunityRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.ProposedMatches, err = s.matchRepo.CountByStatus(ctx, domain.MatchStatusProposed); err != nil {
		return nil, err
	}
	if stats.AcceptedMatches, err = s.matchRepo.CountByStatus(ctx, domain.MatchStatusAccepted); err != nil {
		return nil, err
	}
	return stats, nil
}
