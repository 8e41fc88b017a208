package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"volunmatch-backend/internal/domain"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockVolunteerRepo
type MockVolunteerRepo struct {
	mock.Mock
}

func (m *MockVolunteerRepo) Create(ctx context.Context, vol *domain.Volunteer) error {
	args := m.Called(ctx, vol)
	return args.Error(0)
}
func (m *MockVolunteerRepo) GetByID(ctx context.Context, id int32) (*domain.Volunteer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Volunteer), args.Error(1)
}
func (m *MockVolunteerRepo) ListApproved(ctx context.Context, ids []int32) ([]domain.Volunteer, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Volunteer), args.Error(1)
}
func (m *MockVolunteerRepo) ListStaleIDs(ctx context.Context, cutoff time.Time) ([]int32, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int32), args.Error(1)
}
func (m *MockVolunteerRepo) SetApproved(ctx context.Context, id int32, approved bool) error {
	args := m.Called(ctx, id, approved)
	return args.Error(0)
}
func (m *MockVolunteerRepo) UpdateLastProposal(ctx context.Context, id int32, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}
func (m *MockVolunteerRepo) Count(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}

// MockAssociationRepo
type MockAssociationRepo struct {
	mock.Mock
}

func (m *MockAssociationRepo) Create(ctx context.Context, assoc *domain.Association) error {
	args := m.Called(ctx, assoc)
	return args.Error(0)
}
func (m *MockAssociationRepo) GetByID(ctx context.Context, id int32) (*domain.Association, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Association), args.Error(1)
}
func (m *MockAssociationRepo) SetApproved(ctx context.Context, id int32, approved bool) error {
	args := m.Called(ctx, id, approved)
	return args.Error(0)
}
func (m *MockAssociationRepo) Count(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}

// MockOpportunityRepo
type MockOpportunityRepo struct {
	mock.Mock
}

func (m *MockOpportunityRepo) Create(ctx context.Context, opp *domain.Opportunity) error {
	args := m.Called(ctx, opp)
	return args.Error(0)
}
func (m *MockOpportunityRepo) GetByID(ctx context.Context, id int32) (*domain.Opportunity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Opportunity), args.Error(1)
}
func (m *MockOpportunityRepo) ListActive(ctx context.Context) ([]domain.Opportunity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Opportunity), args.Error(1)
}
func (m *MockOpportunityRepo) Count(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}

// MockMatchRepo
type MockMatchRepo struct {
	mock.Mock
}

func (m *MockMatchRepo) Create(ctx context.Context, match *domain.Match) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}
func (m *MockMatchRepo) GetByID(ctx context.Context, id int32) (*domain.Match, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}
func (m *MockMatchRepo) Exists(ctx context.Context, volunteerID, opportunityID int32) (bool, error) {
	args := m.Called(ctx, volunteerID, opportunityID)
	return args.Bool(0), args.Error(1)
}
func (m *MockMatchRepo) GetByToken(ctx context.Context, token string) (*domain.Match, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}
func (m *MockMatchRepo) ListUnnotified(ctx context.Context, ids []int32) ([]domain.Match, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Match), args.Error(1)
}
func (m *MockMatchRepo) GetContacts(ctx context.Context, matchID int32) (*domain.MatchContacts, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MatchContacts), args.Error(1)
}
func (m *MockMatchRepo) UpdateStatus(ctx context.Context, id int32, status domain.MatchStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockMatchRepo) SetVolunteerAccepted(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockMatchRepo) SetAssociationAccepted(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockMatchRepo) MarkNotified(ctx context.Context, id int32, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}
func (m *MockMatchRepo) CountByStatus(ctx context.Context, status domain.MatchStatus) (int32, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int32), args.Error(1)
}

// MockSettingRepo
type MockSettingRepo struct {
	mock.Mock
}

func (m *MockSettingRepo) GetMatchSettings(ctx context.Context) (*domain.MatchSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MatchSettings), args.Error(1)
}
func (m *MockSettingRepo) SaveMatchSettings(ctx context.Context, settings *domain.MatchSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendProfileReceived(ctx context.Context, email string, role domain.Role) error {
	args := m.Called(ctx, email, role)
	return args.Error(0)
}
func (m *MockEmailService) SendMatchProposal(ctx context.Context, volunteerEmail, associationEmail string, matchID int32, volunteerToken, associationToken string) error {
	args := m.Called(ctx, volunteerEmail, associationEmail, matchID, volunteerToken, associationToken)
	return args.Error(0)
}
func (m *MockEmailService) SendMatchAccepted(ctx context.Context, volunteerEmail, associationEmail string) error {
	args := m.Called(ctx, volunteerEmail, associationEmail)
	return args.Error(0)
}
