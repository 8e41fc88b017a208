package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"volunmatch-backend/internal/domain"
	"volunmatch-backend/internal/service"
)

func proposedMatch() *domain.Match {
	return &domain.Match{
		ID:               7,
		VolunteerID:      1,
		OpportunityID:    2,
		Score:            79,
		Status:           domain.MatchStatusProposed,
		VolunteerToken:   "vol-token",
		AssociationToken: "assoc-token",
	}
}

func TestMatchService_ConfirmMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown token", func(t *testing.T) {
		volunteerRepo := new(MockVolunteerRepo)
		opportunityRepo := new(MockOpportunityRepo)
		matchRepo := new(MockMatchRepo)
		settingRepo := new(MockSettingRepo)
		emailSvc := new(MockEmailService)
		svc := newMatchService(volunteerRepo, opportunityRepo, matchRepo, settingRepo, emailSvc)

		matchRepo.On("GetByToken", ctx, "not-a-real-token").Return(nil, nil)

		result, err := svc.ConfirmMatch(ctx, "not-a-real-token", service.ConfirmActionAccept)
		assert.NoError(t, err)
		assert.False(t, result.OK)
		assert.Equal(t, "Match not found", result.Message)
		matchRepo.AssertNotCalled(t, "UpdateStatus", ctx, mock.Anything, mock.Anything)
		matchRepo.AssertNotCalled(t, "SetVolunteerAccepted", ctx, mock.Anything)
		matchRepo.AssertNotCalled(t, "SetAssociationAccepted", ctx, mock.Anything)
	})

	t.Run("First accept keeps status proposed", func(t *testing.T) {
		volunteerRepo := new(MockVolunteerRepo)
		opportunityRepo := new(MockOpportunityRepo)
		matchRepo := new(MockMatchRepo)
		settingRepo := new(MockSettingRepo)
		emailSvc := new(MockEmailService)
		svc := newMatchService(volunteerRepo, opportunityRepo, matchRepo, settingRepo, emailSvc)

		matchRepo.On("GetByToken", ctx, "vol-token").Return(proposedMatch(), nil)
		matchRepo.On("SetVolunteerAccepted", ctx, int32(7)).Return(nil)

		result, err := svc.ConfirmMatch(ctx, "vol-token", service.ConfirmActionAccept)
		assert.NoError(t, err)
		assert.True(t, result.OK)
		assert.Equal(t, domain.MatchStatusProposed, result.Status)
		matchRepo.AssertNotCalled(t, "UpdateStatus", ctx, mock.Anything, mock.Anything)
		emailSvc.AssertNotCalled(t, "SendMatchAccepted", ctx, mock.Anything, mock.Anything)
	})

	t.Run("Second accept yields mutual acceptance", func(t *testing.T) {
		volunteerRepo := new(MockVolunteerRepo)
		opportunityRepo := new(MockOpportunityRepo)
		matchRepo := new(MockMatchRepo)
		settingRepo := new(MockSettingRepo)
		emailSvc := new(MockEmailService)
		svc := newMatchService(volunteerRepo, opportunityRepo, matchRepo, settingRepo, emailSvc)

		match := proposedMatch()
		match.VolunteerAccepted = true

		matchRepo.On("GetByToken", ctx, "assoc-token").Return(match, nil)
		matchRepo.On("SetAssociationAccepted", ctx, int32(7)).Return(nil)
		matchRepo.On("UpdateStatus", ctx, int32(7), domain.MatchStatusAccepted).Return(nil)
		matchRepo.On("GetContacts", ctx, int32(7)).Return(&domain.MatchContacts{
			VolunteerEmail:   "vol@test.com",
			AssociationEmail: "assoc@test.com",
		}, nil)
		emailSvc.On("SendMatchAccepted", ctx, "vol@test.com", "assoc@test.com").Return(nil)

		result, err := svc.ConfirmMatch(ctx, "assoc-token", service.ConfirmActionAccept)
		assert.NoError(t, err)
		assert.True(t, result.OK)
		assert.Equal(t, domain.MatchStatusAccepted, result.Status)
		emailSvc.AssertExpectations(t)
	})

	t.Run("Re-accepting an accepted side is a no-op", func(t *testing.T) {
		volunteerRepo := new(MockVolunteerRepo)
		opportunityRepo := new(MockOpportunityRepo)
		matchRepo := new(MockMatchRepo)
		settingRepo := new(MockSettingRepo)
		emailSvc := new(MockEmailService)
		svc := newMatchService(volunteerRepo, opportunityRepo, matchRepo, settingRepo, emailSvc)

		match := proposedMatch()
		match.VolunteerAccepted = true

		matchRepo.On("GetByToken", ctx, "vol-token").Return(match, nil)
		matchRepo.On("SetVolunteerAccepted", ctx, int32(7)).Return(nil)

		result, err := svc.ConfirmMatch(ctx, "vol-token", service.ConfirmActionAccept)
		assert.NoError(t, err)
		assert.True(t, result.OK)
		assert.Equal(t, domain.MatchStatusProposed, result.Status)
	})

	t.Run("Accept after decline still promotes on both flags", func(t *testing.T) {
		volunteerRepo := new(MockVolunteerRepo)
		opportunityRepo := new(MockOpportunityRepo)
		matchRepo := new(MockMatchRepo)
		settingRepo := new(MockSettingRepo)
		emailSvc := new(MockEmailService)
		svc := newMatchService(volunteerRepo, opportunityRepo, matchRepo, settingRepo, emailSvc)

		// The confirmation links stay live after a decline; the acceptance
		// flags remain the source of truth for mutual acceptance.
		match := proposedMatch()
		match.Status = domain.MatchStatusDeclined
		match.VolunteerAccepted = true

		matchRepo.On("GetByToken", ctx, "assoc-token").Return(match, nil)
		matchRepo.On("SetAssociationAccepted", ctx, int32(7)).Return(nil)
		matchRepo.On("UpdateStatus", ctx, int32(7), domain.MatchStatusAccepted).Return(nil)
		matchRepo.On("GetContacts", ctx, int32(7)).Return(&domain.MatchContacts{
			VolunteerEmail:   "vol@test.com",
			AssociationEmail: "assoc@test.com",
		}, nil)
		emailSvc.On("SendMatchAccepted", ctx, "vol@test.com", "assoc@test.com").Return(nil)

		result, err := svc.ConfirmMatch(ctx, "assoc-token", service.ConfirmActionAccept)
		assert.NoError(t, err)
		assert.True(t, result.OK)
		assert.Equal(t, domain.MatchStatusAccepted, result.Status)
		matchRepo.AssertExpectations(t)
		emailSvc.AssertExpectations(t)
	})

	t.Run("Decline is absorbing", func(t *testing.T) {
		volunteerRepo := new(MockVolunteerRepo)
		opportunityRepo := new(MockOpportunityRepo)
		matchRepo := new(MockMatchRepo)
		settingRepo := new(MockSettingRepo)
		emailSvc := new(MockEmailService)
		svc := newMatchService(volunteerRepo, opportunityRepo, matchRepo, settingRepo, emailSvc)

		match := proposedMatch()
		match.VolunteerAccepted = true
		match.AssociationAccepted = true
		match.Status = domain.MatchStatusAccepted

		matchRepo.On("GetByToken", ctx, "assoc-token").Return(match, nil)
		matchRepo.On("UpdateStatus", ctx, int32(7), domain.MatchStatusDeclined).Return(nil)

		result, err := svc.ConfirmMatch(ctx, "assoc-token", service.ConfirmActionDecline)
		assert.NoError(t, err)
		assert.True(t, result.OK)
		assert.Equal(t, domain.MatchStatusDeclined, result.Status)
		matchRepo.AssertNotCalled(t, "SetVolunteerAccepted", ctx, mock.Anything)
		matchRepo.AssertNotCalled(t, "SetAssociationAccepted", ctx, mock.Anything)
		emailSvc.AssertNotCalled(t, "SendMatchAccepted", ctx, mock.Anything, mock.Anything)
	})
}
