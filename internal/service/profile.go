package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"volunmatch-backend/internal/domain"
	"volunmatch-backend/internal/logger"
	"volunmatch-backend/internal/repository"
	"volunmatch-backend/internal/security"
)

type profileService struct {
	userRepo        repository.UserRepository
	volunteerRepo   repository.VolunteerRepository
	associationRepo repository.AssociationRepository
	opportunityRepo repository.OpportunityRepository
	emailSvc        EmailService
}

func NewProfileService(
	userRepo repository.UserRepository,
	volunteerRepo repository.VolunteerRepository,
	associationRepo repository.AssociationRepository,
	opportunityRepo repository.OpportunityRepository,
	emailSvc EmailService,
) ProfileService {
	return &profileService{
		userRepo:        userRepo,
		volunteerRepo:   volunteerRepo,
		associationRepo: associationRepo,
		opportunityRepo: opportunityRepo,
		emailSvc:        emailSvc,
	}
}

func (s *profileService) createUser(ctx context.Context, role domain.Role, email, firstName, lastName string, languages []string, country, city string) (*domain.User, *Credentials, error) {
	tempPassword := security.GenerateTempPassword()
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Role:         role,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
		Languages:    languages,
		Country:      country,
		City:         city,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, err
	}
	return user, &Credentials{Login: email, Password: tempPassword}, nil
}

// RegisterVolunteer creates the user and volunteer profile from a form
// submission. New profiles start unapproved and enter matching only after
// an admin approves them.
func (s *profileService) RegisterVolunteer(ctx context.Context, signup *VolunteerSignup) (*domain.Volunteer, *Credentials, error) {
	user, creds, err := s.createUser(ctx, domain.RoleVolunteer, signup.Email, signup.FirstName, signup.LastName, signup.Languages, signup.Country, signup.City)
	if err != nil {
		return nil, nil, err
	}

	volunteer := &domain.Volunteer{
		UserID:             user.ID,
		Skills:             signup.Skills,
		Causes:             signup.Causes,
		Availability:       signup.Availability,
		AvailableFrom:      signup.AvailableFrom,
		AvailableTo:        signup.AvailableTo,
		Modality:           signup.Modality,
		PreferredCountries: signup.PreferredCountries,
		RemoteOk:           signup.RemoteOk,
		ShareEmail:         signup.Consent,
	}
	if err := s.volunteerRepo.Create(ctx, volunteer); err != nil {
		return nil, nil, err
	}

	if err := s.emailSvc.SendProfileReceived(ctx, user.Email, domain.RoleVolunteer); err != nil {
		logger.Warn("Failed to send volunteer confirmation email", "email", user.Email, "error", err)
	}

	return volunteer, creds, nil
}

// RegisterAssociation creates the user, the association profile, and its
// first opportunity from a form submission.
func (s *profileService) RegisterAssociation(ctx context.Context, signup *AssociationSignup) (*domain.Association, *Credentials, error) {
	user, creds, err := s.createUser(ctx, domain.RoleAssociation, signup.Email, "", "", nil, "", "")
	if err != nil {
		return nil, nil, err
	}

	assoc := &domain.Association{
		UserID:      user.ID,
		OrgName:     signup.OrgName,
		Website:     signup.Website,
		Social:      signup.Social,
		LegalStatus: signup.LegalStatus,
		ShareEmail:  signup.Consent,
	}
	if err := s.associationRepo.Create(ctx, assoc); err != nil {
		return nil, nil, err
	}

	opportunity := &domain.Opportunity{
		AssociationID:  assoc.ID,
		Title:          signup.MissionTitle,
		Description:    signup.Description,
		RequiredSkills: signup.RequiredSkills,
		Causes:         signup.Causes,
		StartDate:      signup.StartDate,
		EndDate:        signup.EndDate,
		Modality:       signup.Modality,
		Country:        signup.Country,
		City:           signup.City,
		Urgency:        signup.Urgency,
		Active:         true,
	}
	if err := s.opportunityRepo.Create(ctx, opportunity); err != nil {
		return nil, nil, err
	}

	if err := s.emailSvc.SendProfileReceived(ctx, user.Email, domain.RoleAssociation); err != nil {
		logger.Warn("Failed to send association confirmation email", "email", user.Email, "error", err)
	}

	return assoc, creds, nil
}
