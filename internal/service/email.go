package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"volunmatch-backend/internal/domain"
)

type emailService struct {
	apiKey   string
	from     string
	fromName string
	siteURL  string
}

func NewEmailService(apiKey, from, fromName, siteURL string) EmailService {
	return &emailService{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
		siteURL:  siteURL,
	}
}

// send delivers one message to every recipient in a single SendGrid call.
func (s *emailService) send(recipients []string, subject, plainText, htmlContent string) error {
	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(s.fromName, s.from))
	message.Subject = subject

	personalization := mail.NewPersonalization()
	for _, recipient := range recipients {
		personalization.AddTos(mail.NewEmail("", recipient))
	}
	message.AddPersonalizations(personalization)

	message.AddContent(mail.NewContent("text/plain", plainText))
	message.AddContent(mail.NewContent("text/html", htmlContent))

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendProfileReceived(ctx context.Context, email string, role domain.Role) error {
	subject := "Volunteer profile received"
	kind := "profile"
	if role == domain.RoleAssociation {
		subject = "Association brief received"
		kind = "brief"
	}
	plainText := fmt.Sprintf("Thank you! We received your %s and will get back to you soon. %s", kind, s.siteURL)
	htmlContent := fmt.Sprintf("Thank you! We received your %s and will get back to you soon.<br/>Find us at: %s", kind, s.siteURL)
	return s.send([]string{email}, subject, plainText, htmlContent)
}

func (s *emailService) SendMatchProposal(ctx context.Context, volunteerEmail, associationEmail string, matchID int32, volunteerToken, associationToken string) error {
	confirmURL := func(token, action string) string {
		return fmt.Sprintf("%s/match/confirm?token=%s&action=%s", s.siteURL, token, action)
	}

	subject := "We found a match!"
	plainText := fmt.Sprintf(
		"Confirm if this pairing works for you. Match %d ready.\n"+
			"Volunteer accept: %s decline: %s\n"+
			"Association accept: %s decline: %s",
		matchID,
		confirmURL(volunteerToken, "accept"), confirmURL(volunteerToken, "decline"),
		confirmURL(associationToken, "accept"), confirmURL(associationToken, "decline"))
	htmlContent := fmt.Sprintf(
		`<p>Confirm if this pairing works for you.</p>
		<p>Match %d ready.</p>
		<p>Volunteer: <a href="%s">Accept</a> | <a href="%s">Decline</a></p>
		<p>Association: <a href="%s">Accept</a> | <a href="%s">Decline</a></p>`,
		matchID,
		confirmURL(volunteerToken, "accept"), confirmURL(volunteerToken, "decline"),
		confirmURL(associationToken, "accept"), confirmURL(associationToken, "decline"))

	return s.send([]string{volunteerEmail, associationEmail}, subject, plainText, htmlContent)
}

func (s *emailService) SendMatchAccepted(ctx context.Context, volunteerEmail, associationEmail string) error {
	subject := "Both sides accepted - time to connect"
	plainText := fmt.Sprintf("Great news! Both sides accepted the match. Reply-all to agree on a first 30-min call. %s", s.siteURL)
	htmlContent := fmt.Sprintf("Great news! Both sides accepted the match.<br/>Reply-all to agree on a first 30-min call.<p>%s</p>", s.siteURL)
	return s.send([]string{volunteerEmail, associationEmail}, subject, plainText, htmlContent)
}
