package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

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

func (s *emailService) SendUpgradeRequestNotification(ctx context.Context, adminEmail, requesterEmail, tenantName string) error {
	subject := fmt.Sprintf("Upgrade request for %s", tenantName)
	body := fmt.Sprintf("Hello,\n\n%s has requested a Pro upgrade for %s.\n\nReview the request in the admin dashboard.", requesterEmail, tenantName)
	return s.send(adminEmail, subject, body)
}

func (s *emailService) SendUpgradeDecisionNotification(ctx context.Context, requesterEmail, tenantName string, approved bool) error {
	decision := "rejected"
	body := fmt.Sprintf("Hello,\n\nYour upgrade request for %s has been rejected.", tenantName)
	if approved {
		decision = "approved"
		body = fmt.Sprintf("Hello,\n\nYour upgrade request for %s has been approved. %s is now on the Pro plan.", tenantName, tenantName)
	}
	subject := fmt.Sprintf("Upgrade request %s - %s", decision, tenantName)
	return s.send(requesterEmail, subject, body)
}

func (s *emailService) SendPendingRequestReminder(ctx context.Context, adminEmail, tenantName string, pendingCount int32) error {
	subject := fmt.Sprintf("Pending upgrade requests - %s", tenantName)
	body := fmt.Sprintf("Hello,\n\n%s has %d pending upgrade request(s) awaiting review.", tenantName, pendingCount)
	return s.send(adminEmail, subject, body)
}
