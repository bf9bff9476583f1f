package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

type EmailService struct {
	client    *resend.Client
	fromEmail string
	appURL    string
	appName   string
	isDev     bool
}

func NewEmailService(apiKey, fromEmail, appURL, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		appURL:    appURL,
		appName:   appName,
		isDev:     isDev,
	}
}

// SendVerificationEmail delivers the single-use verification link. In
// development the link is logged instead of sent.
func (s *EmailService) SendVerificationEmail(email, token, username string) error {
	verifyURL := fmt.Sprintf("%s/verify?token=%s", s.appURL, token)
	subject, body := verificationEmailTemplate(username, verifyURL, s.appName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "verification", "to", email, "subject", subject, "url", verifyURL)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.appName, s.fromEmail),
		To:      []string{email},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(context.Background(), params)
	if err == nil {
		slog.Info("email sent", "type", "verification", "to", email)
	}
	return err
}
