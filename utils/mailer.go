package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends a single notification message.
type Mailer interface {
	Send(ctx context.Context, to, subject, plainBody, htmlBody string) error
}

// NewMailer returns a SendGrid mailer when an API key is configured and a
// logging mailer otherwise.
func NewMailer(apiKey, from string) Mailer {
	if strings.TrimSpace(apiKey) == "" {
		return LogMailer{}
	}
	return &SendGridMailer{client: sendgrid.NewSendClient(apiKey), from: from}
}

type SendGridMailer struct {
	client *sendgrid.Client
	from   string
}

func (m *SendGridMailer) Send(ctx context.Context, to, subject, plainBody, htmlBody string) error {
	message := mail.NewSingleEmail(
		mail.NewEmail("Studio", m.from),
		safeHeader(subject),
		mail.NewEmail("", to),
		plainBody,
		htmlBody,
	)

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		log.Error().Err(err).Str("to", to).Msg("failed to send email")
		return err
	}
	if resp.StatusCode >= 400 {
		log.Error().Int("status", resp.StatusCode).Str("to", to).Msg("sendgrid rejected email")
		return fmt.Errorf("sendgrid: status %d", resp.StatusCode)
	}

	log.Info().Str("to", to).Msg("email sent")
	return nil
}

// LogMailer only logs. Used when no mail provider is configured.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, to, subject, _, _ string) error {
	log.Info().Str("to", to).Str("subject", subject).Msg("[MOCK EMAIL]")
	return nil
}

func safeHeader(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
