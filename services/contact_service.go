package services

import (
	"context"
	"fmt"
	"html"
	"strings"

	"studio-backend/models"
	"studio-backend/utils"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ContactService struct {
	DB       *gorm.DB
	Mailer   utils.Mailer
	NotifyTo string
}

func NewContactService(db *gorm.DB, mailer utils.Mailer, notifyTo string) *ContactService {
	return &ContactService{DB: db, Mailer: mailer, NotifyTo: notifyTo}
}

// Create stores the message and notifies the studio. A failed notification
// is logged and does not fail the submission.
func (s *ContactService) Create(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error) {
	if err := s.DB.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}

	if s.Mailer != nil && s.NotifyTo != "" {
		subject := "New contact message from " + msg.Name
		if err := s.Mailer.Send(ctx, s.NotifyTo, subject, contactPlainBody(msg), contactHTMLBody(msg)); err != nil {
			log.Warn().Err(err).Uint("contact_id", msg.ID).Msg("contact notification failed")
		}
	}
	return msg, nil
}

func (s *ContactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	messages := []models.ContactMessage{}
	if err := s.DB.WithContext(ctx).Order("created_at desc").Order("id desc").Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return messages, nil
}

func contactPlainBody(msg *models.ContactMessage) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name: %s\n", msg.Name)
	fmt.Fprintf(&sb, "Email: %s\n", msg.Email)
	if msg.Phone != "" {
		fmt.Fprintf(&sb, "Phone: %s\n", msg.Phone)
	}
	sb.WriteString("\n")
	sb.WriteString(msg.Message)
	sb.WriteString("\n")
	return sb.String()
}

func contactHTMLBody(msg *models.ContactMessage) string {
	return fmt.Sprintf(`<!doctype html>
<html>
<body style="font-family:Arial, Helvetica, sans-serif; color:#222;">
  <h2>New contact message</h2>
  <p><strong>Name:</strong> %s<br><strong>Email:</strong> %s<br><strong>Phone:</strong> %s</p>
  <p style="white-space:pre-wrap">%s</p>
</body>
</html>`,
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(msg.Phone),
		html.EscapeString(msg.Message),
	)
}
