package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"studio-backend/models"

	"gorm.io/gorm"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "sid"

// SessionService keeps admin sessions in the database so they survive
// restarts and are shared by every instance.
type SessionService struct {
	DB  *gorm.DB
	TTL time.Duration
	Now func() time.Time
}

func NewSessionService(db *gorm.DB, ttl time.Duration) *SessionService {
	return &SessionService{DB: db, TTL: ttl, Now: time.Now}
}

func generateTokenHex(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Create opens a session for userID and returns it with its token.
func (s *SessionService) Create(ctx context.Context, userID uint) (*models.Session, error) {
	token, err := generateTokenHex(32)
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	session := &models.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: s.Now().UTC().Add(s.TTL),
	}
	if err := s.DB.WithContext(ctx).Create(session).Error; err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// Lookup returns the user owning an unexpired session with token, or nil, nil.
func (s *SessionService) Lookup(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}

	var session models.Session
	err := s.DB.WithContext(ctx).
		Preload("User").
		Where("token = ? AND expires_at > ?", token, s.Now().UTC()).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup session: %w", err)
	}
	if session.User.ID == 0 {
		return nil, nil
	}
	return &session.User, nil
}

// Authenticate resolves the admin behind a request from the session cookie
// or an "Authorization: Bearer" header.
func (s *SessionService) Authenticate(r *http.Request) (*models.User, error) {
	return s.Lookup(r.Context(), TokenFromRequest(r))
}

func TokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	auth := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func (s *SessionService) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.DB.WithContext(ctx).Where("token = ?", token).Delete(&models.Session{}).Error; err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

// PurgeExpired deletes every expired session and reports how many went.
func (s *SessionService) PurgeExpired(ctx context.Context) (int64, error) {
	res := s.DB.WithContext(ctx).Where("expires_at <= ?", s.Now().UTC()).Delete(&models.Session{})
	if res.Error != nil {
		return 0, fmt.Errorf("purge expired sessions: %w", res.Error)
	}
	return res.RowsAffected, nil
}
