package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "carbontrack/internal/errors"
	"carbontrack/internal/models"
)

// sessionService manages opaque bearer session tokens.
type sessionService struct {
	db  *gorm.DB
	ttl time.Duration
}

// NewSessionService creates a new SessionServicer issuing tokens valid for ttl.
func NewSessionService(db *gorm.DB, ttl time.Duration) SessionServicer {
	return &sessionService{db: db, ttl: ttl}
}

// newToken returns a 64-character random hex token.
func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// CreateSession issues a fresh session token for the user.
func (s *sessionService) CreateSession(userID string) (*models.Session, error) {
	token, err := newToken()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	session := &models.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.db.Create(session).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return session, nil
}

// ValidateToken looks up the session row for a token. An expired row is
// deleted before the unauthorized error is returned, so the token can never
// be reused.
func (s *sessionService) ValidateToken(token string) (*models.Session, error) {
	var session models.Session
	if err := s.db.Where("token = ?", token).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if session.Expired(time.Now()) {
		if err := s.db.Delete(&session).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil, apperrors.ErrSessionExpired
	}

	return &session, nil
}

// DeleteByToken removes the session row for a token. Deleting a token that
// no longer exists is a no-op.
func (s *sessionService) DeleteByToken(token string) error {
	if err := s.db.Where("token = ?", token).Delete(&models.Session{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
