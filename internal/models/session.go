package models

import "time"

// Session represents a bearer session token row. A request is authenticated
// iff its token matches a row whose ExpiresAt is in the future; expired rows
// are deleted lazily when presented.
type Session struct {
	Base
	Token     string    `gorm:"uniqueIndex;size:64;not null" json:"token"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"userId"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// Expired reports whether the session is past its expiry instant.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
