package services

import (
	"testing"
	"time"

	"carbontrack/internal/models"
	"carbontrack/internal/testutil"
)

func TestCreateSession(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewSessionService(db, time.Hour)

	user := testutil.CreateTestUser(t, db)
	session, err := svc.CreateSession(user.ID)
	testutil.AssertNoError(t, err)

	if len(session.Token) != 64 {
		t.Errorf("expected 64-character hex token, got %d characters", len(session.Token))
	}
	if session.UserID != user.ID {
		t.Errorf("expected session for user %s, got %s", user.ID, session.UserID)
	}
	if !session.ExpiresAt.After(time.Now()) {
		t.Error("fresh session should expire in the future")
	}

	// Two sessions for the same user must get distinct tokens.
	second, err := svc.CreateSession(user.ID)
	testutil.AssertNoError(t, err)
	if second.Token == session.Token {
		t.Error("expected a distinct token per session")
	}
}

func TestValidateToken(t *testing.T) {
	t.Run("valid_token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSessionService(db, time.Hour)

		user := testutil.CreateTestUser(t, db)
		created, err := svc.CreateSession(user.ID)
		testutil.AssertNoError(t, err)

		session, err := svc.ValidateToken(created.Token)
		testutil.AssertNoError(t, err)
		if session.UserID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, session.UserID)
		}
	})

	t.Run("unknown_token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSessionService(db, time.Hour)

		_, err := svc.ValidateToken("deadbeef")
		testutil.AssertAppError(t, err, "UNAUTHORIZED")
	})

	t.Run("expired_token_is_deleted", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSessionService(db, time.Hour)

		user := testutil.CreateTestUser(t, db)
		expired := testutil.CreateTestSessionExpiring(t, db, user.ID, time.Now().Add(-time.Minute))

		_, err := svc.ValidateToken(expired.Token)
		testutil.AssertAppError(t, err, "SESSION_EXPIRED")

		// The row is gone, so the same token now fails as unknown.
		_, err = svc.ValidateToken(expired.Token)
		testutil.AssertAppError(t, err, "UNAUTHORIZED")

		var count int64
		db.Model(&models.Session{}).Where("token = ?", expired.Token).Count(&count)
		if count != 0 {
			t.Errorf("expected expired session row to be deleted, found %d", count)
		}
	})
}

func TestDeleteByToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewSessionService(db, time.Hour)

	user := testutil.CreateTestUser(t, db)
	session, err := svc.CreateSession(user.ID)
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, svc.DeleteByToken(session.Token))

	_, err = svc.ValidateToken(session.Token)
	testutil.AssertAppError(t, err, "UNAUTHORIZED")

	// Deleting an already-deleted token is a no-op.
	testutil.AssertNoError(t, svc.DeleteByToken(session.Token))
}
