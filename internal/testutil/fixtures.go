package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"carbontrack/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a unique email and the default target.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Name:          fmt.Sprintf("Test User %d", nextID()),
		Email:         email,
		MonthlyTarget: models.DefaultMonthlyTarget,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestSession creates a session for the user expiring in one hour.
func CreateTestSession(t *testing.T, db *gorm.DB, userID string) *models.Session {
	t.Helper()
	return CreateTestSessionExpiring(t, db, userID, time.Now().Add(time.Hour))
}

// CreateTestSessionExpiring creates a session with the given expiry instant.
func CreateTestSessionExpiring(t *testing.T, db *gorm.DB, userID string, expiresAt time.Time) *models.Session {
	t.Helper()

	session := &models.Session{
		Token:     fmt.Sprintf("%064x", nextID()),
		UserID:    userID,
		ExpiresAt: expiresAt,
	}
	if err := db.Create(session).Error; err != nil {
		t.Fatalf("failed to create test session: %v", err)
	}
	return session
}

// CreateTestActivity creates an activity of the given type with a fixed
// impact, dated now.
func CreateTestActivity(t *testing.T, db *gorm.DB, userID string, activityType models.ActivityType, impact float64) *models.Activity {
	t.Helper()
	return CreateTestActivityOn(t, db, userID, activityType, impact, time.Now())
}

// CreateTestActivityOn creates an activity of the given type, impact, and date.
func CreateTestActivityOn(t *testing.T, db *gorm.DB, userID string, activityType models.ActivityType, impact float64, date time.Time) *models.Activity {
	t.Helper()

	activity := &models.Activity{
		UserID:      userID,
		Type:        activityType,
		Description: fmt.Sprintf("Test Activity %d", nextID()),
		Impact:      impact,
		Unit:        models.DefaultUnit,
		Date:        date,
		Category:    "General",
	}
	if err := db.Create(activity).Error; err != nil {
		t.Fatalf("failed to create test activity: %v", err)
	}
	return activity
}

// CreateTestTransportActivity creates a car trip over the given distance,
// leaving the impact at zero so services can compute it.
func CreateTestTransportActivity(t *testing.T, db *gorm.DB, userID string, distanceKm float64) *models.Activity {
	t.Helper()

	vehicle := "Car"
	activity := &models.Activity{
		UserID:      userID,
		Type:        models.ActivityTypeTransport,
		Description: fmt.Sprintf("Car trip of %.1f km", distanceKm),
		Impact:      distanceKm * 0.4,
		Unit:        models.DefaultUnit,
		Date:        time.Now(),
		Category:    "Car Travel",
		Details: models.ActivityDetails{
			Distance:    &distanceKm,
			VehicleType: &vehicle,
		},
	}
	if err := db.Create(activity).Error; err != nil {
		t.Fatalf("failed to create test transport activity: %v", err)
	}
	return activity
}
