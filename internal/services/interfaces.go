package services

import (
	"time"

	"carbontrack/internal/models"
	"carbontrack/internal/pagination"
)

// ProfileUpdateFields holds the optional fields of a profile update.
// Nil fields are left unchanged.
type ProfileUpdateFields struct {
	Name          *string
	MonthlyTarget *float64
	Goals         *models.Goals
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(name, email string, monthlyTarget *float64) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	RecordLogin(userID string) error
	UpdateProfile(userID string, fields ProfileUpdateFields) (*models.User, error)
}

// SessionServicer defines the contract for session token management.
type SessionServicer interface {
	CreateSession(userID string) (*models.Session, error)
	// ValidateToken returns the session for a token iff the row exists and
	// has not expired. Expired rows are deleted on detection (lazy cleanup).
	ValidateToken(token string) (*models.Session, error)
	DeleteByToken(token string) error
}

// ActivityDraft holds the fields of an activity creation request. Impact may
// be precomputed by the caller; when nil it is derived from the details.
type ActivityDraft struct {
	Type        models.ActivityType
	Description string
	Impact      *float64
	Unit        string
	Date        time.Time
	Category    string
	Details     models.ActivityDetails
}

// ActivityUpdateFields holds the optional fields of a partial activity
// update. Nil fields are left unchanged; Type is immutable by design.
type ActivityUpdateFields struct {
	Description *string
	Impact      *float64
	Unit        *string
	Date        *time.Time
	Category    *string
	Details     *models.ActivityDetails
}

// ActivityFilter holds optional filter parameters for listing activities.
// Date bounds are inclusive.
type ActivityFilter struct {
	Type      *models.ActivityType
	StartDate *time.Time
	EndDate   *time.Time
}

// ActivityServicer defines the contract for the activity ledger. Every
// operation is scoped to the owning user at the query level; records owned
// by other users behave as if they do not exist.
type ActivityServicer interface {
	CreateActivity(userID string, draft ActivityDraft) (*models.Activity, error)
	GetActivityByID(userID, activityID string) (*models.Activity, error)
	UpdateActivity(userID, activityID string, fields ActivityUpdateFields) (*models.Activity, error)
	DeleteActivity(userID, activityID string) error
	BulkDeleteActivities(userID string, activityIDs []string) (int64, error)
	ListActivities(userID string, page pagination.PageRequest, filter ActivityFilter) (*pagination.PageResponse[models.Activity], error)
	RecentActivities(userID string) ([]models.Activity, error)
}

// CategoryBucket is one slice of the footprint-by-category breakdown.
type CategoryBucket struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
	Color    string  `json:"color"`
}

// TrendPoint is one month of the six-month trend series.
type TrendPoint struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// DayTotal is the summed impact of a single day.
type DayTotal struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// EfficiencyMetrics are derived statistics, computed on demand and never stored.
type EfficiencyMetrics struct {
	AveragePerActivity float64   `json:"averagePerActivity"`
	BestDay            *DayTotal `json:"bestDay,omitempty"`
	WorstDay           *DayTotal `json:"worstDay,omitempty"`
	StreakDays         int       `json:"streakDays"`
	Improvement        float64   `json:"improvement"`
}

// AnalyticsSummary is the full analytics payload for a user and period.
type AnalyticsSummary struct {
	TotalFootprint      float64          `json:"totalFootprint"`
	DailyAverage        float64          `json:"dailyAverage"`
	ActivityCount       int64            `json:"activityCount"`
	FootprintByCategory []CategoryBucket `json:"footprintByCategory"`
	TrendData           []TrendPoint     `json:"trendData"`
	Efficiency          EfficiencyMetrics `json:"efficiency"`
}

// AnalyticsServicer derives summary views from the activity ledger.
type AnalyticsServicer interface {
	TotalFootprint(userID, period string) (float64, error)
	// FootprintByCategory groups impacts into the four fixed type buckets.
	// Zero-value buckets are filtered from the result; chart callers that
	// want empty segments can zero-fill from the known bucket order.
	FootprintByCategory(userID string, since *time.Time) ([]CategoryBucket, error)
	TrendData(userID string) ([]TrendPoint, error)
	GetSummary(userID, period string) (*AnalyticsSummary, error)
}
