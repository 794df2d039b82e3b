package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"carbontrack/internal/emissions"
	apperrors "carbontrack/internal/errors"
	"carbontrack/internal/models"
	"carbontrack/internal/pagination"
)

const recentActivityLimit = 10

// activityService owns persistence and query semantics for activity records.
type activityService struct {
	db *gorm.DB
}

// NewActivityService creates a new ActivityServicer.
func NewActivityService(db *gorm.DB) ActivityServicer {
	return &activityService{db: db}
}

// detailFieldsFor maps each activity type to the detail fields its variant owns.
func foreignDetailFields(activityType models.ActivityType, d models.ActivityDetails) []string {
	var foreign []string

	transport := d.Distance != nil || d.VehicleType != nil
	energy := d.EnergyAmount != nil || d.EnergySource != nil
	food := d.MealType != nil || d.FoodType != nil
	shopping := d.ItemType != nil || d.Quantity != nil

	if transport && activityType != models.ActivityTypeTransport {
		foreign = append(foreign, "details.distance/vehicleType")
	}
	if energy && activityType != models.ActivityTypeEnergy {
		foreign = append(foreign, "details.energyAmount/energySource")
	}
	if food && activityType != models.ActivityTypeFood {
		foreign = append(foreign, "details.mealType/foodType")
	}
	if shopping && activityType != models.ActivityTypeShopping {
		foreign = append(foreign, "details.itemType/quantity")
	}
	return foreign
}

// validationError builds a 400 AppError naming the offending fields.
func validationError(fields []string) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput,
		"invalid fields: "+strings.Join(fields, ", "))
}

// CreateActivity validates the draft, computes the impact when the caller
// has not, assigns an id, and persists the record.
func (s *activityService) CreateActivity(userID string, draft ActivityDraft) (*models.Activity, error) {
	var invalid []string

	if !draft.Type.Valid() {
		invalid = append(invalid, "type")
	} else {
		invalid = append(invalid, foreignDetailFields(draft.Type, draft.Details)...)
	}
	if draft.Impact != nil && *draft.Impact < 0 {
		invalid = append(invalid, "impact")
	}
	if len(invalid) > 0 {
		return nil, validationError(invalid)
	}

	description := draft.Description
	if description == "" {
		description = emissions.Describe(draft.Type, draft.Details)
	}
	category := draft.Category
	if category == "" {
		category = emissions.CategoryFor(draft.Type, draft.Details)
	}
	unit := draft.Unit
	if unit == "" {
		unit = models.DefaultUnit
	}
	date := draft.Date
	if date.IsZero() {
		date = time.Now()
	}

	impact := emissions.Estimate(draft.Type, draft.Details)
	if draft.Impact != nil {
		impact = emissions.Round2(*draft.Impact)
	}

	activity := &models.Activity{
		UserID:      userID,
		Type:        draft.Type,
		Description: description,
		Impact:      impact,
		Unit:        unit,
		Date:        date,
		Category:    category,
		Details:     draft.Details,
	}

	if err := s.db.Create(activity).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return activity, nil
}

// GetActivityByID retrieves an activity iff it exists and belongs to the
// user. The ownership filter is part of the query, so records owned by other
// users are indistinguishable from absent ones.
func (s *activityService) GetActivityByID(userID, activityID string) (*models.Activity, error) {
	var activity models.Activity
	if err := s.db.Where("id = ? AND user_id = ?", activityID, userID).First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &activity, nil
}

// UpdateActivity merges the provided fields into the existing record. The
// stored impact is recomputed only when the payload carries a new impact or
// new detail fields; otherwise the creation-time value is preserved.
func (s *activityService) UpdateActivity(userID, activityID string, fields ActivityUpdateFields) (*models.Activity, error) {
	activity, err := s.GetActivityByID(userID, activityID)
	if err != nil {
		return nil, err
	}

	var invalid []string
	if fields.Description != nil && *fields.Description == "" {
		invalid = append(invalid, "description")
	}
	if fields.Category != nil && *fields.Category == "" {
		invalid = append(invalid, "category")
	}
	if fields.Impact != nil && *fields.Impact < 0 {
		invalid = append(invalid, "impact")
	}
	if fields.Details != nil {
		invalid = append(invalid, foreignDetailFields(activity.Type, *fields.Details)...)
	}
	if len(invalid) > 0 {
		return nil, validationError(invalid)
	}

	if fields.Description != nil {
		activity.Description = *fields.Description
	}
	if fields.Unit != nil && *fields.Unit != "" {
		activity.Unit = *fields.Unit
	}
	if fields.Date != nil {
		activity.Date = *fields.Date
	}
	if fields.Category != nil {
		activity.Category = *fields.Category
	}
	if fields.Details != nil {
		activity.Details = *fields.Details
		activity.Impact = emissions.Estimate(activity.Type, activity.Details)
	}
	if fields.Impact != nil {
		activity.Impact = emissions.Round2(*fields.Impact)
	}

	if err := s.db.Save(activity).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return activity, nil
}

// DeleteActivity removes an owned activity. A second delete of the same id
// reports not found rather than failing.
func (s *activityService) DeleteActivity(userID, activityID string) error {
	result := s.db.Where("id = ? AND user_id = ?", activityID, userID).Delete(&models.Activity{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrActivityNotFound
	}
	return nil
}

// BulkDeleteActivities removes the owned records among activityIDs and
// reports how many were actually deleted. Ids that do not exist or belong to
// another user are silently ignored.
func (s *activityService) BulkDeleteActivities(userID string, activityIDs []string) (int64, error) {
	if len(activityIDs) == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "activityIds must not be empty")
	}

	result := s.db.Where("user_id = ? AND id IN ?", userID, activityIDs).Delete(&models.Activity{})
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	return result.RowsAffected, nil
}

// ListActivities returns a page of the user's activities ordered by activity
// date descending, plus the total matching count computed independently of
// the page window.
func (s *activityService) ListActivities(userID string, page pagination.PageRequest, filter ActivityFilter) (*pagination.PageResponse[models.Activity], error) {
	page.Defaults()

	base := s.db.Model(&models.Activity{}).Where("user_id = ?", userID)
	if filter.Type != nil {
		base = base.Where("type = ?", *filter.Type)
	}
	if filter.StartDate != nil {
		base = base.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		base = base.Where("date <= ?", *filter.EndDate)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var activities []models.Activity
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC, id DESC").
		Find(&activities).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(activities, total)
	return &result, nil
}

// RecentActivities returns the user's last 10 records by logging time, not
// by when the activity itself occurred.
func (s *activityService) RecentActivities(userID string) ([]models.Activity, error) {
	var activities []models.Activity
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(recentActivityLimit).
		Find(&activities).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if activities == nil {
		activities = []models.Activity{}
	}
	return activities, nil
}
