package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "carbontrack/internal/errors"
	"carbontrack/internal/models"
	"carbontrack/internal/pagination"
	"carbontrack/internal/services"
)

// ActivityHandler handles activity ledger requests.
type ActivityHandler struct {
	activityService services.ActivityServicer
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activityService services.ActivityServicer) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// CreateActivityRequest represents the request payload for logging an activity
type CreateActivityRequest struct {
	Type        string                 `json:"type" binding:"required,activity_type"`
	Description string                 `json:"description" binding:"max=500"`
	Impact      *float64               `json:"impact" binding:"omitempty,gte=0"`
	Unit        string                 `json:"unit" binding:"max=20"`
	Date        string                 `json:"date" binding:"required"`
	Category    string                 `json:"category" binding:"max=100"`
	Details     models.ActivityDetails `json:"details"`
}

// UpdateActivityRequest represents the partial update payload. The activity
// type is an immutable classification and cannot be changed.
type UpdateActivityRequest struct {
	Description *string                 `json:"description" binding:"omitempty,max=500"`
	Impact      *float64                `json:"impact" binding:"omitempty,gte=0"`
	Unit        *string                 `json:"unit" binding:"omitempty,max=20"`
	Date        *string                 `json:"date"`
	Category    *string                 `json:"category" binding:"omitempty,max=100"`
	Details     *models.ActivityDetails `json:"details"`
}

// BulkDeleteRequest represents the bulk delete payload.
type BulkDeleteRequest struct {
	ActivityIDs []string `json:"activityIds" binding:"required,min=1"`
}

// ActivityResponse wraps a single activity payload.
type ActivityResponse struct {
	Activity models.Activity `json:"activity"`
}

// ActivityListResponse wraps a page of activities with the total match count.
type ActivityListResponse struct {
	Activities []models.Activity `json:"activities"`
	Total      int64             `json:"total"`
}

// CreateActivity handles logging a new activity
// @Summary     Log an activity
// @Description Create a new activity record; the impact is computed from the details when not supplied
// @Tags        activities
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateActivityRequest true "Activity details"
// @Success     201 {object} ActivityResponse "Activity created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /activities [post]
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseFlexibleTime(req.Date)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	activity, err := h.activityService.CreateActivity(userID, services.ActivityDraft{
		Type:        models.ActivityType(req.Type),
		Description: req.Description,
		Impact:      req.Impact,
		Unit:        req.Unit,
		Date:        date,
		Category:    req.Category,
		Details:     req.Details,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"activity": activity})
}

// GetActivities handles the filtered, paginated activity listing
// @Summary     List activities
// @Description Get a page of the user's activities, most recent activity date first
// @Tags        activities
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       limit     query int    false "Page size (default 20, max 100)"
// @Param       offset    query int    false "Offset into the filtered set"
// @Param       type      query string false "Filter by activity type (transport, energy, food, shopping)"
// @Param       startDate query string false "Inclusive lower bound on activity date (RFC3339 or YYYY-MM-DD)"
// @Param       endDate   query string false "Inclusive upper bound on activity date (RFC3339 or YYYY-MM-DD)"
// @Success     200 {object} ActivityListResponse "Page of activities plus total"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /activities [get]
func (h *ActivityHandler) GetActivities(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := parseActivityFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.activityService.ListActivities(userID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"activities": result.Data,
		"total":      result.Total,
	})
}

func parseActivityFilter(c *gin.Context) (services.ActivityFilter, error) {
	var filter services.ActivityFilter

	if v := c.Query("type"); v != "" {
		activityType := models.ActivityType(v)
		if !activityType.Valid() {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid type, must be transport, energy, food, or shopping")
		}
		filter.Type = &activityType
	}

	if v := c.Query("startDate"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid startDate format, use RFC3339 or YYYY-MM-DD")
		}
		filter.StartDate = &t
	}

	if v := c.Query("endDate"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid endDate format, use RFC3339 or YYYY-MM-DD")
		}
		filter.EndDate = &t
	}

	return filter, nil
}

// GetRecentActivities handles the recent-activity feed
// @Summary     Recent activities
// @Description Get the user's last 10 logged activities, most recently logged first
// @Tags        activities
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} ActivityListResponse "Recent activities"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /activities/recent [get]
func (h *ActivityHandler) GetRecentActivities(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	activities, err := h.activityService.RecentActivities(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

// GetActivityByID handles the retrieval of a single activity
// @Summary     Get activity by ID
// @Description Get one of the user's activities by id
// @Tags        activities
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Activity ID"
// @Success     200 {object} ActivityResponse "Activity details"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Activity not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /activities/{id} [get]
func (h *ActivityHandler) GetActivityByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	activity, err := h.activityService.GetActivityByID(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": activity})
}

// UpdateActivity handles partial updates of an activity
// @Summary     Update activity
// @Description Merge the provided fields into an existing activity; the impact is recomputed only when impact or details change
// @Tags        activities
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                true "Activity ID"
// @Param       request body UpdateActivityRequest true "Fields to update"
// @Success     200 {object} ActivityResponse "Updated activity"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Activity not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /activities/{id} [put]
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	fields := services.ActivityUpdateFields{
		Description: req.Description,
		Impact:      req.Impact,
		Unit:        req.Unit,
		Category:    req.Category,
		Details:     req.Details,
	}

	if req.Date != nil && *req.Date != "" {
		parsed, parseErr := parseFlexibleTime(*req.Date)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		fields.Date = &parsed
	}

	activity, err := h.activityService.UpdateActivity(userID, c.Param("id"), fields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": activity})
}

// DeleteActivity handles the deletion of a single activity
// @Summary     Delete activity
// @Description Delete one of the user's activities by id
// @Tags        activities
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Activity ID"
// @Success     200 {object} MessageResponse "Activity deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Activity not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /activities/{id} [delete]
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.activityService.DeleteActivity(userID, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted successfully"})
}

// BulkDeleteActivities handles deletion of multiple activities
// @Summary     Bulk delete activities
// @Description Delete the listed activities; ids not owned by the user are skipped
// @Tags        activities
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body BulkDeleteRequest true "Activity ids to delete"
// @Success     200 {object} MessageResponse "Activities deleted with count"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /activities [delete]
func (h *ActivityHandler) BulkDeleteActivities(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	deleted, err := h.activityService.BulkDeleteActivities(userID, req.ActivityIDs)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Activities deleted successfully",
		"deletedCount": deleted,
	})
}
