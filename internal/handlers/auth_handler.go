package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "carbontrack/internal/errors"
	"carbontrack/internal/models"
	"carbontrack/internal/services"
)

// AuthHandler handles registration, login, profile, and logout requests.
type AuthHandler struct {
	userService    services.UserServicer
	sessionService services.SessionServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userService services.UserServicer, sessionService services.SessionServicer) *AuthHandler {
	return &AuthHandler{userService: userService, sessionService: sessionService}
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Name          string   `json:"name" binding:"required,max=100"`
	Email         string   `json:"email" binding:"required,email,max=255"`
	MonthlyTarget *float64 `json:"monthlyTarget" binding:"omitempty,gt=0"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// GoalsRequest represents the goals sub-targets in a profile update.
type GoalsRequest struct {
	CarbonReduction    float64 `json:"carbonReduction" binding:"min=0,max=100"`
	TransportReduction float64 `json:"transportReduction" binding:"min=0,max=100"`
	RenewableEnergy    float64 `json:"renewableEnergy" binding:"min=0,max=100"`
}

// UpdateProfileRequest represents the profile update payload.
type UpdateProfileRequest struct {
	Name          *string       `json:"name" binding:"omitempty,max=100"`
	MonthlyTarget *float64      `json:"monthlyTarget" binding:"omitempty,gt=0"`
	Goals         *GoalsRequest `json:"goals"`
}

// AuthResponse represents the authentication response with a session token.
type AuthResponse struct {
	User         models.User `json:"user"`
	SessionToken string      `json:"sessionToken"`
}

// UserResponse wraps a user payload.
type UserResponse struct {
	User models.User `json:"user"`
}

// Register handles user registration
// @Summary     Register a new user
// @Description Register a new user and issue a session token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "User registration data"
// @Success     201 {object} AuthResponse "User registered and session created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.CreateUser(req.Name, req.Email, req.MonthlyTarget)
	if err != nil {
		respondWithError(c, err)
		return
	}

	session, err := h.sessionService.CreateSession(user.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":         user,
		"sessionToken": session.Token,
	})
}

// Login handles user login
// @Summary     Login user
// @Description Authenticate a user by email and issue a session token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User login credentials"
// @Success     200 {object} AuthResponse "User authenticated and session created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.GetUserByEmail(req.Email)
	if err != nil {
		// Do not reveal whether the email exists
		respondWithError(c, apperrors.ErrInvalidCredentials)
		return
	}

	if err := h.userService.RecordLogin(user.ID); err != nil {
		respondWithError(c, err)
		return
	}

	session, err := h.sessionService.CreateSession(user.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err = h.userService.GetUserByID(user.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":         user,
		"sessionToken": session.Token,
	})
}

// GetUser returns the authenticated user's profile
// @Summary     Get current user
// @Description Get the authenticated user's profile information
// @Tags        auth
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} UserResponse "User profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/user [get]
func (h *AuthHandler) GetUser(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfile applies a partial update to the user's profile
// @Summary     Update profile
// @Description Update the authenticated user's name, monthly target, or goals
// @Tags        auth
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateProfileRequest true "Fields to update"
// @Success     200 {object} UserResponse "Updated user"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	fields := services.ProfileUpdateFields{
		Name:          req.Name,
		MonthlyTarget: req.MonthlyTarget,
	}
	if req.Goals != nil {
		fields.Goals = &models.Goals{
			CarbonReduction:    req.Goals.CarbonReduction,
			TransportReduction: req.Goals.TransportReduction,
			RenewableEnergy:    req.Goals.RenewableEnergy,
		}
	}

	user, err := h.userService.UpdateProfile(userID, fields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout deletes the presented session
// @Summary     Logout
// @Description Invalidate the presented session token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} MessageResponse "Logged out"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token, exists := c.Get("sessionToken")
	if !exists {
		respondWithError(c, apperrors.ErrUnauthorized)
		return
	}

	if err := h.sessionService.DeleteByToken(token.(string)); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
