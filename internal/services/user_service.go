package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "carbontrack/internal/errors"
	"carbontrack/internal/models"
)

// userService handles user-related business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// CreateUser registers a new user
func (s *userService) CreateUser(name, email string, monthlyTarget *float64) (*models.User, error) {
	// Validate input
	if name == "" || email == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name and email are required")
	}

	// Check if user with email exists
	var count int64
	s.db.Model(&models.User{}).Where("email = ?", strings.ToLower(email)).Count(&count)
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	target := models.DefaultMonthlyTarget
	if monthlyTarget != nil {
		if *monthlyTarget <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "monthlyTarget must be greater than zero")
		}
		target = *monthlyTarget
	}

	user := &models.User{
		Name:          name,
		Email:         strings.ToLower(email),
		MonthlyTarget: target,
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email
func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// RecordLogin stamps the user's last login time.
func (s *userService) RecordLogin(userID string) error {
	now := time.Now()
	if err := s.db.Model(&models.User{}).Where("id = ?", userID).
		Update("last_login", &now).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// UpdateProfile applies a partial update to the user's profile fields.
func (s *userService) UpdateProfile(userID string, fields ProfileUpdateFields) (*models.User, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if fields.Name != nil {
		if *fields.Name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name must not be empty")
		}
		updates["name"] = *fields.Name
	}
	if fields.MonthlyTarget != nil {
		if *fields.MonthlyTarget <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "monthlyTarget must be greater than zero")
		}
		updates["monthly_target"] = *fields.MonthlyTarget
	}
	if fields.Goals != nil {
		updates["goal_carbon_reduction"] = fields.Goals.CarbonReduction
		updates["goal_transport_reduction"] = fields.Goals.TransportReduction
		updates["goal_renewable_energy"] = fields.Goals.RenewableEnergy
	}

	if len(updates) == 0 {
		return user, nil
	}

	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetUserByID(userID)
}
