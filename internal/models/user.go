package models

import "time"

// DefaultMonthlyTarget is the monthly CO2 budget (tons) assigned to new users.
const DefaultMonthlyTarget = 4.5

// Goals holds a user's sub-targets, stored as percentages.
type Goals struct {
	CarbonReduction    float64 `gorm:"default:0" json:"carbonReduction"`
	TransportReduction float64 `gorm:"default:0" json:"transportReduction"`
	RenewableEnergy    float64 `gorm:"default:0" json:"renewableEnergy"`
}

// User represents the user model in the database
type User struct {
	Base
	Name          string     `gorm:"not null" json:"name"`
	Email         string     `gorm:"uniqueIndex;not null" json:"email"`
	MonthlyTarget float64    `gorm:"default:4.5" json:"monthlyTarget"`
	Goals         Goals      `gorm:"embedded;embeddedPrefix:goal_" json:"goals"`
	LastLogin     *time.Time `json:"lastLogin,omitempty"`

	Activities []Activity `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"activities,omitempty"`
	Sessions   []Session  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
