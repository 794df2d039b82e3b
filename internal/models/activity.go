package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ActivityType classifies an activity. The classification is immutable
// once the record is created.
type ActivityType string

const (
	ActivityTypeTransport ActivityType = "transport"
	ActivityTypeEnergy    ActivityType = "energy"
	ActivityTypeFood      ActivityType = "food"
	ActivityTypeShopping  ActivityType = "shopping"
)

// Valid reports whether t is one of the four known activity types.
func (t ActivityType) Valid() bool {
	switch t {
	case ActivityTypeTransport, ActivityTypeEnergy, ActivityTypeFood, ActivityTypeShopping:
		return true
	}
	return false
}

// DefaultUnit is the unit label applied when a request omits one.
const DefaultUnit = "kg CO₂"

// ActivityDetails is the category-specific attribute set of an activity.
// Only the fields belonging to the activity's type may be set; the service
// layer rejects mixed variants. It is stored as a single JSON column.
type ActivityDetails struct {
	// transport
	Distance    *float64 `json:"distance,omitempty"`
	VehicleType *string  `json:"vehicleType,omitempty"`
	// energy
	EnergyAmount *float64 `json:"energyAmount,omitempty"`
	EnergySource *string  `json:"energySource,omitempty"`
	// food
	MealType *string `json:"mealType,omitempty"`
	FoodType *string `json:"foodType,omitempty"`
	// shopping
	ItemType *string `json:"itemType,omitempty"`
	Quantity *int    `json:"quantity,omitempty"`
}

// IsEmpty reports whether no detail field is set.
func (d ActivityDetails) IsEmpty() bool {
	return d.Distance == nil && d.VehicleType == nil &&
		d.EnergyAmount == nil && d.EnergySource == nil &&
		d.MealType == nil && d.FoodType == nil &&
		d.ItemType == nil && d.Quantity == nil
}

// Value implements driver.Valuer, serializing the details to JSON.
func (d ActivityDetails) Value() (driver.Value, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner, deserializing the details from JSON.
func (d *ActivityDetails) Scan(value interface{}) error {
	if value == nil {
		*d = ActivityDetails{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for ActivityDetails: %T", value)
	}
	if len(data) == 0 {
		*d = ActivityDetails{}
		return nil
	}
	return json.Unmarshal(data, d)
}

// Activity represents a single logged user action with its carbon impact.
// Impact is computed when the record is created or updated, never on read.
type Activity struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"userId"`
	Type        ActivityType    `gorm:"not null" json:"type"`
	Description string          `gorm:"not null" json:"description"`
	Impact      float64         `gorm:"not null" json:"impact"`
	Unit        string          `gorm:"not null;default:'kg CO₂'" json:"unit"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Category    string          `gorm:"not null" json:"category"`
	Details     ActivityDetails `gorm:"type:text" json:"details"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
