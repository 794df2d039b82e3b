package emissions

import (
	"fmt"
	"math"

	"carbontrack/internal/models"
)

// Round2 rounds a computed impact to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Estimate computes the CO2-equivalent impact (kg) for an activity of the
// given type from its detail fields. It is deterministic, has no side
// effects, and never returns a negative value: missing numeric inputs
// default to zero (quantity to one) and unknown category keys fall back to
// a type-specific default factor.
func Estimate(activityType models.ActivityType, d models.ActivityDetails) float64 {
	var impact float64

	switch activityType {
	case models.ActivityTypeTransport:
		distance := 0.0
		if d.Distance != nil {
			distance = *d.Distance
		}
		vehicle := ""
		if d.VehicleType != nil {
			vehicle = *d.VehicleType
		}
		impact = distance * factorOr(transportFactors, vehicle, defaultTransportFactor)

	case models.ActivityTypeEnergy:
		amount := 0.0
		if d.EnergyAmount != nil {
			amount = *d.EnergyAmount
		}
		source := ""
		if d.EnergySource != nil {
			source = *d.EnergySource
		}
		impact = amount * factorOr(energyFactors, source, defaultEnergyFactor)

	case models.ActivityTypeFood:
		meal := ""
		if d.MealType != nil {
			meal = *d.MealType
		}
		food := ""
		if d.FoodType != nil {
			food = *d.FoodType
		}
		impact = factorOr(mealBases, meal, defaultMealBase) *
			factorOr(foodMultipliers, food, defaultFoodMultiplier)

	case models.ActivityTypeShopping:
		quantity := 1
		if d.Quantity != nil {
			quantity = *d.Quantity
		}
		item := ""
		if d.ItemType != nil {
			item = *d.ItemType
		}
		impact = float64(quantity) * factorOr(shoppingFactors, item, defaultShoppingFactor)
	}

	if impact < 0 {
		impact = 0
	}
	return Round2(impact)
}

// Describe produces a human-readable description from an activity's detail
// fields, used when a request omits the description.
func Describe(activityType models.ActivityType, d models.ActivityDetails) string {
	switch activityType {
	case models.ActivityTypeTransport:
		vehicle := "Transport"
		if d.VehicleType != nil && *d.VehicleType != "" {
			vehicle = *d.VehicleType
		}
		if d.Distance != nil && *d.Distance > 0 {
			return fmt.Sprintf("%s trip of %.1f km", vehicle, *d.Distance)
		}
		return vehicle + " trip"
	case models.ActivityTypeEnergy:
		source := "Energy"
		if d.EnergySource != nil && *d.EnergySource != "" {
			source = *d.EnergySource
		}
		if d.EnergyAmount != nil && *d.EnergyAmount > 0 {
			return fmt.Sprintf("%s usage of %.1f kWh", source, *d.EnergyAmount)
		}
		return source + " usage"
	case models.ActivityTypeFood:
		meal := "Meal"
		if d.MealType != nil && *d.MealType != "" {
			meal = *d.MealType
		}
		if d.FoodType != nil && *d.FoodType != "" {
			return fmt.Sprintf("%s (%s)", meal, *d.FoodType)
		}
		return meal
	case models.ActivityTypeShopping:
		item := "Purchase"
		if d.ItemType != nil && *d.ItemType != "" {
			item = *d.ItemType
		}
		if d.Quantity != nil && *d.Quantity > 1 {
			return fmt.Sprintf("%s x%d", item, *d.Quantity)
		}
		return item
	}
	return string(activityType)
}

// CategoryFor derives the aggregation category from an activity's detail
// fields when a request omits the category.
func CategoryFor(activityType models.ActivityType, d models.ActivityDetails) string {
	switch activityType {
	case models.ActivityTypeTransport:
		if d.VehicleType != nil && *d.VehicleType != "" {
			return *d.VehicleType
		}
	case models.ActivityTypeEnergy:
		if d.EnergySource != nil && *d.EnergySource != "" {
			return *d.EnergySource
		}
	case models.ActivityTypeFood:
		if d.FoodType != nil && *d.FoodType != "" {
			return *d.FoodType
		}
	case models.ActivityTypeShopping:
		if d.ItemType != nil && *d.ItemType != "" {
			return *d.ItemType
		}
	}
	return "General"
}
