// Package emissions implements the carbon impact calculator. It is a pure
// mapping from category-specific inputs to a CO2-equivalent estimate in
// kilograms, driven by one canonical emission-factor table.
package emissions

// Transport factors are kg CO2 per kilometre travelled.
var transportFactors = map[string]float64{
	"Car":          0.4,
	"Electric Car": 0.1,
	"Bus":          0.1,
	"Train":        0.05,
	"Plane":        0.25,
	"Motorcycle":   0.3,
	"Taxi":         0.5,
	"Bike":         0,
	"Walking":      0,
}

// Energy factors are kg CO2 per kWh consumed.
var energyFactors = map[string]float64{
	"Grid Electricity": 0.5,
	"Natural Gas":      0.2,
	"Solar":            0.05,
	"Wind":             0.02,
	"Nuclear":          0.01,
	"Hydro":            0.02,
	"Oil":              0.7,
	"Coal":             0.9,
}

// Meal bases are kg CO2 per meal slot, before the food-type multiplier.
var mealBases = map[string]float64{
	"Breakfast": 1.0,
	"Lunch":     2.0,
	"Dinner":    2.5,
	"Snack":     0.5,
}

// Food multipliers scale the meal base by what was eaten.
var foodMultipliers = map[string]float64{
	"Beef":       3.0,
	"Pork":       2.0,
	"Chicken":    1.5,
	"Fish":       1.2,
	"Dairy":      1.0,
	"Mixed":      1.0,
	"Vegetarian": 0.8,
	"Vegan":      0.4,
}

// Shopping factors are kg CO2 per item purchased.
var shoppingFactors = map[string]float64{
	"Electronics": 5.0,
	"Clothing":    2.0,
	"Books":       0.5,
	"Furniture":   15.0,
	"Appliances":  20.0,
	"Household":   1.5,
	"Cosmetics":   1.5,
	"Toys":        1.0,
	"Other":       1.0,
}

// Fallback factors applied when a category key is unknown. Malformed input
// degrades to an approximate estimate instead of blocking activity creation.
const (
	defaultTransportFactor = 0.2
	defaultEnergyFactor    = 0.5
	defaultMealBase        = 2.0
	defaultFoodMultiplier  = 1.0
	defaultShoppingFactor  = 1.0
)

func factorOr(table map[string]float64, key string, fallback float64) float64 {
	if f, ok := table[key]; ok {
		return f
	}
	return fallback
}
