package emissions

import (
	"math"
	"testing"

	"carbontrack/internal/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }

func assertImpact(t *testing.T, expected, actual float64) {
	t.Helper()
	if math.Abs(expected-actual) > 0.001 {
		t.Errorf("expected impact %.2f, got %.2f", expected, actual)
	}
}

func TestEstimateTransport(t *testing.T) {
	t.Run("car_trip", func(t *testing.T) {
		impact := Estimate(models.ActivityTypeTransport, models.ActivityDetails{
			Distance:    floatPtr(15),
			VehicleType: strPtr("Car"),
		})
		assertImpact(t, 6.0, impact)
	})

	t.Run("zero_emission_vehicles", func(t *testing.T) {
		for _, vehicle := range []string{"Bike", "Walking"} {
			impact := Estimate(models.ActivityTypeTransport, models.ActivityDetails{
				Distance:    floatPtr(100),
				VehicleType: strPtr(vehicle),
			})
			assertImpact(t, 0, impact)
		}
	})

	t.Run("unknown_vehicle_uses_fallback", func(t *testing.T) {
		impact := Estimate(models.ActivityTypeTransport, models.ActivityDetails{
			Distance:    floatPtr(10),
			VehicleType: strPtr("Hovercraft"),
		})
		assertImpact(t, 2.0, impact)
	})

	t.Run("missing_distance_defaults_to_zero", func(t *testing.T) {
		impact := Estimate(models.ActivityTypeTransport, models.ActivityDetails{
			VehicleType: strPtr("Car"),
		})
		assertImpact(t, 0, impact)
	})

	t.Run("negative_distance_clamps_to_zero", func(t *testing.T) {
		impact := Estimate(models.ActivityTypeTransport, models.ActivityDetails{
			Distance:    floatPtr(-20),
			VehicleType: strPtr("Car"),
		})
		assertImpact(t, 0, impact)
	})
}

func TestEstimateEnergy(t *testing.T) {
	t.Run("grid_electricity", func(t *testing.T) {
		impact := Estimate(models.ActivityTypeEnergy, models.ActivityDetails{
			EnergyAmount: floatPtr(120),
			EnergySource: strPtr("Grid Electricity"),
		})
		assertImpact(t, 60.0, impact)
	})

	t.Run("renewables_emit_less_than_grid", func(t *testing.T) {
		grid := Estimate(models.ActivityTypeEnergy, models.ActivityDetails{
			EnergyAmount: floatPtr(100),
			EnergySource: strPtr("Grid Electricity"),
		})
		for _, source := range []string{"Solar", "Wind", "Hydro", "Nuclear"} {
			renewable := Estimate(models.ActivityTypeEnergy, models.ActivityDetails{
				EnergyAmount: floatPtr(100),
				EnergySource: strPtr(source),
			})
			if renewable >= grid {
				t.Errorf("%s (%.2f) should emit less than grid (%.2f)", source, renewable, grid)
			}
		}
	})

	t.Run("unknown_source_uses_fallback", func(t *testing.T) {
		impact := Estimate(models.ActivityTypeEnergy, models.ActivityDetails{
			EnergyAmount: floatPtr(10),
			EnergySource: strPtr("Fusion"),
		})
		assertImpact(t, 5.0, impact)
	})
}

func TestEstimateFood(t *testing.T) {
	t.Run("meal_base_times_food_multiplier", func(t *testing.T) {
		impact := Estimate(models.ActivityTypeFood, models.ActivityDetails{
			MealType: strPtr("Lunch"),
			FoodType: strPtr("Beef"),
		})
		assertImpact(t, 6.0, impact)
	})

	t.Run("vegan_cheaper_than_beef", func(t *testing.T) {
		vegan := Estimate(models.ActivityTypeFood, models.ActivityDetails{
			MealType: strPtr("Dinner"),
			FoodType: strPtr("Vegan"),
		})
		beef := Estimate(models.ActivityTypeFood, models.ActivityDetails{
			MealType: strPtr("Dinner"),
			FoodType: strPtr("Beef"),
		})
		if vegan >= beef {
			t.Errorf("vegan dinner (%.2f) should emit less than beef dinner (%.2f)", vegan, beef)
		}
	})

	t.Run("unknown_meal_and_food_use_fallbacks", func(t *testing.T) {
		impact := Estimate(models.ActivityTypeFood, models.ActivityDetails{
			MealType: strPtr("Brunch"),
			FoodType: strPtr("Fungi"),
		})
		assertImpact(t, 2.0, impact)
	})

	t.Run("empty_details_use_fallbacks", func(t *testing.T) {
		impact := Estimate(models.ActivityTypeFood, models.ActivityDetails{})
		assertImpact(t, 2.0, impact)
	})
}

func TestEstimateShopping(t *testing.T) {
	t.Run("per_item_factor_times_quantity", func(t *testing.T) {
		impact := Estimate(models.ActivityTypeShopping, models.ActivityDetails{
			ItemType: strPtr("Electronics"),
			Quantity: intPtr(3),
		})
		assertImpact(t, 15.0, impact)
	})

	t.Run("missing_quantity_defaults_to_one", func(t *testing.T) {
		impact := Estimate(models.ActivityTypeShopping, models.ActivityDetails{
			ItemType: strPtr("Furniture"),
		})
		assertImpact(t, 15.0, impact)
	})

	t.Run("unknown_item_uses_fallback", func(t *testing.T) {
		impact := Estimate(models.ActivityTypeShopping, models.ActivityDetails{
			ItemType: strPtr("Spaceship"),
			Quantity: intPtr(2),
		})
		assertImpact(t, 2.0, impact)
	})
}

func TestEstimateRounding(t *testing.T) {
	// 3.33 km by train: 3.33 * 0.05 = 0.1665 -> 0.17
	impact := Estimate(models.ActivityTypeTransport, models.ActivityDetails{
		Distance:    floatPtr(3.33),
		VehicleType: strPtr("Train"),
	})
	assertImpact(t, 0.17, impact)
}

func TestEstimateNeverNegative(t *testing.T) {
	details := []models.ActivityDetails{
		{Distance: floatPtr(-5), VehicleType: strPtr("Car")},
		{EnergyAmount: floatPtr(-1), EnergySource: strPtr("Coal")},
		{Quantity: intPtr(-3), ItemType: strPtr("Clothing")},
	}
	types := []models.ActivityType{
		models.ActivityTypeTransport,
		models.ActivityTypeEnergy,
		models.ActivityTypeShopping,
	}
	for i, d := range details {
		if impact := Estimate(types[i], d); impact < 0 {
			t.Errorf("%s estimate should never be negative, got %.2f", types[i], impact)
		}
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in, out float64
	}{
		{1.005, 1.0}, // 1.005 is stored slightly below 1.005
		{1.015, 1.01},
		{6.0, 6.0},
		{0.166, 0.17},
		{0, 0},
	}
	for _, c := range cases {
		if got := Round2(c.in); math.Abs(got-c.out) > 0.0001 {
			t.Errorf("Round2(%v) = %v, want %v", c.in, got, c.out)
		}
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		name     string
		activity models.ActivityType
		details  models.ActivityDetails
		want     string
	}{
		{"car_trip", models.ActivityTypeTransport, models.ActivityDetails{Distance: floatPtr(15), VehicleType: strPtr("Car")}, "Car trip of 15.0 km"},
		{"vehicle_only", models.ActivityTypeTransport, models.ActivityDetails{VehicleType: strPtr("Bus")}, "Bus trip"},
		{"energy_usage", models.ActivityTypeEnergy, models.ActivityDetails{EnergyAmount: floatPtr(50), EnergySource: strPtr("Solar")}, "Solar usage of 50.0 kWh"},
		{"meal_with_food", models.ActivityTypeFood, models.ActivityDetails{MealType: strPtr("Lunch"), FoodType: strPtr("Beef")}, "Lunch (Beef)"},
		{"meal_only", models.ActivityTypeFood, models.ActivityDetails{MealType: strPtr("Breakfast")}, "Breakfast"},
		{"purchase_with_quantity", models.ActivityTypeShopping, models.ActivityDetails{ItemType: strPtr("Electronics"), Quantity: intPtr(3)}, "Electronics x3"},
		{"single_purchase", models.ActivityTypeShopping, models.ActivityDetails{ItemType: strPtr("Books"), Quantity: intPtr(1)}, "Books"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Describe(c.activity, c.details); got != c.want {
				t.Errorf("Describe() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestCategoryFor(t *testing.T) {
	if got := CategoryFor(models.ActivityTypeTransport, models.ActivityDetails{VehicleType: strPtr("Train")}); got != "Train" {
		t.Errorf("expected category Train, got %q", got)
	}
	if got := CategoryFor(models.ActivityTypeEnergy, models.ActivityDetails{}); got != "General" {
		t.Errorf("expected fallback category General, got %q", got)
	}
}
