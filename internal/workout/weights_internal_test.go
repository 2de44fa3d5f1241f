package workout

import "testing"

func TestStrengthWeight(t *testing.T) {
	maxes := map[string]float64{
		"benchpress":     100,
		"squat":          120,
		"weightedpullup": 20,
	}
	tests := []struct {
		name       string
		exercise   string
		percentage float64
		unit       WeightUnit
		want       float64
	}{
		{name: "exact multiple", exercise: "Bench Press", percentage: 80, unit: UnitKg, want: 80},
		{name: "rounds to plate in kg", exercise: "Bench Press", percentage: 77, unit: UnitKg, want: 77.5},
		{name: "rounds to plate in lbs", exercise: "Bench Press", percentage: 77, unit: UnitLbs, want: 75},
		{name: "squat at 87 percent", exercise: "Squat", percentage: 87, unit: UnitKg, want: 105},
		{name: "non-barbell rounds to integer", exercise: "Weighted Pull-up", percentage: 77, unit: UnitKg, want: 15},
		{name: "unknown exercise", exercise: "Leg Press", percentage: 80, unit: UnitKg, want: 0},
		{name: "empty key", exercise: "!!!", percentage: 80, unit: UnitKg, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StrengthWeight(tt.exercise, tt.percentage, maxes, tt.unit)
			if got != tt.want {
				t.Errorf("StrengthWeight(%q, %v, %s) = %v, want %v", tt.exercise, tt.percentage, tt.unit, got, tt.want)
			}
		})
	}
}

func TestHypertrophyWeight(t *testing.T) {
	maxes := map[string]float64{"benchpress": 100}
	tenRMs := map[string]float64{"inclinedumbbellpress": 30}
	tests := []struct {
		name       string
		exercise   string
		percentage float64
		want       float64
	}{
		// 30 / 0.75 = 40 estimated 1RM, 65% of that is 26.
		{name: "from ten rm", exercise: "Incline Dumbbell Press", percentage: 65, want: 26},
		{name: "falls back to max", exercise: "Bench Press", percentage: 65, want: 65},
		{name: "no data", exercise: "Face Pulls", percentage: 65, want: 0},
		{name: "zero percentage", exercise: "Incline Dumbbell Press", percentage: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HypertrophyWeight(tt.exercise, tt.percentage, tenRMs, maxes)
			if got != tt.want {
				t.Errorf("HypertrophyWeight(%q, %v) = %v, want %v", tt.exercise, tt.percentage, got, tt.want)
			}
		})
	}
}
