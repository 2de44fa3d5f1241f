package workout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWarmupSets(t *testing.T) {
	tests := []struct {
		name          string
		workingWeight float64
		unit          WeightUnit
		want          []WarmupSet
	}{
		{
			name:          "full ramp in kg",
			workingWeight: 100,
			unit:          UnitKg,
			want: []WarmupSet{
				{Weight: 50, Reps: 5, Kind: "warmup"},
				{Weight: 65, Reps: 3, Kind: "warmup"},
				{Weight: 80, Reps: 2, Kind: "warmup"},
				{Weight: 90, Reps: 1, Kind: "warmup"},
			},
		},
		{
			name:          "plate rounding in kg",
			workingWeight: 60,
			unit:          UnitKg,
			want: []WarmupSet{
				{Weight: 30, Reps: 5, Kind: "warmup"},
				{Weight: 40, Reps: 3, Kind: "warmup"},
				{Weight: 47.5, Reps: 2, Kind: "warmup"},
				{Weight: 55, Reps: 1, Kind: "warmup"},
			},
		},
		{
			name:          "bar floor swallows light weights",
			workingWeight: 15,
			unit:          UnitKg,
			want:          nil,
		},
		{
			name:          "lbs floor is the 45 lb bar",
			workingWeight: 135,
			unit:          UnitLbs,
			want: []WarmupSet{
				{Weight: 70, Reps: 5, Kind: "warmup"},
				{Weight: 90, Reps: 3, Kind: "warmup"},
				{Weight: 110, Reps: 2, Kind: "warmup"},
				{Weight: 120, Reps: 1, Kind: "warmup"},
			},
		},
		{
			name:          "zero working weight",
			workingWeight: 0,
			unit:          UnitKg,
			want:          nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WarmupSets(tt.workingWeight, tt.unit)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("WarmupSets(%v, %s) mismatch (-want +got):\n%s", tt.workingWeight, tt.unit, diff)
			}
		})
	}
}

// Ramp weights must never reach the working weight, whatever the input.
func TestWarmupSetsStayBelowWorkingWeight(t *testing.T) {
	for weight := 2.5; weight <= 300; weight += 2.5 {
		prev := 0.0
		for _, set := range WarmupSets(weight, UnitKg) {
			if set.Weight >= weight {
				t.Fatalf("warm-up %v at or above working weight %v", set.Weight, weight)
			}
			if set.Weight < prev {
				t.Fatalf("warm-up weights not ascending for working weight %v", weight)
			}
			prev = set.Weight
		}
	}
}
