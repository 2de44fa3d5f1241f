package workout

import "math"

// warmupRamp is the fixed ramp towards the working weight: fewer reps the
// closer the set gets.
var warmupRamp = []struct {
	fraction float64
	reps     int
}{
	{0.5, 5},
	{0.65, 3},
	{0.8, 2},
	{0.9, 1},
}

// WarmupSets generates the ramped warm-up sets for a strength working weight.
// Each set is rounded to a plate-loadable weight with the empty bar as the
// floor, and sets that would land at or above the working weight are dropped.
// Light working weights therefore yield fewer sets, possibly none.
func WarmupSets(workingWeight float64, unit WeightUnit) []WarmupSet {
	if workingWeight <= 0 {
		return nil
	}
	inc := plateIncrement(unit)
	floor := barWeight(unit)
	sets := make([]WarmupSet, 0, len(warmupRamp))
	for _, step := range warmupRamp {
		weight := math.Max(math.Round(workingWeight*step.fraction/inc)*inc, floor)
		if weight >= workingWeight {
			continue
		}
		sets = append(sets, WarmupSet{Weight: weight, Reps: step.reps, Kind: "warmup"})
	}
	return sets
}
