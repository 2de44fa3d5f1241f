package workout

import "math"

// barbellLifts are the lifts whose working weights snap to plate-loadable
// increments. Everything else (dumbbell, cable and bodyweight work) rounds to
// the nearest whole number. Matched on the display name as authored in the
// block templates.
var barbellLifts = map[string]struct{}{
	"Bench Press":       {},
	"Squat":             {},
	"Deadlift":          {},
	"Overhead Press":    {},
	"Front Squat":       {},
	"Trap Bar Deadlift": {},
	"Power Clean":       {},
	"Romanian Deadlift": {},
}

// tenRMToOneRM estimates a 1RM from a 10RM: roughly 75% of the single.
const tenRMToOneRM = 0.75

// plateIncrement is the smallest plate-loadable step for the unit, one pair
// of the smallest plates.
func plateIncrement(unit WeightUnit) float64 {
	if unit == UnitLbs {
		return 5
	}
	return 2.5
}

// barWeight is the empty barbell, the floor below which warm-up sets cannot
// go.
func barWeight(unit WeightUnit) float64 {
	if unit == UnitLbs {
		return 45
	}
	return 20
}

// StrengthWeight computes the working weight for a strength exercise at the
// given intensity percentage of the stored training max. Barbell lifts round
// to the nearest plate increment, other exercises to the nearest whole
// number. An unknown exercise yields 0 so the card simply omits the weight.
func StrengthWeight(exercise string, percentage float64, maxes map[string]float64, unit WeightUnit) float64 {
	key := ExerciseKey(exercise)
	if key == "" || maxes[key] == 0 {
		return 0
	}
	weight := maxes[key] * percentage / 100
	if _, barbell := barbellLifts[exercise]; barbell {
		inc := plateIncrement(unit)
		return math.Round(weight/inc) * inc
	}
	return math.Round(weight)
}

// HypertrophyWeight computes the working weight for accessory volume work.
// The stored 10RM is converted to an estimated 1RM before the percentage is
// applied; when no 10RM is recorded the actual training max stands in.
func HypertrophyWeight(exercise string, percentage float64, tenRMs, maxes map[string]float64) float64 {
	key := ExerciseKey(exercise)
	var estimatedOneRM float64
	switch {
	case tenRMs[key] != 0:
		estimatedOneRM = tenRMs[key] / tenRMToOneRM
	case maxes[key] != 0:
		estimatedOneRM = maxes[key]
	default:
		return 0
	}
	return math.Round(estimatedOneRM * percentage / 100)
}
