package workout

import "fmt"

// Literal constructors keeping the template tables below readable.

func strengthDay(sets string, intensity string, exercises ...string) Prescription {
	return Prescription{Type: TypeStrength, Exercises: exercises, Sets: sets, Intensity: intensity}
}

func hypertrophyDay(sets string, exercises ...string) Prescription {
	return Prescription{Type: TypeHypertrophy, Exercises: exercises, Sets: sets}
}

func lissDay(activity string, minutes float64) Prescription {
	return Prescription{Type: TypeLISS, Activity: activity, Duration: NumericDuration(minutes)}
}

func restDay() Prescription   { return Prescription{Type: TypeRest} }
func deloadDay() Prescription { return Prescription{Type: TypeDeload} }

func week(days ...Prescription) Week {
	if len(days) != daysPerWeek {
		panic(fmt.Sprintf("week needs %d days, got %d", daysPerWeek, len(days)))
	}
	var w Week
	copy(w.Days[:], days)
	return w
}

// blockTemplates is the authored training content keyed by block type. The
// "getready" placeholder block has no template: its days resolve to nothing
// until the plan moves on to the first real block.
var blockTemplates = map[string]BlockTemplate{
	"endurance1": {Weeks: []Week{
		week(
			strengthDay("3x5", "70", "Overhead Press", "Front Squat", "Weighted Pull-up"),
			lissDay("LISS run", 60),
			strengthDay("3x5", "70", "Overhead Press", "Front Squat", "Trap Bar Deadlift"),
			lissDay("LISS run", 30),
			strengthDay("3x5", "70", "Overhead Press", "Front Squat", "Weighted Pull-up"),
			lissDay("LISS run", 90),
			restDay(),
		),
		week(
			strengthDay("3x5", "80", "Overhead Press", "Front Squat", "Weighted Pull-up"),
			lissDay("LISS run", 60),
			strengthDay("3x5", "80", "Overhead Press", "Front Squat", "Trap Bar Deadlift"),
			lissDay("LISS run", 30),
			strengthDay("3x5", "80", "Overhead Press", "Front Squat", "Weighted Pull-up"),
			lissDay("LISS run", 90),
			restDay(),
		),
		week(
			strengthDay("3x3", "90", "Overhead Press", "Front Squat", "Weighted Pull-up"),
			lissDay("LISS run", 60),
			strengthDay("3x3", "90", "Overhead Press", "Front Squat", "Trap Bar Deadlift"),
			lissDay("LISS run", 30),
			strengthDay("3x3", "90", "Overhead Press", "Front Squat", "Weighted Pull-up"),
			lissDay("LISS run", 90),
			restDay(),
		),
		week(
			deloadDay(),
			lissDay("LISS run", 30),
			deloadDay(),
			lissDay("LISS run", 30),
			deloadDay(),
			lissDay("LISS run", 30),
			restDay(),
		),
		week(
			strengthDay("3x5", "75", "Overhead Press", "Front Squat", "Weighted Pull-up"),
			lissDay("LISS run", 90),
			strengthDay("3x5", "75", "Overhead Press", "Front Squat", "Trap Bar Deadlift"),
			lissDay("LISS run", 60),
			strengthDay("3x5", "75", "Overhead Press", "Front Squat", "Weighted Pull-up"),
			lissDay("LISS run", 120),
			restDay(),
		),
		week(
			strengthDay("3x3", "85", "Overhead Press", "Front Squat", "Weighted Pull-up"),
			lissDay("LISS run", 90),
			strengthDay("3x3", "85", "Overhead Press", "Front Squat", "Trap Bar Deadlift"),
			lissDay("LISS run", 60),
			strengthDay("3x3", "85", "Overhead Press", "Front Squat", "Weighted Pull-up"),
			lissDay("LISS run", 120),
			restDay(),
		),
		week(
			strengthDay("4x2", "95", "Overhead Press", "Front Squat", "Weighted Pull-up"),
			lissDay("LISS run", 90),
			strengthDay("4x2", "95", "Overhead Press", "Front Squat", "Trap Bar Deadlift"),
			lissDay("LISS run", 60),
			strengthDay("4x2", "95", "Overhead Press", "Front Squat", "Weighted Pull-up"),
			lissDay("LISS run", 120),
			restDay(),
		),
		week(
			deloadDay(),
			lissDay("LISS run", 30),
			deloadDay(),
			lissDay("LISS run", 30),
			deloadDay(),
			lissDay("LISS run", 30),
			restDay(),
		),
	}},
	"powerbuilding1": {Weeks: []Week{
		week(
			strengthDay("3x5", "75", "Overhead Press", "Front Squat", "Weighted Pull-up"),
			hypertrophyDay("3x8-12", "Close Grip Bench Press", "Barbell Row", "Overhead Press"),
			strengthDay("3x5", "75", "Overhead Press", "Front Squat", "Trap Bar Deadlift"),
			hypertrophyDay("3x8-12", "Incline Dumbbell Press", "Romanian Deadlift", "Weighted Dips"),
			strengthDay("3x5", "75", "Overhead Press", "Front Squat", "Weighted Pull-up"),
			hypertrophyDay("3x8-12", "Dumbbell Shoulder Press", "Bulgarian Split Squat", "Face Pulls"),
			restDay(),
		),
		week(
			strengthDay("3x3", "85", "Overhead Press", "Front Squat", "Weighted Pull-up"),
			hypertrophyDay("3x8-12", "Close Grip Bench Press", "Barbell Row", "Overhead Press"),
			strengthDay("3x3", "85", "Overhead Press", "Front Squat", "Trap Bar Deadlift"),
			hypertrophyDay("3x8-12", "Incline Dumbbell Press", "Romanian Deadlift", "Weighted Dips"),
			strengthDay("3x3", "85", "Overhead Press", "Front Squat", "Weighted Pull-up"),
			hypertrophyDay("3x8-12", "Dumbbell Shoulder Press", "Bulgarian Split Squat", "Face Pulls"),
			restDay(),
		),
		week(
			strengthDay("5x1", "95", "Overhead Press", "Front Squat", "Weighted Pull-up"),
			hypertrophyDay("3x8-12", "Close Grip Bench Press", "Barbell Row", "Overhead Press"),
			strengthDay("5x1", "95", "Overhead Press", "Front Squat", "Trap Bar Deadlift"),
			hypertrophyDay("3x8-12", "Incline Dumbbell Press", "Romanian Deadlift", "Weighted Dips"),
			strengthDay("5x1", "95", "Overhead Press", "Front Squat", "Weighted Pull-up"),
			hypertrophyDay("3x8-12", "Dumbbell Shoulder Press", "Bulgarian Split Squat", "Face Pulls"),
			restDay(),
		),
	}},
	"powerbuilding2": {Weeks: []Week{
		week(
			strengthDay("3x5", "75", "Bench Press", "Squat", "Weighted Pull-up"),
			hypertrophyDay("3x8-12", "Incline Dumbbell Press", "Romanian Deadlift", "Barbell Row"),
			strengthDay("3x5", "75", "Overhead Press", "Deadlift", "Weighted Dips"),
			hypertrophyDay("3x8-12", "Dumbbell Shoulder Press", "Bulgarian Split Squat", "Lat Pulldown"),
			strengthDay("3x5", "75", "Bench Press", "Front Squat", "Barbell Row"),
			hypertrophyDay("3x8-12", "Close Grip Bench Press", "Walking Lunges", "Face Pulls"),
			restDay(),
		),
		week(
			strengthDay("3x3", "85", "Bench Press", "Squat", "Weighted Pull-up"),
			hypertrophyDay("3x8-12", "Incline Dumbbell Press", "Romanian Deadlift", "Barbell Row"),
			strengthDay("3x3", "85", "Overhead Press", "Deadlift", "Weighted Dips"),
			hypertrophyDay("3x8-12", "Dumbbell Shoulder Press", "Bulgarian Split Squat", "Lat Pulldown"),
			strengthDay("3x3", "85", "Bench Press", "Front Squat", "Barbell Row"),
			hypertrophyDay("3x8-12", "Close Grip Bench Press", "Walking Lunges", "Face Pulls"),
			restDay(),
		),
		week(
			strengthDay("5x1", "95", "Bench Press", "Squat", "Weighted Pull-up"),
			hypertrophyDay("3x8-12", "Incline Dumbbell Press", "Romanian Deadlift", "Barbell Row"),
			strengthDay("5x1", "95", "Overhead Press", "Deadlift", "Weighted Dips"),
			hypertrophyDay("3x8-12", "Dumbbell Shoulder Press", "Bulgarian Split Squat", "Lat Pulldown"),
			strengthDay("5x1", "95", "Bench Press", "Front Squat", "Barbell Row"),
			hypertrophyDay("3x8-12", "Close Grip Bench Press", "Walking Lunges", "Face Pulls"),
			restDay(),
		),
	}},
	"powerbuilding3": {Weeks: []Week{
		week(
			strengthDay("5x3", "80", "Bench Press", "Squat", "Weighted Pull-up"),
			hypertrophyDay("4x8-12", "Incline Dumbbell Press", "Romanian Deadlift", "Barbell Row"),
			strengthDay("5x3", "80", "Overhead Press", "Deadlift", "Weighted Dips"),
			hypertrophyDay("4x8-12", "Dumbbell Shoulder Press", "Bulgarian Split Squat", "Lat Pulldown"),
			strengthDay("5x3", "80", "Bench Press", "Front Squat", "Barbell Row"),
			hypertrophyDay("4x8-12", "Close Grip Bench Press", "Walking Lunges", "Face Pulls"),
			restDay(),
		),
		week(
			strengthDay("5x2", "87.5", "Bench Press", "Squat", "Weighted Pull-up"),
			hypertrophyDay("4x8-12", "Incline Dumbbell Press", "Romanian Deadlift", "Barbell Row"),
			strengthDay("5x2", "87.5", "Overhead Press", "Deadlift", "Weighted Dips"),
			hypertrophyDay("4x8-12", "Dumbbell Shoulder Press", "Bulgarian Split Squat", "Lat Pulldown"),
			strengthDay("5x2", "87.5", "Bench Press", "Front Squat", "Barbell Row"),
			hypertrophyDay("4x8-12", "Close Grip Bench Press", "Walking Lunges", "Face Pulls"),
			restDay(),
		),
		week(
			strengthDay("6x1", "95", "Bench Press", "Squat", "Weighted Pull-up"),
			hypertrophyDay("4x8-12", "Incline Dumbbell Press", "Romanian Deadlift", "Barbell Row"),
			strengthDay("6x1", "95", "Overhead Press", "Deadlift", "Weighted Dips"),
			hypertrophyDay("4x8-12", "Dumbbell Shoulder Press", "Bulgarian Split Squat", "Lat Pulldown"),
			strengthDay("6x1", "95", "Bench Press", "Front Squat", "Barbell Row"),
			hypertrophyDay("4x8-12", "Close Grip Bench Press", "Walking Lunges", "Face Pulls"),
			restDay(),
		),
	}},
	"powerbuilding3bulgarian": {Weeks: []Week{
		week(
			strengthDay("Work up to daily max then 85% 3x3", "100", "Squat", "Bench Press", "Weighted Pull-up"),
			hypertrophyDay("3x8-12", "Incline Dumbbell Press", "Romanian Deadlift", "Barbell Row"),
			strengthDay("Work up to daily max then 85% 3x3", "100", "Squat", "Overhead Press", "Weighted Dips"),
			hypertrophyDay("3x8-12", "Dumbbell Shoulder Press", "Bulgarian Split Squat", "Lat Pulldown"),
			strengthDay("Work up to daily max then 85% 3x3", "100", "Squat", "Bench Press", "Barbell Row"),
			hypertrophyDay("3x8-12", "Close Grip Bench Press", "Walking Lunges", "Face Pulls"),
			restDay(),
		),
		week(
			strengthDay("Work up to daily max then 90% 2x2", "100", "Squat", "Bench Press", "Weighted Pull-up"),
			hypertrophyDay("3x8-12", "Incline Dumbbell Press", "Romanian Deadlift", "Barbell Row"),
			strengthDay("Work up to daily max then 90% 2x2", "100", "Squat", "Overhead Press", "Weighted Dips"),
			hypertrophyDay("3x8-12", "Dumbbell Shoulder Press", "Bulgarian Split Squat", "Lat Pulldown"),
			strengthDay("Work up to daily max then 90% 2x2", "100", "Squat", "Bench Press", "Barbell Row"),
			hypertrophyDay("3x8-12", "Close Grip Bench Press", "Walking Lunges", "Face Pulls"),
			restDay(),
		),
		week(
			strengthDay("Work up to daily max then 95% 1x1", "100", "Squat", "Bench Press", "Weighted Pull-up"),
			hypertrophyDay("3x8-12", "Incline Dumbbell Press", "Romanian Deadlift", "Barbell Row"),
			strengthDay("Work up to daily max then 95% 1x1", "100", "Squat", "Overhead Press", "Weighted Dips"),
			hypertrophyDay("3x8-12", "Dumbbell Shoulder Press", "Bulgarian Split Squat", "Lat Pulldown"),
			strengthDay("Work up to daily max then 95% 1x1", "100", "Squat", "Bench Press", "Barbell Row"),
			hypertrophyDay("3x8-12", "Close Grip Bench Press", "Walking Lunges", "Face Pulls"),
			restDay(),
		),
	}},
	"bodybuilding": {Weeks: []Week{
		week(
			hypertrophyDay("4x8-12", "Bench Press", "Incline Dumbbell Press", "Weighted Dips", "Close Grip Bench Press", "Tricep Dips"),
			hypertrophyDay("4x8-12", "Squat", "Romanian Deadlift", "Bulgarian Split Squat", "Walking Lunges", "Calf Raises"),
			hypertrophyDay("4x8-12", "Weighted Pull-up", "Barbell Row", "Lat Pulldown", "Face Pulls", "Barbell Curl"),
			hypertrophyDay("4x8-12", "Overhead Press", "Dumbbell Shoulder Press", "Lateral Raises", "Rear Delt Flies", "Shrugs"),
			hypertrophyDay("4x8-12", "Deadlift", "Good Mornings", "Glute Ham Raises", "Back Extensions", "Plank"),
			hypertrophyDay("3x8-12", "Full Body Circuit", "Farmer's Walk", "Battle Ropes", "Burpees", "Mountain Climbers"),
			restDay(),
		),
		week(
			hypertrophyDay("4x8-12", "Incline Barbell Press", "Dumbbell Flyes", "Cable Crossovers", "Diamond Push-ups", "Overhead Tricep Extension"),
			hypertrophyDay("4x8-12", "Front Squat", "Goblet Squat", "Step-ups", "Leg Curls", "Calf Raises"),
			hypertrophyDay("4x8-12", "T-Bar Row", "Cable Row", "Reverse Flyes", "Hammer Curls", "Cable Curls"),
			hypertrophyDay("4x8-12", "Arnold Press", "Front Raises", "Cable Lateral Raises", "Upright Rows", "Face Pulls"),
			hypertrophyDay("4x8-12", "Sumo Deadlift", "Hip Thrusts", "Single Leg RDL", "Reverse Hypers", "Side Plank"),
			hypertrophyDay("3x30s", "HIIT Circuit", "Jump Squats", "Push-up to T", "High Knees", "Plank Jacks"),
			restDay(),
		),
		week(
			hypertrophyDay("4x8-12", "Dumbbell Press", "Cable Flyes", "Dips", "Skull Crushers", "Cable Tricep Pushdowns"),
			hypertrophyDay("4x8-12", "Hack Squat", "Leg Press", "Leg Extensions", "Leg Curls", "Standing Calf Raises"),
			hypertrophyDay("4x8-12", "Wide Grip Pull-ups", "Bent Over Row", "Cable Rows", "Preacher Curls", "Cable Hammer Curls"),
			hypertrophyDay("4x8-12", "Seated Dumbbell Press", "Cable Lateral Raises", "Bent Over Lateral Raises", "Cable Shrugs", "Barbell Shrugs"),
			hypertrophyDay("4x8-12", "Trap Bar Deadlift", "Stiff Leg Deadlift", "Cable Pull Throughs", "Good Mornings", "Russian Twists"),
			hypertrophyDay("3x45s", "Metabolic Circuit", "Kettlebell Swings", "Box Jumps", "Rowing Machine", "Bike Sprints"),
			restDay(),
		),
	}},
	"strength": {Weeks: []Week{
		week(
			strengthDay("3x5", "65", "Squat", "Bench Press", "Barbell Row"),
			strengthDay("3x5", "65", "Overhead Press", "Deadlift", "Weighted Chin-up"),
			strengthDay("3x5", "65", "Squat", "Bench Press", "Barbell Row"),
			strengthDay("3x5", "65", "Overhead Press", "Deadlift", "Weighted Chin-up"),
			strengthDay("3x5", "65", "Squat", "Bench Press", "Barbell Row"),
			restDay(),
			restDay(),
		),
		week(
			strengthDay("3x5", "70", "Squat", "Bench Press", "Barbell Row"),
			strengthDay("3x5", "70", "Overhead Press", "Deadlift", "Weighted Chin-up"),
			strengthDay("3x5", "70", "Squat", "Bench Press", "Barbell Row"),
			strengthDay("3x5", "70", "Overhead Press", "Deadlift", "Weighted Chin-up"),
			strengthDay("3x5", "70", "Squat", "Bench Press", "Barbell Row"),
			restDay(),
			restDay(),
		),
		week(
			strengthDay("3x5", "75", "Squat", "Bench Press", "Barbell Row"),
			strengthDay("3x5", "75", "Overhead Press", "Deadlift", "Weighted Chin-up"),
			strengthDay("3x5", "75", "Squat", "Bench Press", "Barbell Row"),
			strengthDay("3x5", "75", "Overhead Press", "Deadlift", "Weighted Chin-up"),
			strengthDay("3x5", "75", "Squat", "Bench Press", "Barbell Row"),
			restDay(),
			restDay(),
		),
		week(
			deloadDay(),
			deloadDay(),
			deloadDay(),
			deloadDay(),
			deloadDay(),
			restDay(),
			restDay(),
		),
		week(
			strengthDay("3x3", "80", "Squat", "Bench Press", "Barbell Row"),
			strengthDay("3x3", "80", "Overhead Press", "Deadlift", "Weighted Chin-up"),
			strengthDay("3x3", "80", "Squat", "Bench Press", "Barbell Row"),
			strengthDay("3x3", "80", "Overhead Press", "Deadlift", "Weighted Chin-up"),
			strengthDay("3x3", "80", "Squat", "Bench Press", "Barbell Row"),
			restDay(),
			restDay(),
		),
		week(
			strengthDay("3x3", "85", "Squat", "Bench Press", "Barbell Row"),
			strengthDay("3x3", "85", "Overhead Press", "Deadlift", "Weighted Chin-up"),
			strengthDay("3x3", "85", "Squat", "Bench Press", "Barbell Row"),
			strengthDay("3x3", "85", "Overhead Press", "Deadlift", "Weighted Chin-up"),
			strengthDay("3x3", "85", "Squat", "Bench Press", "Barbell Row"),
			restDay(),
			restDay(),
		),
		week(
			strengthDay("3x3", "90", "Squat", "Bench Press", "Barbell Row"),
			strengthDay("3x3", "90", "Overhead Press", "Deadlift", "Weighted Chin-up"),
			strengthDay("3x3", "90", "Squat", "Bench Press", "Barbell Row"),
			strengthDay("3x3", "90", "Overhead Press", "Deadlift", "Weighted Chin-up"),
			strengthDay("3x3", "90", "Squat", "Bench Press", "Barbell Row"),
			restDay(),
			restDay(),
		),
		week(
			deloadDay(),
			deloadDay(),
			deloadDay(),
			deloadDay(),
			deloadDay(),
			restDay(),
			restDay(),
		),
		week(
			strengthDay("1x1", "100", "Squat"),
			strengthDay("1x1", "100", "Bench Press"),
			strengthDay("1x1", "100", "Deadlift"),
			restDay(),
			restDay(),
			restDay(),
			restDay(),
		),
	}},
}

// availableBlocks is the registry of block types the athlete can queue up.
// "getready" is intentionally absent: it only appears in the default plan.
var availableBlocks = map[string]BlockInfo{
	"endurance1":              {Name: "Endurance Block 1", Weeks: 8},
	"powerbuilding1":          {Name: "Powerbuilding Block 1", Weeks: 3},
	"powerbuilding2":          {Name: "Powerbuilding Block 2", Weeks: 3},
	"powerbuilding3":          {Name: "Powerbuilding Block 3", Weeks: 3},
	"powerbuilding3bulgarian": {Name: "Powerbuilding Block 3 - Bulgarian", Weeks: 3},
	"bodybuilding":            {Name: "Bodybuilding Block", Weeks: 3},
	"strength":                {Name: "Strength Block", Weeks: 6},
}

// Template looks up the authored content for a block type. Types without
// authored content ("getready" and anything unknown) return ErrNotFound.
func Template(blockType string) (BlockTemplate, error) {
	t, ok := blockTemplates[blockType]
	if !ok {
		return BlockTemplate{}, fmt.Errorf("block template %q: %w", blockType, ErrNotFound)
	}
	return t, nil
}

// AvailableBlocks returns the addable block registry keyed by block type.
func AvailableBlocks() map[string]BlockInfo {
	blocks := make(map[string]BlockInfo, len(availableBlocks))
	for k, v := range availableBlocks {
		blocks[k] = v
	}
	return blocks
}

// DefaultPlan is the out-of-the-box plan queue: a one-week ramp-up
// placeholder followed by a year of alternating blocks.
func DefaultPlan() []PlanBlock {
	return []PlanBlock{
		{Name: "Get Ready", Weeks: 1, Type: "getready"},
		{Name: "Endurance Block 1", Weeks: 8, Type: "endurance1"},
		{Name: "Powerbuilding Block 1", Weeks: 3, Type: "powerbuilding1"},
		{Name: "Powerbuilding Block 2", Weeks: 3, Type: "powerbuilding2"},
		{Name: "Powerbuilding Block 3", Weeks: 3, Type: "powerbuilding3"},
		{Name: "Bodybuilding Block", Weeks: 3, Type: "bodybuilding"},
		{Name: "Bodybuilding Block", Weeks: 3, Type: "bodybuilding"},
		{Name: "Bodybuilding Block", Weeks: 3, Type: "bodybuilding"},
		{Name: "Powerbuilding Block 3 - Bulgarian", Weeks: 3, Type: "powerbuilding3bulgarian"},
		{Name: "Strength Block", Weeks: 6, Type: "strength"},
		{Name: "Endurance Block 1", Weeks: 8, Type: "endurance1"},
	}
}

// DefaultMaxes are starter training maxes in kilograms keyed by exercise key.
func DefaultMaxes() map[string]float64 {
	return map[string]float64{
		"benchpress":       100,
		"squat":            120,
		"deadlift":         140,
		"trapbardeadlift":  130,
		"overheadpress":    60,
		"frontsquat":       90,
		"weightedpullup":   20,
		"powerclean":       80,
		"romaniandeadlift": 120,
	}
}
