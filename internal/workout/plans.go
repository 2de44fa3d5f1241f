package workout

import (
	"fmt"
	"strings"
)

// ExercisePlan is one exercise card of a strength or hypertrophy day,
// fully resolved: scheme, intensity, working weight and the checkbox
// identities for every set. Recomputed on demand from the prescription and
// the current maxes so edited maxes take effect immediately.
type ExercisePlan struct {
	Exercise      string      `json:"exercise"`
	ExerciseIndex int         `json:"exerciseIndex"`
	SchemeIndex   int         `json:"schemeIndex"`
	SetScheme     string      `json:"setScheme"`
	Sets          int         `json:"sets"`
	Reps          string      `json:"reps"`
	Intensity     int         `json:"intensity"`
	Weight        float64     `json:"weight"`
	Warmups       []WarmupSet `json:"warmups,omitempty"`
	SetIDs        []string    `json:"setIDs"`
	WarmupSetIDs  []string    `json:"warmupSetIDs,omitempty"`
}

// ExercisePlans explodes a strength or hypertrophy prescription into one
// plan per exercise and set scheme. When the comma-separated scheme count
// matches the exercise count, scheme i belongs to exercise i; otherwise every
// scheme applies to every exercise. Intensity tokens follow the same mapping
// and fall back to the first token when theirs is missing. Other prescription
// types yield nil.
func ExercisePlans(p Prescription, maxes, tenRMs map[string]float64, unit WeightUnit) []ExercisePlan {
	if p.Type != TypeStrength && p.Type != TypeHypertrophy {
		return nil
	}
	setSchemes := strings.Split(p.Sets, ",")
	intensity := p.Intensity
	if intensity == "" {
		intensity = "0"
	}
	intensities := strings.Split(intensity, ",")
	mapByIndex := len(setSchemes) == len(p.Exercises)

	var plans []ExercisePlan
	for exerciseIndex, exercise := range p.Exercises {
		schemes := setSchemes
		if mapByIndex {
			schemes = setSchemes[exerciseIndex : exerciseIndex+1]
		}
		for schemeIndex, scheme := range schemes {
			intensityIndex := schemeIndex
			if mapByIndex {
				intensityIndex = exerciseIndex
			}
			token := intensities[0]
			if intensityIndex < len(intensities) && intensities[intensityIndex] != "" {
				token = intensities[intensityIndex]
			}
			pct := parseLeadingInt(token)

			var weight float64
			if p.Type == TypeStrength {
				weight = StrengthWeight(exercise, float64(pct), maxes, unit)
			} else {
				weight = HypertrophyWeight(exercise, float64(pct), tenRMs, maxes)
			}

			plan := ExercisePlan{
				Exercise:      exercise,
				ExerciseIndex: exerciseIndex,
				SchemeIndex:   schemeIndex,
				SetScheme:     scheme,
				Intensity:     pct,
				Weight:        weight,
			}
			parts := strings.SplitN(scheme, "x", 2)
			plan.Sets = parseLeadingInt(parts[0])
			if len(parts) == 2 {
				plan.Reps = parts[1]
			}
			for setIndex := 0; setIndex < plan.Sets; setIndex++ {
				plan.SetIDs = append(plan.SetIDs, fmt.Sprintf("%d-%d-%d", exerciseIndex, schemeIndex, setIndex))
			}
			if p.Type == TypeStrength && weight > 0 {
				plan.Warmups = WarmupSets(weight, unit)
				for warmupIndex := range plan.Warmups {
					plan.WarmupSetIDs = append(plan.WarmupSetIDs,
						fmt.Sprintf("warmup-%d-%d-%d-0", exerciseIndex, schemeIndex, warmupIndex))
				}
			}
			plans = append(plans, plan)
		}
	}
	return plans
}

// parseLeadingInt reads the integer prefix of a token such as "85", " 3" or
// "3x5". Free-form tokens without a digit prefix parse to 0, which keeps
// worked-up schemes like "Work up to daily max" rendering without checkboxes.
func parseLeadingInt(s string) int {
	s = strings.TrimSpace(s)
	n := 0
	seen := false
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		seen = true
		n = n*10 + int(r-'0')
	}
	if !seen {
		return 0
	}
	return n
}
