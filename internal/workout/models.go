package workout

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrNotFound signals a normal "nothing to show" outcome: an unknown block
// type, an empty plan queue, or an unresolvable day. Callers substitute an
// empty state instead of failing.
var ErrNotFound = errors.New("not found")

// Invalid plan edits are rejected with a user-facing message and leave the
// state unchanged.
var (
	ErrRemoveActiveBlock  = errors.New("cannot remove the active block")
	ErrRemoveLastBlock    = errors.New("cannot remove the last remaining block")
	ErrReorderActiveBlock = errors.New("cannot move the active block")
)

// Type discriminates the day prescription variants.
type Type string

const (
	TypeStrength    Type = "strength"
	TypeHypertrophy Type = "hypertrophy"
	TypeLISS        Type = "liss"
	TypeHIIT        Type = "hiit"
	TypeRest        Type = "rest"
	TypeDeload      Type = "deload"
)

// WeightUnit is the global weight unit preference. It affects rounding
// increments and the warm-up bar floor.
type WeightUnit string

const (
	UnitKg  WeightUnit = "kg"
	UnitLbs WeightUnit = "lbs"
)

// daysPerWeek is the fixed length of a training week.
const daysPerWeek = 7

// Duration is either a numeric duration (minutes for LISS, seconds for HIIT)
// or free-form text such as "6x400m". It marshals to a JSON number or string
// accordingly.
type Duration struct {
	Number float64
	Text   string
}

// NumericDuration returns a numeric Duration.
func NumericDuration(n float64) *Duration {
	return &Duration{Number: n, Text: ""}
}

// TextDuration returns a free-form Duration.
func TextDuration(text string) *Duration {
	return &Duration{Number: 0, Text: text}
}

// IsNumeric reports whether the duration carries a number rather than text.
func (d Duration) IsNumeric() bool {
	return d.Text == ""
}

// String renders the duration the way the workout card shows it.
func (d Duration) String() string {
	if d.IsNumeric() {
		return strconv.FormatFloat(d.Number, 'f', -1, 64)
	}
	return d.Text
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	if d.IsNumeric() {
		return json.Marshal(d.Number)
	}
	return json.Marshal(d.Text)
}

// UnmarshalJSON implements json.Unmarshaler accepting a number or a string.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*d = Duration{Number: n, Text: ""}
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("duration is neither number nor string: %w", err)
	}
	*d = Duration{Number: 0, Text: text}
	return nil
}

// Prescription is a single day of a training block. Type discriminates which
// fields are meaningful:
//
//   - strength/hypertrophy: Exercises, Sets and Intensity. Sets holds
//     comma-joined "NxM" tokens, Intensity comma-joined percentages; when the
//     token count matches the exercise count, token i belongs to exercise i,
//     otherwise every token applies to every exercise.
//   - liss/hiit: Activity, Duration and the optional Distance/Rounds.
//   - rest/deload: no payload.
type Prescription struct {
	Type      Type      `json:"type"`
	Exercises []string  `json:"exercises,omitempty"`
	Sets      string    `json:"sets,omitempty"`
	Intensity string    `json:"intensity,omitempty"`
	Activity  string    `json:"activity,omitempty"`
	Duration  *Duration `json:"duration,omitempty"`
	Distance  *float64  `json:"distance,omitempty"`
	Rounds    *int      `json:"rounds,omitempty"`
}

// clone returns a deep copy so that archived history records cannot be
// altered through shared slices or pointers.
func (p Prescription) clone() Prescription {
	cloned := p
	if p.Exercises != nil {
		cloned.Exercises = append([]string(nil), p.Exercises...)
	}
	if p.Duration != nil {
		d := *p.Duration
		cloned.Duration = &d
	}
	if p.Distance != nil {
		v := *p.Distance
		cloned.Distance = &v
	}
	if p.Rounds != nil {
		v := *p.Rounds
		cloned.Rounds = &v
	}
	return cloned
}

// Week is exactly seven day prescriptions, Monday-indexed by convention but
// the engine only cares about positions 1-7.
type Week struct {
	Days [daysPerWeek]Prescription `json:"days"`
}

// BlockTemplate is the authored week-by-week content of a training block.
// Templates are read-only reference data and never mutated at runtime.
type BlockTemplate struct {
	Weeks []Week `json:"weeks"`
}

// BlockInfo describes an addable block in the block registry.
type BlockInfo struct {
	Name  string `json:"name"`
	Weeks int    `json:"weeks"`
}

// PlanBlock is one entry of the plan queue. Weeks is the declared progression
// bound and may differ from the authored template length; the resolver clamps.
type PlanBlock struct {
	Name  string `json:"name"`
	Weeks int    `json:"weeks"`
	Type  string `json:"type"`
}

// CompletedWorkout is an append-only history record. Details is a deep copy
// of the prescription that was active at completion time.
type CompletedWorkout struct {
	Date      time.Time    `json:"date"`
	BlockName string       `json:"blockName"`
	Week      int          `json:"week"`
	Day       int          `json:"day"`
	Details   Prescription `json:"details"`
}

// WarmupSet is an ephemeral ramped set below the working weight. Recomputed
// on demand, never persisted.
type WarmupSet struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
	Kind   string  `json:"kind"`
}
