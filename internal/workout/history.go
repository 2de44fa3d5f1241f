package workout

import (
	"strings"
	"time"
)

// HistoryEntry is a completed workout decorated for display: a type badge
// color and label plus a one-line summary of what was done.
type HistoryEntry struct {
	Date      time.Time `json:"date"`
	BlockName string    `json:"blockName"`
	Week      int       `json:"week"`
	Day       int       `json:"day"`
	Type      Type      `json:"type"`
	Label     string    `json:"label"`
	Color     string    `json:"color"`
	Summary   string    `json:"summary"`
}

type historyBadge struct {
	color string
	label string
}

var historyBadges = map[Type]historyBadge{
	TypeRest:        {color: "bg-slate-400", label: "Rest"},
	TypeDeload:      {color: "bg-slate-400", label: "Deload"},
	TypeLISS:        {color: "bg-green-500", label: "LISS"},
	TypeHIIT:        {color: "bg-yellow-500", label: "HIIT"},
	TypeStrength:    {color: "bg-red-500", label: "Strength"},
	TypeHypertrophy: {color: "bg-blue-500", label: "Hypertrophy"},
}

// historyEntry decorates a completed workout. Unrecognised types fall back
// to the rest badge so malformed records still render.
func historyEntry(w CompletedWorkout) HistoryEntry {
	badge, ok := historyBadges[w.Details.Type]
	if !ok {
		badge = historyBadges[TypeRest]
	}
	return HistoryEntry{
		Date:      w.Date,
		BlockName: w.BlockName,
		Week:      w.Week,
		Day:       w.Day,
		Type:      w.Details.Type,
		Label:     badge.label,
		Color:     badge.color,
		Summary:   summarize(w.Details),
	}
}

// summarize renders the one-line description of a day's work.
func summarize(p Prescription) string {
	switch p.Type {
	case TypeStrength:
		if len(p.Exercises) == 0 {
			return "Strength training"
		}
		return strings.Join(p.Exercises, ", ")
	case TypeHypertrophy:
		if len(p.Exercises) == 0 {
			return "Accessory work"
		}
		if len(p.Exercises) > 3 {
			return strings.Join(p.Exercises[:3], ", ") + "..."
		}
		return strings.Join(p.Exercises, ", ")
	case TypeLISS, TypeHIIT:
		summary := p.Activity
		if p.Duration != nil {
			summary += " - " + p.Duration.String()
			if p.Duration.IsNumeric() {
				summary += " min"
			}
		}
		return summary
	case TypeDeload:
		return "Light activity"
	default:
		return "Recovery day"
	}
}
