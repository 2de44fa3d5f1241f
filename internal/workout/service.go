package workout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/myrjola/unbroken/internal/sqlite"
)

// Rest timer durations in seconds.
const (
	strengthRestSeconds    = 180
	restExtensionSeconds   = 120
	hypertrophyRestSeconds = 90
)

// Completion reports the outcome of completing a workout: the archived
// record plus the new cursor position.
type Completion struct {
	Workout          CompletedWorkout `json:"workout"`
	NewWeek          int              `json:"newWeek"`
	NewDay           int              `json:"newDay"`
	MovedToNextBlock bool             `json:"movedToNextBlock"`
}

// StateView is a consistent snapshot of the plan cursor for display.
type StateView struct {
	CurrentWeek       int                `json:"currentWeek"`
	CurrentDay        int                `json:"currentDay"`
	CurrentBlockInfo  BlockInfo          `json:"currentBlockInfo"`
	CompletedWorkouts []CompletedWorkout `json:"completedWorkouts"`
	CompletedSets     map[string]bool    `json:"completedSets"`
}

// RestTimer is the state of the between-sets rest countdown. SecondsLeft is
// computed at read time so the countdown survives without a server-side
// ticker.
type RestTimer struct {
	Active       bool      `json:"active"`
	WorkoutType  Type      `json:"workoutType,omitempty"`
	Phase        string    `json:"phase,omitempty"`
	TotalSeconds int       `json:"totalSeconds"`
	SecondsLeft  int       `json:"secondsLeft"`
	EndsAt       time.Time `json:"endsAt,omitzero"`
}

// BlockExercises lists the distinct exercises of a block template grouped by
// day type, in order of first appearance.
type BlockExercises struct {
	StrengthExercises    []string `json:"strengthExercises"`
	HypertrophyExercises []string `json:"hypertrophyExercises"`
}

// Service is the workout tracking engine. All state lives in memory under a
// single mutex so every operation observes and produces a consistent
// snapshot; the SQLite snapshots are written in the background and only ever
// read back at startup.
type Service struct {
	logger       *slog.Logger
	repo         *repository
	historyLimit int
	now          func() time.Time
	writes       sync.WaitGroup

	mu                sync.Mutex
	plan              []PlanBlock
	currentWeek       int
	currentDay        int
	completedWorkouts []CompletedWorkout
	completedSets     map[string]bool
	maxes             map[string]float64
	tenRMs            map[string]float64
	weightUnit        WeightUnit
	restEndsAt        time.Time
	restTotal         int
	restPhase         string
	restType          Type
	restActive        bool
}

// NewService creates the engine with default state and then overlays any
// snapshots found in the database. A nil database is tolerated: the tracker
// runs fully in memory and loses state on restart.
func NewService(ctx context.Context, db *sqlite.Database, logger *slog.Logger, historyLimit int) *Service {
	s := &Service{
		logger:        logger,
		historyLimit:  historyLimit,
		now:           time.Now,
		plan:          DefaultPlan(),
		currentWeek:   1,
		currentDay:    1,
		completedSets: map[string]bool{},
		maxes:         DefaultMaxes(),
		tenRMs:        map[string]float64{},
		weightUnit:    UnitKg,
	}
	if db != nil {
		s.repo = newRepository(db)
		s.loadSnapshots(ctx)
	}
	return s
}

// loadSnapshots overlays persisted partitions onto the defaults. A partition
// that was never written keeps its default; a corrupt one is logged and
// skipped so a bad document cannot brick the tracker.
func (s *Service) loadSnapshots(ctx context.Context) {
	if state, err := s.repo.workoutState.Get(ctx); err == nil {
		if state.CurrentWeek >= 1 {
			s.currentWeek = state.CurrentWeek
		}
		if state.CurrentDay >= 1 && state.CurrentDay <= daysPerWeek {
			s.currentDay = state.CurrentDay
		}
		if state.CompletedWorkouts != nil {
			s.completedWorkouts = state.CompletedWorkouts
		}
		if state.CompletedSets != nil {
			s.completedSets = state.CompletedSets
		}
	} else if !isNotFound(err) {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "load workout state snapshot", slog.Any("error", err))
	}

	if state, err := s.repo.trainingPlan.Get(ctx); err == nil {
		if len(state.CustomPlan) > 0 {
			s.plan = state.CustomPlan
		}
	} else if !isNotFound(err) {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "load training plan snapshot", slog.Any("error", err))
	}

	if state, err := s.repo.exercises.Get(ctx); err == nil {
		if state.Maxes != nil {
			s.maxes = state.Maxes
		}
		if state.TenRMs != nil {
			s.tenRMs = state.TenRMs
		}
	} else if !isNotFound(err) {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "load exercise snapshot", slog.Any("error", err))
	}

	if state, err := s.repo.preferences.Get(ctx); err == nil {
		if state.WeightUnit == UnitKg || state.WeightUnit == UnitLbs {
			s.weightUnit = state.WeightUnit
		}
	} else if !isNotFound(err) {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "load preferences snapshot", slog.Any("error", err))
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// resolveLocked returns today's prescription: the active block's template at
// the cursor, with the week clamped to the template length so a block whose
// declared length exceeds its authored content repeats the last week instead
// of failing. Callers must hold s.mu.
func (s *Service) resolveLocked() (Prescription, error) {
	if len(s.plan) == 0 {
		return Prescription{}, fmt.Errorf("plan queue is empty: %w", ErrNotFound)
	}
	block := s.plan[0]
	template, err := Template(block.Type)
	if err != nil {
		return Prescription{}, err
	}
	weekIndex := min(s.currentWeek-1, len(template.Weeks)-1)
	dayIndex := s.currentDay - 1
	if weekIndex < 0 || dayIndex < 0 || dayIndex >= daysPerWeek {
		return Prescription{}, fmt.Errorf("no workout at week %d day %d: %w", s.currentWeek, s.currentDay, ErrNotFound)
	}
	return template.Weeks[weekIndex].Days[dayIndex], nil
}

// CurrentWorkout resolves today's prescription. ErrNotFound means there is
// nothing scheduled: an empty queue or a block without authored content.
func (s *Service) CurrentWorkout(_ context.Context) (Prescription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.resolveLocked()
	if err != nil {
		return Prescription{}, err
	}
	return p.clone(), nil
}

// CurrentExercisePlans resolves today's prescription and explodes it into
// per-exercise plans with working weights and set identities. Non-lifting
// days yield an empty list.
func (s *Service) CurrentExercisePlans(_ context.Context) ([]ExercisePlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.resolveLocked()
	if err != nil {
		return nil, err
	}
	return ExercisePlans(p, s.maxes, s.tenRMs, s.weightUnit), nil
}

// CompleteWorkout archives today's prescription and advances the cursor:
// next day, then next week past day seven, and past the block's declared
// week count the block is dequeued and the cursor restarts at week one day
// one. Set completion marks and any running rest timer are cleared.
func (s *Service) CompleteWorkout(ctx context.Context) (Completion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.resolveLocked()
	if err != nil {
		return Completion{}, err
	}
	block := s.plan[0]
	completed := CompletedWorkout{
		Date:      s.now().UTC(),
		BlockName: block.Name,
		Week:      s.currentWeek,
		Day:       s.currentDay,
		Details:   p.clone(),
	}
	s.completedWorkouts = append(s.completedWorkouts, completed)
	s.completedSets = map[string]bool{}
	s.stopRestLocked()

	moved := false
	s.currentDay++
	if s.currentDay > daysPerWeek {
		s.currentDay = 1
		s.currentWeek++
		if s.currentWeek > block.Weeks {
			s.plan = s.plan[1:]
			s.currentWeek = 1
			s.currentDay = 1
			moved = true
		}
	}

	s.snapshotWorkoutStateLocked(ctx)
	if moved {
		s.snapshotTrainingPlanLocked(ctx)
	}
	return Completion{
		Workout:          completed,
		NewWeek:          s.currentWeek,
		NewDay:           s.currentDay,
		MovedToNextBlock: moved,
	}, nil
}

// ToggleSet flips a set checkbox and returns the new value. Set IDs are
// positional and recycle between workouts; completion clears them all.
func (s *Service) ToggleSet(ctx context.Context, setID string) (bool, error) {
	if setID == "" {
		return false, fmt.Errorf("set id is empty: %w", ErrNotFound)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	completed := !s.completedSets[setID]
	s.completedSets[setID] = completed
	s.snapshotWorkoutStateLocked(ctx)
	return completed, nil
}

// CompletedSets returns a copy of the set completion marks.
func (s *Service) CompletedSets(_ context.Context) map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneBoolMap(s.completedSets)
}

// State returns a consistent snapshot of the cursor, active block, history
// and set marks.
func (s *Service) State(_ context.Context) StateView {
	s.mu.Lock()
	defer s.mu.Unlock()
	info := BlockInfo{Name: "No active block", Weeks: 0}
	if len(s.plan) > 0 {
		info = BlockInfo{Name: s.plan[0].Name, Weeks: s.plan[0].Weeks}
	}
	return StateView{
		CurrentWeek:       s.currentWeek,
		CurrentDay:        s.currentDay,
		CurrentBlockInfo:  info,
		CompletedWorkouts: cloneCompleted(s.completedWorkouts),
		CompletedSets:     cloneBoolMap(s.completedSets),
	}
}

// History returns the most recent completed workouts, newest first,
// decorated for display.
func (s *Service) History(_ context.Context) []HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	workouts := s.completedWorkouts
	if len(workouts) > s.historyLimit {
		workouts = workouts[len(workouts)-s.historyLimit:]
	}
	entries := make([]HistoryEntry, 0, len(workouts))
	for i := len(workouts) - 1; i >= 0; i-- {
		entries = append(entries, historyEntry(workouts[i]))
	}
	return entries
}

// Plan returns a copy of the plan queue, active block first.
func (s *Service) Plan(_ context.Context) []PlanBlock {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]PlanBlock(nil), s.plan...)
}

// AddBlock appends a block of the given registered type to the queue.
func (s *Service) AddBlock(ctx context.Context, blockType string) error {
	info, ok := availableBlocks[blockType]
	if !ok {
		return fmt.Errorf("block type %q: %w", blockType, ErrNotFound)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan = append(s.plan, PlanBlock{Name: info.Name, Weeks: info.Weeks, Type: blockType})
	s.snapshotTrainingPlanLocked(ctx)
	return nil
}

// RemoveBlock removes a queued block. The active block and the last
// remaining block cannot be removed.
func (s *Service) RemoveBlock(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.plan) {
		return fmt.Errorf("plan block %d: %w", index, ErrNotFound)
	}
	if len(s.plan) == 1 {
		return ErrRemoveLastBlock
	}
	if index == 0 {
		return ErrRemoveActiveBlock
	}
	s.plan = append(s.plan[:index], s.plan[index+1:]...)
	s.snapshotTrainingPlanLocked(ctx)
	return nil
}

// MoveBlock moves a queued block from one position to another. The active
// block can be neither moved nor displaced, so both indices must point past
// it. The target index addresses the queue as it looks after the removal.
func (s *Service) MoveBlock(ctx context.Context, fromIndex, toIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fromIndex < 0 || fromIndex >= len(s.plan) || toIndex < 0 || toIndex > len(s.plan) {
		return fmt.Errorf("move %d to %d: %w", fromIndex, toIndex, ErrNotFound)
	}
	if fromIndex == 0 || toIndex == 0 {
		return ErrReorderActiveBlock
	}
	if fromIndex == toIndex {
		return nil
	}
	insertIndex := toIndex
	if fromIndex < toIndex {
		insertIndex--
	}
	moved := s.plan[fromIndex]
	s.plan = append(s.plan[:fromIndex], s.plan[fromIndex+1:]...)
	s.plan = append(s.plan[:insertIndex], append([]PlanBlock{moved}, s.plan[insertIndex:]...)...)
	s.snapshotTrainingPlanLocked(ctx)
	return nil
}

// Maxes returns a copy of the stored training maxes keyed by exercise key.
func (s *Service) Maxes(_ context.Context) map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneFloatMap(s.maxes)
}

// TenRMs returns a copy of the stored 10RMs keyed by exercise key.
func (s *Service) TenRMs(_ context.Context) map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneFloatMap(s.tenRMs)
}

// SetMax stores a training max. The exercise may be given as a display name
// or an already-canonical key; both normalise to the same entry.
func (s *Service) SetMax(ctx context.Context, exercise string, value float64) error {
	key := ExerciseKey(exercise)
	if key == "" {
		return fmt.Errorf("exercise %q has no usable key: %w", exercise, ErrNotFound)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maxes[key] = value
	s.snapshotExercisesLocked(ctx)
	return nil
}

// SetTenRM stores a 10RM for accessory weight calculation.
func (s *Service) SetTenRM(ctx context.Context, exercise string, value float64) error {
	key := ExerciseKey(exercise)
	if key == "" {
		return fmt.Errorf("exercise %q has no usable key: %w", exercise, ErrNotFound)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tenRMs[key] = value
	s.snapshotExercisesLocked(ctx)
	return nil
}

// WeightUnit returns the active weight unit.
func (s *Service) WeightUnit(_ context.Context) WeightUnit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.weightUnit
}

// SetWeightUnit switches between kilograms and pounds. Stored numbers are
// not converted; the unit only affects rounding and the warm-up floor.
func (s *Service) SetWeightUnit(ctx context.Context, unit WeightUnit) error {
	if unit != UnitKg && unit != UnitLbs {
		return fmt.Errorf("weight unit %q: %w", unit, ErrNotFound)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weightUnit = unit
	s.snapshotPreferencesLocked(ctx)
	return nil
}

// StartRestTimer starts the between-sets countdown for the given workout
// type: three minutes for strength, ninety seconds for hypertrophy.
func (s *Service) StartRestTimer(_ context.Context, workoutType Type) (RestTimer, error) {
	var seconds int
	switch workoutType {
	case TypeStrength:
		seconds = strengthRestSeconds
	case TypeHypertrophy:
		seconds = hypertrophyRestSeconds
	default:
		return RestTimer{}, fmt.Errorf("rest timer for %q: %w", workoutType, ErrNotFound)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restActive = true
	s.restType = workoutType
	s.restPhase = "initial"
	s.restTotal = seconds
	s.restEndsAt = s.now().Add(time.Duration(seconds) * time.Second)
	return s.restTimerLocked(), nil
}

// ExtendRestTimer adds the one-time two-minute extension. Only a strength
// rest in its initial phase can be extended.
func (s *Service) ExtendRestTimer(_ context.Context) (RestTimer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.restActive || s.restType != TypeStrength || s.restPhase != "initial" {
		return RestTimer{}, fmt.Errorf("rest timer is not extendable: %w", ErrNotFound)
	}
	s.restPhase = "extended"
	s.restTotal = restExtensionSeconds
	s.restEndsAt = s.now().Add(restExtensionSeconds * time.Second)
	return s.restTimerLocked(), nil
}

// StopRestTimer clears the countdown.
func (s *Service) StopRestTimer(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopRestLocked()
}

// RestTimer returns the countdown state with the remaining seconds computed
// against the wall clock.
func (s *Service) RestTimer(_ context.Context) RestTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restTimerLocked()
}

func (s *Service) stopRestLocked() {
	s.restActive = false
	s.restType = ""
	s.restPhase = ""
	s.restTotal = 0
	s.restEndsAt = time.Time{}
}

func (s *Service) restTimerLocked() RestTimer {
	if !s.restActive {
		return RestTimer{}
	}
	left := int(time.Until(s.restEndsAt).Round(time.Second) / time.Second)
	if left < 0 {
		left = 0
	}
	return RestTimer{
		Active:       true,
		WorkoutType:  s.restType,
		Phase:        s.restPhase,
		TotalSeconds: s.restTotal,
		SecondsLeft:  left,
		EndsAt:       s.restEndsAt,
	}
}

// BlockExercises lists the distinct exercises of a block template grouped by
// strength and hypertrophy days. An empty blockType means the active block.
// Unknown types yield empty lists rather than an error.
func (s *Service) BlockExercises(_ context.Context, blockType string) BlockExercises {
	if blockType == "" {
		s.mu.Lock()
		if len(s.plan) > 0 {
			blockType = s.plan[0].Type
		}
		s.mu.Unlock()
	}
	exercises := BlockExercises{StrengthExercises: []string{}, HypertrophyExercises: []string{}}
	template, err := Template(blockType)
	if err != nil {
		return exercises
	}
	seenStrength := map[string]struct{}{}
	seenHypertrophy := map[string]struct{}{}
	for _, week := range template.Weeks {
		for _, day := range week.Days {
			for _, exercise := range day.Exercises {
				switch day.Type {
				case TypeStrength:
					if _, seen := seenStrength[exercise]; !seen {
						seenStrength[exercise] = struct{}{}
						exercises.StrengthExercises = append(exercises.StrengthExercises, exercise)
					}
				case TypeHypertrophy:
					if _, seen := seenHypertrophy[exercise]; !seen {
						seenHypertrophy[exercise] = struct{}{}
						exercises.HypertrophyExercises = append(exercises.HypertrophyExercises, exercise)
					}
				}
			}
		}
	}
	return exercises
}

// Reset restores the factory state: default plan, default maxes, empty
// history and cursor at week one day one. All partitions are rewritten.
func (s *Service) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan = DefaultPlan()
	s.currentWeek = 1
	s.currentDay = 1
	s.completedWorkouts = nil
	s.completedSets = map[string]bool{}
	s.maxes = DefaultMaxes()
	s.tenRMs = map[string]float64{}
	s.weightUnit = UnitKg
	s.stopRestLocked()
	s.snapshotWorkoutStateLocked(ctx)
	s.snapshotTrainingPlanLocked(ctx)
	s.snapshotExercisesLocked(ctx)
	s.snapshotPreferencesLocked(ctx)
}

// Wait blocks until all background snapshot writes have finished. Called on
// shutdown so the last mutation reaches the database before the process
// exits.
func (s *Service) Wait() {
	s.writes.Wait()
}

func cloneBoolMap(m map[string]bool) map[string]bool {
	cloned := make(map[string]bool, len(m))
	for k, v := range m {
		cloned[k] = v
	}
	return cloned
}

func cloneFloatMap(m map[string]float64) map[string]float64 {
	cloned := make(map[string]float64, len(m))
	for k, v := range m {
		cloned[k] = v
	}
	return cloned
}

func cloneCompleted(workouts []CompletedWorkout) []CompletedWorkout {
	cloned := make([]CompletedWorkout, len(workouts))
	for i, w := range workouts {
		cloned[i] = w
		cloned[i].Details = w.Details.clone()
	}
	return cloned
}
