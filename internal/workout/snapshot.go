package workout

import (
	"context"
	"log/slog"
)

// Snapshot writes happen in the background so a slow or broken disk never
// blocks a workout. The state to persist is copied while s.mu is held; the
// write itself runs detached from the request's cancellation. Failures are
// logged and swallowed because the in-memory state stays authoritative.

func (s *Service) snapshotWorkoutStateLocked(ctx context.Context) {
	if s.repo == nil {
		return
	}
	state := workoutState{
		CurrentWeek:       s.currentWeek,
		CurrentDay:        s.currentDay,
		CompletedWorkouts: cloneCompleted(s.completedWorkouts),
		CompletedSets:     cloneBoolMap(s.completedSets),
	}
	ctx = context.WithoutCancel(ctx)
	s.writes.Add(1)
	go func() {
		defer s.writes.Done()
		if err := s.repo.workoutState.Set(ctx, state); err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "persist workout state", slog.Any("error", err))
		}
	}()
}

func (s *Service) snapshotTrainingPlanLocked(ctx context.Context) {
	if s.repo == nil {
		return
	}
	state := trainingPlanState{CustomPlan: append([]PlanBlock(nil), s.plan...)}
	ctx = context.WithoutCancel(ctx)
	s.writes.Add(1)
	go func() {
		defer s.writes.Done()
		if err := s.repo.trainingPlan.Set(ctx, state); err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "persist training plan", slog.Any("error", err))
		}
	}()
}

func (s *Service) snapshotExercisesLocked(ctx context.Context) {
	if s.repo == nil {
		return
	}
	state := exerciseState{Maxes: cloneFloatMap(s.maxes), TenRMs: cloneFloatMap(s.tenRMs)}
	ctx = context.WithoutCancel(ctx)
	s.writes.Add(1)
	go func() {
		defer s.writes.Done()
		if err := s.repo.exercises.Set(ctx, state); err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "persist exercise state", slog.Any("error", err))
		}
	}()
}

func (s *Service) snapshotPreferencesLocked(ctx context.Context) {
	if s.repo == nil {
		return
	}
	state := preferencesState{WeightUnit: s.weightUnit}
	ctx = context.WithoutCancel(ctx)
	s.writes.Add(1)
	go func() {
		defer s.writes.Done()
		if err := s.repo.preferences.Set(ctx, state); err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "persist preferences", slog.Any("error", err))
		}
	}()
}
