package app

import (
	"context"
	"errors"
	"fmt"

	"weightlog/internal/domain"
)

// ProjectionSample is the number of most recent entries a projection uses.
const ProjectionSample = 10

// ProjectionStatus describes the outcome of a goal projection.
type ProjectionStatus int

const (
	// InsufficientData means fewer than ProjectionSample entries exist.
	InsufficientData ProjectionStatus = iota
	// NotLosing means the average daily loss is zero or negative.
	NotLosing
	// Estimated means DaysRemaining holds a projection.
	Estimated
)

// Projection is a naive linear estimate of the days left to reach a goal.
type Projection struct {
	Status        ProjectionStatus
	AvgDailyLoss  float64
	DaysRemaining float64
}

// Project estimates days to goal from the last ProjectionSample entries:
// the loss between the oldest and newest of them, divided by the sample size,
// is the daily rate applied to the distance from the newest weight to goal.
func Project(entries []domain.WeightEntry, goal float64) Projection {
	if len(entries) < ProjectionSample {
		return Projection{Status: InsufficientData}
	}
	last := entries[len(entries)-ProjectionSample:]
	current := last[len(last)-1].Value
	avg := (last[0].Value - current) / float64(len(last))
	if avg <= 0 {
		return Projection{Status: NotLosing, AvgDailyLoss: avg}
	}
	return Projection{
		Status:        Estimated,
		AvgDailyLoss:  avg,
		DaysRemaining: (current - goal) / avg,
	}
}

// GoalReport is the result of viewing a goal.
type GoalReport struct {
	Goal       float64
	Projection Projection
}

// GoalService encapsulates goal use cases.
type GoalService struct {
	goals   domain.GoalRepository
	weights domain.WeightRepository
}

// NewGoalService creates a GoalService backed by the given repositories.
func NewGoalService(goals domain.GoalRepository, weights domain.WeightRepository) *GoalService {
	return &GoalService{goals: goals, weights: weights}
}

// SetGoal validates and stores value, replacing any previous goal.
func (s *GoalService) SetGoal(ctx context.Context, user string, value float64) error {
	if err := domain.ValidateWeight(value); err != nil {
		return err
	}
	if err := s.goals.SetGoal(ctx, user, value); err != nil {
		return fmt.Errorf("set goal: %w", err)
	}
	return nil
}

// ViewGoal returns the stored goal and a projection over the log. It returns
// domain.ErrGoalNotSet or domain.ErrGoalInvalid when there is nothing usable
// to report. A missing log counts as an empty one.
func (s *GoalService) ViewGoal(ctx context.Context, user string) (GoalReport, error) {
	goal, err := s.goals.GetGoal(ctx, user)
	if err != nil {
		return GoalReport{}, err
	}
	entries, err := s.weights.ListWeights(ctx, user)
	if err != nil && !errors.Is(err, domain.ErrLogNotFound) {
		return GoalReport{Goal: goal}, fmt.Errorf("view goal: %w", err)
	}
	return GoalReport{Goal: goal, Projection: Project(entries, goal)}, nil
}
