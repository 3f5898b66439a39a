package storage

import (
	"context"

	"github.com/aravind1338/eecs545-artificial-curiosity/internal/model"
)

// Store defines the persistence operations for exploration runs. A run owns
// one summary plus a trajectory and an experience record per agent.
type Store interface {
	Init(ctx context.Context) error
	SaveRunSummary(ctx context.Context, summary model.RunSummary) error
	GetRunSummary(ctx context.Context, runID string) (model.RunSummary, bool, error)
	ListRunSummaries(ctx context.Context) ([]model.RunSummary, error)
	SaveTrajectory(ctx context.Context, trajectory model.TrajectoryRecord) error
	GetTrajectory(ctx context.Context, runID, agentID string) (model.TrajectoryRecord, bool, error)
	SaveExperiences(ctx context.Context, record model.ExperienceRecord) error
	GetExperiences(ctx context.Context, runID, agentID string) (model.ExperienceRecord, bool, error)
}

// Resetter is an optional Store capability that drops all persisted data.
type Resetter interface {
	Reset(ctx context.Context) error
}
