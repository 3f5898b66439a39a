package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aravind1338/eecs545-artificial-curiosity/internal/model"
)

func TestMemoryStoreRunSummaryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Init(ctx))

	input := model.RunSummary{
		VersionedRecord: Stamp(),
		RunID:           "run-1",
		CreatedAtUTC:    "2026-01-02T15:04:05Z",
		MapSource:       "terrain.png",
		FOV:             30,
		GrainCount:      4,
		Iterations:      100,
		Agents: []model.AgentRecord{{
			ID:         "agent-1",
			Label:      "curiosity (2000, 1000)",
			Motivation: "curiosity",
			Start:      model.Position{X: 2000, Y: 1000},
			Steps:      100,
		}},
	}
	require.NoError(t, store.SaveRunSummary(ctx, input))

	output, ok, err := store.GetRunSummary(ctx, "run-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, input, output)

	_, ok, err = store.GetRunSummary(ctx, "run-2")
	require.NoError(t, err)
	require.False(t, ok)

	// Mutating the returned slice must not affect the stored record.
	output.Agents[0].Steps = 0
	again, _, err := store.GetRunSummary(ctx, "run-1")
	require.NoError(t, err)
	require.Equal(t, 100, again.Agents[0].Steps)
}

func TestMemoryStoreListOrdersByCreation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Init(ctx))

	for _, summary := range []model.RunSummary{
		{VersionedRecord: Stamp(), RunID: "run-b", CreatedAtUTC: "2026-01-02T00:00:00Z"},
		{VersionedRecord: Stamp(), RunID: "run-a", CreatedAtUTC: "2026-01-01T00:00:00Z"},
		{VersionedRecord: Stamp(), RunID: "run-c", CreatedAtUTC: "2026-01-02T00:00:00Z"},
	} {
		require.NoError(t, store.SaveRunSummary(ctx, summary))
	}

	out, err := store.ListRunSummaries(ctx)
	require.NoError(t, err)
	require.Len(t, out, 3)
	require.Equal(t, "run-a", out[0].RunID)
	require.Equal(t, "run-b", out[1].RunID)
	require.Equal(t, "run-c", out[2].RunID)
}

func TestMemoryStoreTrajectoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Init(ctx))

	input := model.TrajectoryRecord{
		VersionedRecord: Stamp(),
		RunID:           "run-1",
		AgentID:         "agent-1",
		Points:          []model.Position{{X: 30, Y: 30}, {X: 45, Y: 30}},
	}
	require.NoError(t, store.SaveTrajectory(ctx, input))

	output, ok, err := store.GetTrajectory(ctx, "run-1", "agent-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, input.Points, output.Points)

	_, ok, err = store.GetTrajectory(ctx, "run-1", "agent-2")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryStoreExperiencesRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Init(ctx))

	input := model.ExperienceRecord{
		VersionedRecord: Stamp(),
		RunID:           "run-1",
		AgentID:         "agent-1",
		Experiences: []model.Experience{
			{Novelty: 0.8, Position: model.Position{X: 45, Y: 30}, Patch: []float64{0.1, 0.2}},
			{Novelty: 0.3, Position: model.Position{X: 60, Y: 30}, Patch: []float64{0.3, 0.4}},
		},
	}
	require.NoError(t, store.SaveExperiences(ctx, input))

	output, ok, err := store.GetExperiences(ctx, "run-1", "agent-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, input.Experiences, output.Experiences)
}

func TestMemoryStoreReset(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Init(ctx))
	require.NoError(t, store.SaveRunSummary(ctx, model.RunSummary{VersionedRecord: Stamp(), RunID: "run-1"}))

	require.NoError(t, ResetIfSupported(ctx, store))

	_, ok, err := store.GetRunSummary(ctx, "run-1")
	require.NoError(t, err)
	require.False(t, ok)
}
