//go:build sqlite

package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aravind1338/eecs545-artificial-curiosity/internal/model"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "curiosity.db")

	store := NewSQLiteStore(dbPath)
	require.NoError(t, store.Init(ctx))
	t.Cleanup(func() {
		_ = store.Close()
	})

	summary := model.RunSummary{
		VersionedRecord: Stamp(),
		RunID:           "run-1",
		CreatedAtUTC:    "2026-01-02T15:04:05Z",
		MapSource:       "terrain.png",
		FOV:             30,
		GrainCount:      4,
		Iterations:      100,
		Agents: []model.AgentRecord{{
			ID:         "agent-1",
			Label:      "random (600, 300)",
			Motivation: "random",
			Start:      model.Position{X: 600, Y: 300},
			Steps:      100,
		}},
	}
	require.NoError(t, store.SaveRunSummary(ctx, summary))

	loaded, ok, err := store.GetRunSummary(ctx, "run-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, summary, loaded)

	listed, err := store.ListRunSummaries(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	trajectory := model.TrajectoryRecord{
		VersionedRecord: Stamp(),
		RunID:           "run-1",
		AgentID:         "agent-1",
		Points:          []model.Position{{X: 600, Y: 300}, {X: 615, Y: 300}},
	}
	require.NoError(t, store.SaveTrajectory(ctx, trajectory))

	loadedTrajectory, ok, err := store.GetTrajectory(ctx, "run-1", "agent-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, trajectory.Points, loadedTrajectory.Points)

	record := model.ExperienceRecord{
		VersionedRecord: Stamp(),
		RunID:           "run-1",
		AgentID:         "agent-1",
		Experiences: []model.Experience{
			{Novelty: 0.7, Position: model.Position{X: 615, Y: 300}, Patch: []float64{0.1, 0.2}},
		},
	}
	require.NoError(t, store.SaveExperiences(ctx, record))

	loadedRecord, ok, err := store.GetExperiences(ctx, "run-1", "agent-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, record.Experiences, loadedRecord.Experiences)

	_, ok, err = store.GetTrajectory(ctx, "run-1", "agent-2")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "curiosity.db")

	first := NewSQLiteStore(dbPath)
	require.NoError(t, first.Init(ctx))
	summary := model.RunSummary{VersionedRecord: Stamp(), RunID: "persisted-run", CreatedAtUTC: "2026-01-01T00:00:00Z"}
	require.NoError(t, first.SaveRunSummary(ctx, summary))
	require.NoError(t, first.Close())

	second := NewSQLiteStore(dbPath)
	require.NoError(t, second.Init(ctx))
	t.Cleanup(func() {
		_ = second.Close()
	})

	loaded, ok, err := second.GetRunSummary(ctx, "persisted-run")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, summary.RunID, loaded.RunID)
}

func TestSQLiteStoreReset(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "curiosity.db")

	store := NewSQLiteStore(dbPath)
	require.NoError(t, store.Init(ctx))
	t.Cleanup(func() {
		_ = store.Close()
	})

	require.NoError(t, store.SaveRunSummary(ctx, model.RunSummary{VersionedRecord: Stamp(), RunID: "run-1"}))
	require.NoError(t, store.Reset(ctx))

	_, ok, err := store.GetRunSummary(ctx, "run-1")
	require.NoError(t, err)
	require.False(t, ok)
}
