package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/aravind1338/eecs545-artificial-curiosity/internal/model"
)

type agentKey struct {
	runID   string
	agentID string
}

type MemoryStore struct {
	mu           sync.RWMutex
	initialized  bool
	runs         map[string]model.RunSummary
	trajectories map[agentKey]model.TrajectoryRecord
	experiences  map[agentKey]model.ExperienceRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.runs = make(map[string]model.RunSummary)
	s.trajectories = make(map[agentKey]model.TrajectoryRecord)
	s.experiences = make(map[agentKey]model.ExperienceRecord)
	return nil
}

// Reset is equivalent to a fresh Init.
func (s *MemoryStore) Reset(ctx context.Context) error {
	return s.Init(ctx)
}

func (s *MemoryStore) SaveRunSummary(_ context.Context, summary model.RunSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := summary
	copied.Agents = append([]model.AgentRecord(nil), summary.Agents...)
	s.runs[summary.RunID] = copied
	return nil
}

func (s *MemoryStore) GetRunSummary(_ context.Context, runID string) (model.RunSummary, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary, ok := s.runs[runID]
	if !ok {
		return model.RunSummary{}, false, nil
	}
	copied := summary
	copied.Agents = append([]model.AgentRecord(nil), summary.Agents...)
	return copied, true, nil
}

func (s *MemoryStore) ListRunSummaries(_ context.Context) ([]model.RunSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.RunSummary, 0, len(s.runs))
	for _, summary := range s.runs {
		copied := summary
		copied.Agents = append([]model.AgentRecord(nil), summary.Agents...)
		out = append(out, copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAtUTC != out[j].CreatedAtUTC {
			return out[i].CreatedAtUTC < out[j].CreatedAtUTC
		}
		return out[i].RunID < out[j].RunID
	})
	return out, nil
}

func (s *MemoryStore) SaveTrajectory(_ context.Context, trajectory model.TrajectoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := trajectory
	copied.Points = append([]model.Position(nil), trajectory.Points...)
	s.trajectories[agentKey{trajectory.RunID, trajectory.AgentID}] = copied
	return nil
}

func (s *MemoryStore) GetTrajectory(_ context.Context, runID, agentID string) (model.TrajectoryRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trajectory, ok := s.trajectories[agentKey{runID, agentID}]
	if !ok {
		return model.TrajectoryRecord{}, false, nil
	}
	copied := trajectory
	copied.Points = append([]model.Position(nil), trajectory.Points...)
	return copied, true, nil
}

func (s *MemoryStore) SaveExperiences(_ context.Context, record model.ExperienceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := record
	copied.Experiences = append([]model.Experience(nil), record.Experiences...)
	s.experiences[agentKey{record.RunID, record.AgentID}] = copied
	return nil
}

func (s *MemoryStore) GetExperiences(_ context.Context, runID, agentID string) (model.ExperienceRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.experiences[agentKey{runID, agentID}]
	if !ok {
		return model.ExperienceRecord{}, false, nil
	}
	copied := record
	copied.Experiences = append([]model.Experience(nil), record.Experiences...)
	return copied, true, nil
}
