// Package platform runs exploration experiments: it owns the store, builds
// agents from an experiment config, drives them through their step allotment
// and persists the results.
package platform

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aravind1338/eecs545-artificial-curiosity/internal/agent"
	"github.com/aravind1338/eecs545-artificial-curiosity/internal/model"
	"github.com/aravind1338/eecs545-artificial-curiosity/internal/motivation"
	"github.com/aravind1338/eecs545-artificial-curiosity/internal/storage"
	"github.com/aravind1338/eecs545-artificial-curiosity/internal/terrain"
)

type Config struct {
	Store  storage.Store
	Logger *zap.Logger
}

// AgentSpec binds an agent id to a motivation instance and a start position.
// Motivation instances must not be shared between specs.
type AgentSpec struct {
	ID         string
	Motivation motivation.Motivation
	Start      model.Position
}

// ExperimentConfig describes one run: every agent walks Iterations steps on
// the shared terrain. Progress, when set, is called after each completed step.
type ExperimentConfig struct {
	RunID      string
	Terrain    *terrain.Map
	Agents     []AgentSpec
	Iterations int
	Progress   func(agentID string, step, total int)
}

// ExperienceSnapshotter is an optional motivation capability exposing the
// recorded experience buffer for persistence.
type ExperienceSnapshotter interface {
	MemorySnapshot() []model.Experience
}

// StepFailure reports the agent and step at which a run aborted.
type StepFailure struct {
	AgentID string
	Step    int
	Err     error
}

func (e *StepFailure) Error() string {
	return fmt.Sprintf("agent %s failed at step %d: %v", e.AgentID, e.Step, e.Err)
}

func (e *StepFailure) Unwrap() error { return e.Err }

// Engine coordinates experiment runs against a single store.
type Engine struct {
	store  storage.Store
	logger *zap.Logger

	mu      sync.RWMutex
	started bool
}

func NewEngine(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{store: cfg.Store, logger: logger}
}

func (e *Engine) Init(ctx context.Context) error {
	if e.store == nil {
		return fmt.Errorf("store is required")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return nil
	}
	if err := e.store.Init(ctx); err != nil {
		return err
	}
	e.started = true
	return nil
}

// Reset drops all persisted data and re-initializes the engine.
func (e *Engine) Reset(ctx context.Context) error {
	e.mu.Lock()
	e.started = false
	e.mu.Unlock()

	if err := storage.ResetIfSupported(ctx, e.store); err != nil {
		return err
	}
	return e.Init(ctx)
}

func (e *Engine) Started() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.started
}

func (e *Engine) Store() storage.Store { return e.store }

// RunExperiment executes cfg and persists the run summary plus a trajectory
// and experience record per agent. Agents are stepped strictly in sequence:
// each agent completes its whole allotment before the next one starts. On a
// step failure the run aborts, already completed agents stay persisted, and
// the summary records the failure. The returned summary is valid even when
// err is a StepFailure.
func (e *Engine) RunExperiment(ctx context.Context, cfg ExperimentConfig) (model.RunSummary, error) {
	if !e.Started() {
		return model.RunSummary{}, fmt.Errorf("engine is not initialized")
	}
	if cfg.Terrain == nil {
		return model.RunSummary{}, fmt.Errorf("terrain is required")
	}
	if len(cfg.Agents) == 0 {
		return model.RunSummary{}, fmt.Errorf("at least one agent is required")
	}
	if cfg.Iterations <= 0 {
		return model.RunSummary{}, fmt.Errorf("iterations must be positive, got %d", cfg.Iterations)
	}

	runID := cfg.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	agents := make([]*agent.Agent, 0, len(cfg.Agents))
	seen := make(map[string]struct{}, len(cfg.Agents))
	for i, spec := range cfg.Agents {
		id := spec.ID
		if id == "" {
			id = fmt.Sprintf("agent-%d", i+1)
		}
		if _, dup := seen[id]; dup {
			return model.RunSummary{}, fmt.Errorf("duplicate agent id: %s", id)
		}
		seen[id] = struct{}{}

		start := cfg.Terrain.Align(spec.Start)
		a, err := agent.New(id, spec.Motivation, cfg.Terrain, start)
		if err != nil {
			return model.RunSummary{}, err
		}
		agents = append(agents, a)
	}

	summary := model.RunSummary{
		VersionedRecord: storage.Stamp(),
		RunID:           runID,
		CreatedAtUTC:    time.Now().UTC().Format(time.RFC3339),
		MapSource:       cfg.Terrain.Source(),
		FOV:             cfg.Terrain.FOV(),
		GrainCount:      cfg.Terrain.GrainCount(),
		Iterations:      cfg.Iterations,
	}

	e.logger.Info("experiment started",
		zap.String("run_id", runID),
		zap.String("map", cfg.Terrain.Source()),
		zap.Int("agents", len(agents)),
		zap.Int("iterations", cfg.Iterations),
	)

	var failure *StepFailure
	for _, a := range agents {
		record := model.AgentRecord{
			ID:         a.ID(),
			Label:      a.String(),
			Motivation: a.Motivation().Name(),
			Start:      a.History()[0],
		}

		for step := 1; step <= cfg.Iterations; step++ {
			if err := a.Step(ctx); err != nil {
				failure = &StepFailure{AgentID: a.ID(), Step: step, Err: err}
				record.Failed = true
				record.FailStep = step
				record.FailReason = err.Error()
				e.logger.Warn("agent step failed",
					zap.String("run_id", runID),
					zap.String("agent_id", a.ID()),
					zap.Int("step", step),
					zap.Error(err),
				)
				break
			}
			record.Steps = step
			if cfg.Progress != nil {
				cfg.Progress(a.ID(), step, cfg.Iterations)
			}
		}

		if err := e.persistAgent(ctx, runID, a); err != nil {
			return model.RunSummary{}, err
		}
		summary.Agents = append(summary.Agents, record)
		if failure != nil {
			break
		}
	}

	if err := e.store.SaveRunSummary(ctx, summary); err != nil {
		return model.RunSummary{}, err
	}

	if failure != nil {
		return summary, failure
	}
	e.logger.Info("experiment finished", zap.String("run_id", runID))
	return summary, nil
}

func (e *Engine) persistAgent(ctx context.Context, runID string, a *agent.Agent) error {
	trajectory := model.TrajectoryRecord{
		VersionedRecord: storage.Stamp(),
		RunID:           runID,
		AgentID:         a.ID(),
		Points:          a.History(),
	}
	if err := e.store.SaveTrajectory(ctx, trajectory); err != nil {
		return fmt.Errorf("save trajectory for %s: %w", a.ID(), err)
	}

	snapshotter, ok := a.Motivation().(ExperienceSnapshotter)
	if !ok {
		return nil
	}
	record := model.ExperienceRecord{
		VersionedRecord: storage.Stamp(),
		RunID:           runID,
		AgentID:         a.ID(),
		Experiences:     snapshotter.MemorySnapshot(),
	}
	if err := e.store.SaveExperiences(ctx, record); err != nil {
		return fmt.Errorf("save experiences for %s: %w", a.ID(), err)
	}
	return nil
}
