// Package curiosity is the public entry point for running terrain
// exploration experiments. It wires terrain loading, motivation and
// predictor construction, the experiment engine, storage and artifact
// export behind one client.
package curiosity

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aravind1338/eecs545-artificial-curiosity/internal/brain"
	"github.com/aravind1338/eecs545-artificial-curiosity/internal/export"
	"github.com/aravind1338/eecs545-artificial-curiosity/internal/model"
	"github.com/aravind1338/eecs545-artificial-curiosity/internal/motivation"
	"github.com/aravind1338/eecs545-artificial-curiosity/internal/platform"
	"github.com/aravind1338/eecs545-artificial-curiosity/internal/storage"
	"github.com/aravind1338/eecs545-artificial-curiosity/internal/terrain"
)

const (
	defaultDBPath       = "curiosity.db"
	defaultArtifactsDir = "artifacts"
)

type Options struct {
	StoreKind    string
	DBPath       string
	ArtifactsDir string
	Logger       *zap.Logger
}

type Client struct {
	store        storage.Store
	engine       *platform.Engine
	artifactsDir string
	logger       *zap.Logger
}

// AgentRequest describes one agent of an experiment. Predictor, memory
// capacity and training cadence only apply to the curiosity motivation.
type AgentRequest struct {
	Motivation     string
	Start          model.Position
	Predictor      string
	MemoryCapacity int
	TrainEvery     int
}

type RunRequest struct {
	MapPath    string
	FOV        int
	GrainCount int
	Iterations int
	Seed       int64
	Agents     []AgentRequest
	// SaveGraphs and SaveLocations require OutDir (or the client's
	// artifacts dir) and write plots and trajectory CSVs after the run.
	SaveGraphs    bool
	SaveLocations bool
	OutDir        string
	Progress      func(agentID string, step, total int)
}

type RunSummary struct {
	RunID        string
	ArtifactsDir string
	MapSource    string
	Iterations   int
	Agents       []model.AgentRecord
}

func New(opts Options) (*Client, error) {
	storeKind := opts.StoreKind
	if storeKind == "" {
		storeKind = storage.DefaultStoreKind()
	}
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	artifactsDir := opts.ArtifactsDir
	if artifactsDir == "" {
		artifactsDir = defaultArtifactsDir
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	store, err := storage.NewStore(storeKind, dbPath)
	if err != nil {
		return nil, err
	}

	return &Client{
		store:        store,
		engine:       platform.NewEngine(platform.Config{Store: store, Logger: logger}),
		artifactsDir: artifactsDir,
		logger:       logger,
	}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

func (c *Client) Init(ctx context.Context) error {
	return c.engine.Init(ctx)
}

// Reset drops all persisted runs.
func (c *Client) Reset(ctx context.Context) error {
	return c.engine.Reset(ctx)
}

// Motivations lists the registered motivation names.
func (c *Client) Motivations() []string {
	return motivation.List()
}

// RunExperiment loads the terrain, builds one motivation instance per agent
// and runs the experiment. When a step fails the returned summary still
// describes the persisted partial run and err wraps a platform.StepFailure.
func (c *Client) RunExperiment(ctx context.Context, req RunRequest) (RunSummary, error) {
	if req.MapPath == "" {
		return RunSummary{}, fmt.Errorf("map path is required")
	}
	if len(req.Agents) == 0 {
		return RunSummary{}, fmt.Errorf("at least one agent is required")
	}
	if req.Iterations <= 0 {
		req.Iterations = 100
	}
	outDir := req.OutDir
	if outDir == "" {
		outDir = c.artifactsDir
	}
	if (req.SaveGraphs || req.SaveLocations) && outDir == "" {
		return RunSummary{}, fmt.Errorf("artifact directory is required to save graphs or locations")
	}

	if err := c.engine.Init(ctx); err != nil {
		return RunSummary{}, err
	}

	m, err := terrain.NewMap(req.MapPath, terrain.Config{FOV: req.FOV, GrainCount: req.GrainCount})
	if err != nil {
		return RunSummary{}, err
	}

	specs := make([]platform.AgentSpec, 0, len(req.Agents))
	for i, ar := range req.Agents {
		mot, err := c.buildMotivation(ar, req.Seed+int64(i))
		if err != nil {
			return RunSummary{}, fmt.Errorf("agent %d: %w", i+1, err)
		}
		specs = append(specs, platform.AgentSpec{
			ID:         fmt.Sprintf("agent-%d", i+1),
			Motivation: mot,
			Start:      ar.Start,
		})
	}

	summary, runErr := c.engine.RunExperiment(ctx, platform.ExperimentConfig{
		Terrain:    m,
		Agents:     specs,
		Iterations: req.Iterations,
		Progress:   req.Progress,
	})
	if runErr != nil && summary.RunID == "" {
		return RunSummary{}, runErr
	}

	out := RunSummary{
		RunID:      summary.RunID,
		MapSource:  summary.MapSource,
		Iterations: summary.Iterations,
		Agents:     summary.Agents,
	}

	if req.SaveGraphs || req.SaveLocations {
		trails, err := c.trailsForRun(ctx, summary)
		if err != nil {
			return out, err
		}
		opts := export.ArtifactOptions{SaveGraphs: req.SaveGraphs, SaveLocations: req.SaveLocations}
		if err := export.SaveExperimentArtifacts(outDir, m, trails, opts); err != nil {
			return out, err
		}
		out.ArtifactsDir = outDir
	}

	return out, runErr
}

// Runs lists the persisted run summaries, oldest first.
func (c *Client) Runs(ctx context.Context) ([]model.RunSummary, error) {
	if err := c.engine.Init(ctx); err != nil {
		return nil, err
	}
	return c.store.ListRunSummaries(ctx)
}

// Trajectory returns the persisted path of one agent.
func (c *Client) Trajectory(ctx context.Context, runID, agentID string) (model.TrajectoryRecord, error) {
	if err := c.engine.Init(ctx); err != nil {
		return model.TrajectoryRecord{}, err
	}
	trajectory, ok, err := c.store.GetTrajectory(ctx, runID, agentID)
	if err != nil {
		return model.TrajectoryRecord{}, err
	}
	if !ok {
		return model.TrajectoryRecord{}, fmt.Errorf("trajectory not found: %s/%s", runID, agentID)
	}
	return trajectory, nil
}

// Export re-renders the artifacts of a persisted run into outDir. The
// terrain image must still be readable at the path recorded in the summary.
func (c *Client) Export(ctx context.Context, runID, outDir string) (string, error) {
	if err := c.engine.Init(ctx); err != nil {
		return "", err
	}
	summary, ok, err := c.store.GetRunSummary(ctx, runID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("run not found: %s", runID)
	}

	m, err := terrain.NewMap(summary.MapSource, terrain.Config{FOV: summary.FOV, GrainCount: summary.GrainCount})
	if err != nil {
		return "", fmt.Errorf("reload terrain %s: %w", summary.MapSource, err)
	}

	if outDir == "" {
		outDir = c.artifactsDir
	}
	trails, err := c.trailsForRun(ctx, summary)
	if err != nil {
		return "", err
	}
	opts := export.ArtifactOptions{SaveGraphs: true, SaveLocations: true}
	if err := export.SaveExperimentArtifacts(outDir, m, trails, opts); err != nil {
		return "", err
	}
	return outDir, nil
}

func (c *Client) buildMotivation(req AgentRequest, seed int64) (motivation.Motivation, error) {
	if req.Motivation == "" {
		return nil, fmt.Errorf("motivation is required")
	}

	cfg := motivation.FactoryConfig{
		Seed:           seed,
		MemoryCapacity: req.MemoryCapacity,
		TrainEvery:     req.TrainEvery,
	}
	if req.Motivation == "curiosity" {
		kind := req.Predictor
		if kind == "" {
			kind = "mean"
		}
		predictor, err := brain.New(kind, seed)
		if err != nil {
			return nil, err
		}
		cfg.Predictor = predictor
	}
	return motivation.Resolve(req.Motivation, cfg)
}

func (c *Client) trailsForRun(ctx context.Context, summary model.RunSummary) ([]export.Trail, error) {
	trails := make([]export.Trail, 0, len(summary.Agents))
	for _, record := range summary.Agents {
		trajectory, ok, err := c.store.GetTrajectory(ctx, summary.RunID, record.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		trails = append(trails, export.Trail{Label: record.Label, Points: trajectory.Points})
	}
	return trails, nil
}
