package motivation

import (
	"context"
	"fmt"
	"math"

	"github.com/aravind1338/eecs545-artificial-curiosity/internal/memory"
	"github.com/aravind1338/eecs545-artificial-curiosity/internal/model"
	"github.com/aravind1338/eecs545-artificial-curiosity/internal/terrain"
)

// Predictor scores the unfamiliarity of a terrain patch and learns from a
// batch of recorded experiences. The core imposes no further contract;
// predictor failures propagate unchanged and are fatal for the current step.
type Predictor interface {
	Predict(ctx context.Context, patch *terrain.Patch) (float64, error)
	Train(ctx context.Context, experiences []model.Experience) error
}

// NoveltyScorer is an optional Predictor capability. When present it supplies
// the realized novelty of a visited patch; otherwise Curiosity falls back to
// the predictor's own score.
type NoveltyScorer interface {
	Novelty(ctx context.Context, patch *terrain.Patch) (float64, error)
}

// DefaultMemoryCapacity matches the historical priority buffer size used by
// the exploration experiments.
const DefaultMemoryCapacity = 64

type CuriosityConfig struct {
	Predictor Predictor
	// Memory defaults to a PriorityBasedMemory of DefaultMemoryCapacity.
	Memory memory.Memory
	// TrainEvery is the training cadence in steps; <= 0 means every step.
	TrainEvery int
}

// Curiosity moves toward the candidate whose patch the predictor scores most
// novel, records the realized experience in its memory, and periodically
// retrains the predictor on the buffer contents in novelty-descending order.
type Curiosity struct {
	predictor  Predictor
	memory     memory.Memory
	trainEvery int
	steps      int
}

func NewCuriosity(cfg CuriosityConfig) (*Curiosity, error) {
	if cfg.Predictor == nil {
		return nil, fmt.Errorf("curiosity motivation requires a predictor")
	}
	mem := cfg.Memory
	if mem == nil {
		var err error
		mem, err = memory.NewPriorityBasedMemory(DefaultMemoryCapacity)
		if err != nil {
			return nil, err
		}
	}
	trainEvery := cfg.TrainEvery
	if trainEvery <= 0 {
		trainEvery = 1
	}
	return &Curiosity{
		predictor:  cfg.Predictor,
		memory:     mem,
		trainEvery: trainEvery,
	}, nil
}

func (*Curiosity) Name() string { return "curiosity" }

func (c *Curiosity) ChooseNext(ctx context.Context, current model.Position, m *terrain.Map, _ []model.Position) (model.Position, error) {
	if err := ctx.Err(); err != nil {
		return model.Position{}, err
	}
	valid := validCandidates(current, m)
	if len(valid) == 0 {
		return model.Position{}, &NoValidMoveError{Position: current, Candidates: len(neighborOffsets)}
	}

	best := 0
	bestScore := math.Inf(-1)
	for i, candidate := range valid {
		patch, err := m.ExtractPatch(candidate)
		if err != nil {
			// Validity guarantees extractability; reaching this means the
			// map policy is inconsistent.
			return model.Position{}, err
		}
		score, err := c.predictor.Predict(ctx, patch)
		if err != nil {
			return model.Position{}, fmt.Errorf("predict candidate (%d, %d): %w", candidate.X, candidate.Y, err)
		}
		// Strict comparison keeps the first candidate on ties.
		if score > bestScore {
			best, bestScore = i, score
		}
	}

	chosen := valid[best]
	if err := c.record(ctx, chosen, m); err != nil {
		return model.Position{}, err
	}
	return chosen, nil
}

func (c *Curiosity) record(ctx context.Context, pos model.Position, m *terrain.Map) error {
	patch, err := m.ExtractPatch(pos)
	if err != nil {
		return err
	}
	novelty, err := c.realizedNovelty(ctx, patch)
	if err != nil {
		return err
	}
	if err := c.memory.Push(model.Experience{Novelty: novelty, Position: pos, Patch: patch.Values}); err != nil {
		return err
	}

	c.steps++
	if c.steps%c.trainEvery == 0 {
		if err := c.predictor.Train(ctx, c.memory.AsList()); err != nil {
			return fmt.Errorf("train predictor: %w", err)
		}
	}
	return nil
}

func (c *Curiosity) realizedNovelty(ctx context.Context, patch *terrain.Patch) (float64, error) {
	if scorer, ok := c.predictor.(NoveltyScorer); ok {
		return scorer.Novelty(ctx, patch)
	}
	return c.predictor.Predict(ctx, patch)
}

// MemorySnapshot exposes the recorded experiences in training order.
func (c *Curiosity) MemorySnapshot() []model.Experience {
	return c.memory.AsList()
}
