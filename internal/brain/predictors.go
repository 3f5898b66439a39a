// Package brain provides the novelty predictors the curiosity motivation
// plugs in. Predictors are deliberately simple baselines; richer models can
// be added behind the same interface.
package brain

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/aravind1338/eecs545-artificial-curiosity/internal/model"
	"github.com/aravind1338/eecs545-artificial-curiosity/internal/terrain"
)

// Static scores every patch with the same fixed value. Useful as a control:
// ties on every candidate make the curiosity policy fully deterministic.
type Static struct {
	Score float64
}

func (s *Static) Predict(_ context.Context, _ *terrain.Patch) (float64, error) {
	return s.Score, nil
}

func (*Static) Train(context.Context, []model.Experience) error { return nil }

// Uniform scores patches with seeded pseudo-random values in [0, 1),
// ignoring training entirely.
type Uniform struct {
	rng *rand.Rand
}

func NewUniform(seed int64) *Uniform {
	return &Uniform{rng: rand.New(rand.NewSource(seed))}
}

func (u *Uniform) Predict(_ context.Context, _ *terrain.Patch) (float64, error) {
	return u.rng.Float64(), nil
}

func (*Uniform) Train(context.Context, []model.Experience) error { return nil }

// MeanDistance keeps a running element-wise mean of every patch it has been
// trained on and scores a candidate by its mean absolute deviation from that
// prototype. Patches unlike anything seen so far score high, so the policy
// steers toward unfamiliar terrain.
type MeanDistance struct {
	mean  []float64
	count int
}

func NewMeanDistance() *MeanDistance {
	return &MeanDistance{}
}

func (m *MeanDistance) Predict(_ context.Context, patch *terrain.Patch) (float64, error) {
	if patch == nil || len(patch.Values) == 0 {
		return 0, fmt.Errorf("patch must not be empty")
	}
	if m.count == 0 {
		// Nothing learned yet: every patch is equally novel.
		return 1, nil
	}
	return meanAbsDeviation(patch.Values, m.mean)
}

func (m *MeanDistance) Train(_ context.Context, experiences []model.Experience) error {
	for _, exp := range experiences {
		if len(exp.Patch) == 0 {
			continue
		}
		if m.mean == nil {
			m.mean = make([]float64, len(exp.Patch))
		}
		if len(exp.Patch) != len(m.mean) {
			return fmt.Errorf("patch length changed: %d != %d", len(exp.Patch), len(m.mean))
		}
		m.count++
		inv := 1 / float64(m.count)
		for i, v := range exp.Patch {
			m.mean[i] += (v - m.mean[i]) * inv
		}
	}
	return nil
}

// New builds a predictor by kind. Supported kinds are "static", "uniform"
// and "mean".
func New(kind string, seed int64) (Predictor, error) {
	switch kind {
	case "static":
		return &Static{}, nil
	case "uniform":
		return NewUniform(seed), nil
	case "mean":
		return NewMeanDistance(), nil
	default:
		return nil, fmt.Errorf("unsupported predictor kind: %s", kind)
	}
}

// Predictor mirrors the contract the curiosity motivation expects, declared
// here so this package does not import motivation.
type Predictor interface {
	Predict(ctx context.Context, patch *terrain.Patch) (float64, error)
	Train(ctx context.Context, experiences []model.Experience) error
}
