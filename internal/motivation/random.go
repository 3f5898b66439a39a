package motivation

import (
	"context"
	"math/rand"

	"github.com/aravind1338/eecs545-artificial-curiosity/internal/model"
	"github.com/aravind1338/eecs545-artificial-curiosity/internal/terrain"
)

// Random walks by picking uniformly among the valid candidate positions.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (*Random) Name() string { return "random" }

func (r *Random) ChooseNext(ctx context.Context, current model.Position, m *terrain.Map, _ []model.Position) (model.Position, error) {
	if err := ctx.Err(); err != nil {
		return model.Position{}, err
	}
	valid := validCandidates(current, m)
	if len(valid) == 0 {
		return model.Position{}, &NoValidMoveError{Position: current, Candidates: len(neighborOffsets)}
	}
	return valid[r.rng.Intn(len(valid))], nil
}
