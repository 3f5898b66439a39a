package motivation

import (
	"context"
	"math/rand"

	"github.com/aravind1338/eecs545-artificial-curiosity/internal/model"
	"github.com/aravind1338/eecs545-artificial-curiosity/internal/terrain"
)

// Linear keeps moving along its last heading and only turns when the next
// position on that heading is invalid, yielding long straight runs broken by
// turns at edges. The heading is motivation-local state, so multiple Linear
// agents never interfere.
type Linear struct {
	rng        *rand.Rand
	heading    int
	hasHeading bool
}

func NewLinear(seed int64) *Linear {
	return &Linear{rng: rand.New(rand.NewSource(seed))}
}

func (*Linear) Name() string { return "linear" }

func (l *Linear) ChooseNext(ctx context.Context, current model.Position, m *terrain.Map, _ []model.Position) (model.Position, error) {
	if err := ctx.Err(); err != nil {
		return model.Position{}, err
	}
	step := m.CellSize()
	if l.hasHeading {
		next := offsetPosition(current, l.heading, step)
		if m.IsValid(next) {
			return next, nil
		}
	}

	// Blocked or never headed anywhere: adopt a new heading among the
	// currently valid directions.
	valid := make([]int, 0, len(neighborOffsets))
	for i := range neighborOffsets {
		if m.IsValid(offsetPosition(current, i, step)) {
			valid = append(valid, i)
		}
	}
	if len(valid) == 0 {
		return model.Position{}, &NoValidMoveError{Position: current, Candidates: len(neighborOffsets)}
	}
	l.heading = valid[l.rng.Intn(len(valid))]
	l.hasHeading = true
	return offsetPosition(current, l.heading, step), nil
}
