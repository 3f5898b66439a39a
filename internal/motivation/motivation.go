// Package motivation implements the pluggable policies deciding an agent's
// next position. Policies may keep per-instance state (Linear's heading,
// Curiosity's memory); one instance must never be shared across agents.
package motivation

import (
	"context"
	"fmt"

	"github.com/aravind1338/eecs545-artificial-curiosity/internal/model"
	"github.com/aravind1338/eecs545-artificial-curiosity/internal/terrain"
)

// Motivation proposes the next position given the current one, the terrain
// and the visited history.
type Motivation interface {
	Name() string
	ChooseNext(ctx context.Context, current model.Position, m *terrain.Map, history []model.Position) (model.Position, error)
}

// NoValidMoveError reports that no candidate around Position passed the
// map's validity filter. It is fatal for the agent's run.
type NoValidMoveError struct {
	Position   model.Position
	Candidates int
}

func (e *NoValidMoveError) Error() string {
	return fmt.Sprintf(
		"no valid move from (%d, %d): all %d candidates rejected",
		e.Position.X, e.Position.Y, e.Candidates,
	)
}

// neighborOffsets is the fixed candidate neighborhood, one alignment cell in
// each of the eight directions, enumerated row by row.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

func offsetPosition(current model.Position, direction int, step int) model.Position {
	o := neighborOffsets[direction]
	return model.Position{X: current.X + o[0]*step, Y: current.Y + o[1]*step}
}

func candidatePositions(current model.Position, m *terrain.Map) []model.Position {
	step := m.CellSize()
	out := make([]model.Position, 0, len(neighborOffsets))
	for i := range neighborOffsets {
		out = append(out, offsetPosition(current, i, step))
	}
	return out
}

// validCandidates returns the candidate neighborhood filtered through the
// map's validity model, preserving enumeration order.
func validCandidates(current model.Position, m *terrain.Map) []model.Position {
	candidates := candidatePositions(current, m)
	clean := m.CleanDirections(candidates)
	out := make([]model.Position, 0, len(candidates))
	for i, ok := range clean {
		if ok {
			out = append(out, candidates[i])
		}
	}
	return out
}
