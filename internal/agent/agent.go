// Package agent binds a motivation to a terrain and tracks the positions the
// agent has visited.
package agent

import (
	"context"
	"fmt"

	"github.com/aravind1338/eecs545-artificial-curiosity/internal/model"
	"github.com/aravind1338/eecs545-artificial-curiosity/internal/motivation"
	"github.com/aravind1338/eecs545-artificial-curiosity/internal/terrain"
)

// Agent walks a terrain one step at a time, delegating every move decision to
// its motivation. An Agent is not safe for concurrent use.
type Agent struct {
	id         string
	motivation motivation.Motivation
	terrain    *terrain.Map
	position   model.Position
	history    []model.Position
}

// New places an agent at start on m. The start position must be viewable;
// callers wanting grid alignment should pass m.Align(start).
func New(id string, mot motivation.Motivation, m *terrain.Map, start model.Position) (*Agent, error) {
	if id == "" {
		return nil, fmt.Errorf("agent id is required")
	}
	if mot == nil {
		return nil, fmt.Errorf("agent %s: motivation is required", id)
	}
	if m == nil {
		return nil, fmt.Errorf("agent %s: terrain is required", id)
	}
	if _, err := m.ExtractPatch(start); err != nil {
		return nil, fmt.Errorf("agent %s: start position: %w", id, err)
	}
	return &Agent{
		id:         id,
		motivation: mot,
		terrain:    m,
		position:   start,
		history:    []model.Position{start},
	}, nil
}

func (a *Agent) ID() string { return a.id }

func (a *Agent) Motivation() motivation.Motivation { return a.motivation }

func (a *Agent) Position() model.Position { return a.position }

// History returns the visited positions in order, starting with the start
// position. The slice is a copy.
func (a *Agent) History() []model.Position {
	return append([]model.Position(nil), a.history...)
}

// String labels the agent by its motivation and start position, matching the
// naming used in exported artifacts.
func (a *Agent) String() string {
	start := a.history[0]
	return fmt.Sprintf("%s (%d, %d)", a.motivation.Name(), start.X, start.Y)
}

// Step asks the motivation for the next position and commits it. On error the
// agent's position and history are left untouched, so a failed step is
// observable only through the returned error.
func (a *Agent) Step(ctx context.Context) error {
	next, err := a.motivation.ChooseNext(ctx, a.position, a.terrain, a.history)
	if err != nil {
		return err
	}
	a.position = next
	a.history = append(a.history, next)
	return nil
}
