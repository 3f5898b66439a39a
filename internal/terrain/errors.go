package terrain

import (
	"fmt"

	"github.com/aravind1338/eecs545-artificial-curiosity/internal/model"
)

// OutOfBoundsError reports that a patch extraction would extend past an edge
// of the terrain. Motivations filter it out during candidate validation; for
// an agent's own position it is fatal for the run.
type OutOfBoundsError struct {
	Position model.Position
	FOV      int
	Width    int
	Height   int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf(
		"position (%d, %d) cannot view a %dx%d patch inside %dx%d terrain",
		e.Position.X, e.Position.Y, e.FOV, e.FOV, e.Width, e.Height,
	)
}
