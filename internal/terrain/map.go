// Package terrain owns the exploration surface: a grayscale intensity grid
// loaded once from an image, field-of-view patch extraction, and the validity
// model that decides where an agent may legally look and move.
package terrain

import (
	"fmt"
	"image"
	"math"

	"github.com/aravind1338/eecs545-artificial-curiosity/internal/model"
)

// Config carries the tunable policy knobs for a Map. FOV and GrainCount are
// fixed for the Map's lifetime.
type Config struct {
	// FOV is the edge length of a square patch.
	FOV int
	// GrainCount partitions the fov into a coarser step grid of cell size
	// FOV / int(sqrt(GrainCount)).
	GrainCount int
	// AllowedFOVs restricts the accepted field-of-view sizes. Empty accepts
	// any fov that leaves at least one viewable position on the image.
	AllowedFOVs []int
	// AlignmentUnit is the grid step that valid positions must be multiples
	// of. Zero selects the derived cell size; negative disables alignment.
	AlignmentUnit int
	// SafetyMargin widens the validity bound beyond the extraction bound so
	// a valid position always has viewable neighbors one step away. Zero
	// selects the derived cell size; negative disables the extra margin.
	SafetyMargin int
}

// Map is read-only after construction and safe to share across agents.
type Map struct {
	source string
	width  int
	height int
	fov    int
	grains int
	cell   int
	align  int
	margin int
	pixels []float64
}

// NewMap loads the terrain image at path and builds a Map from it.
func NewMap(path string, cfg Config) (*Map, error) {
	img, err := decodeImage(path)
	if err != nil {
		return nil, err
	}
	return NewMapFromImage(img, path, cfg)
}

// NewMapFromImage builds a Map from an already decoded image. The source
// string is retained for labeling and persistence only.
func NewMapFromImage(img image.Image, source string, cfg Config) (*Map, error) {
	if cfg.FOV <= 0 {
		return nil, fmt.Errorf("fov must be positive, got %d", cfg.FOV)
	}
	if cfg.GrainCount <= 0 {
		return nil, fmt.Errorf("grain count must be positive, got %d", cfg.GrainCount)
	}
	if len(cfg.AllowedFOVs) > 0 && !containsInt(cfg.AllowedFOVs, cfg.FOV) {
		return nil, fmt.Errorf("fov %d is not in the allowed set %v", cfg.FOV, cfg.AllowedFOVs)
	}

	width, height, pixels := luminance(img)
	if width <= 2*cfg.FOV || height <= 2*cfg.FOV {
		return nil, fmt.Errorf(
			"terrain %dx%d leaves no viewable position for fov %d",
			width, height, cfg.FOV,
		)
	}

	root := int(math.Sqrt(float64(cfg.GrainCount)))
	if root < 1 {
		root = 1
	}
	cell := cfg.FOV / root
	if cell < 1 {
		return nil, fmt.Errorf("grain count %d is too fine for fov %d", cfg.GrainCount, cfg.FOV)
	}

	align := cfg.AlignmentUnit
	switch {
	case align == 0:
		align = cell
	case align < 0:
		align = 0
	}
	margin := cfg.SafetyMargin
	switch {
	case margin == 0:
		margin = cell
	case margin < 0:
		margin = 0
	}

	return &Map{
		source: source,
		width:  width,
		height: height,
		fov:    cfg.FOV,
		grains: cfg.GrainCount,
		cell:   cell,
		align:  align,
		margin: margin,
		pixels: pixels,
	}, nil
}

func (m *Map) Source() string { return m.source }

func (m *Map) Width() int { return m.width }

func (m *Map) Height() int { return m.height }

func (m *Map) FOV() int { return m.fov }

func (m *Map) GrainCount() int { return m.grains }

// CellSize is the step of the derived alignment grid, fov/sqrt(grainCount).
func (m *Map) CellSize() int { return m.cell }

// ExtractPatch returns the fov x fov window centered at p. It is the single
// source of truth for "is this position viewable": positions closer than one
// fov to the near edges, or at least as close as one fov to the far edges,
// fail with an OutOfBoundsError.
func (m *Map) ExtractPatch(p model.Position) (*Patch, error) {
	if !m.viewable(p) {
		return nil, &OutOfBoundsError{Position: p, FOV: m.fov, Width: m.width, Height: m.height}
	}

	half := m.fov / 2
	values := make([]float64, 0, m.fov*m.fov)
	left := p.X - half
	for y := p.Y - half; y < p.Y-half+m.fov; y++ {
		row := y * m.width
		values = append(values, m.pixels[row+left:row+left+m.fov]...)
	}
	return &Patch{Center: p, Size: m.fov, Values: values}, nil
}

func (m *Map) viewable(p model.Position) bool {
	return p.X >= m.fov && p.X < m.width-m.fov &&
		p.Y >= m.fov && p.Y < m.height-m.fov
}

// IsValid reports whether an agent may safely move to p: the position must be
// viewable, lie on the alignment grid, and keep a safety margin from the
// edges so a subsequent step in any direction can still extract a patch.
func (m *Map) IsValid(p model.Position) bool {
	if !m.viewable(p) {
		return false
	}
	if m.margin > 0 {
		if p.X < m.fov+m.margin || p.X >= m.width-m.fov-m.margin {
			return false
		}
		if p.Y < m.fov+m.margin || p.Y >= m.height-m.fov-m.margin {
			return false
		}
	}
	if m.align > 0 && (mod(p.X, m.align) != 0 || mod(p.Y, m.align) != 0) {
		return false
	}
	return true
}

// CleanDirections applies IsValid element-wise, preserving order and length.
func (m *Map) CleanDirections(positions []model.Position) []bool {
	out := make([]bool, len(positions))
	for i, p := range positions {
		out[i] = m.IsValid(p)
	}
	return out
}

// Align snaps p to the nearest alignment grid point. It is a no-op when
// alignment is disabled.
func (m *Map) Align(p model.Position) model.Position {
	if m.align <= 0 {
		return p
	}
	return model.Position{X: snap(p.X, m.align), Y: snap(p.Y, m.align)}
}

func snap(v, unit int) int {
	if v >= 0 {
		return (v + unit/2) / unit * unit
	}
	return -((-v + unit/2) / unit * unit)
}

func mod(v, unit int) int {
	r := v % unit
	if r < 0 {
		r += unit
	}
	return r
}

func containsInt(values []int, v int) bool {
	for _, item := range values {
		if item == v {
			return true
		}
	}
	return false
}
