package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aravind1338/eecs545-artificial-curiosity/internal/terrain"
)

// ArtifactOptions selects which artifacts SaveExperimentArtifacts writes.
type ArtifactOptions struct {
	// SaveGraphs writes the combined and per-agent SVG plots.
	SaveGraphs bool
	// SaveLocations writes one trajectory CSV per agent.
	SaveLocations bool
}

// SaveExperimentArtifacts writes the selected artifacts for every trail into
// dir. CSV files are named <label>_path_record.csv after SafeLabel munging;
// the per-agent plots are <label>_coverage.svg and the combined plot is
// all.svg.
func SaveExperimentArtifacts(dir string, m *terrain.Map, trails []Trail, opts ArtifactOptions) error {
	if !opts.SaveGraphs && !opts.SaveLocations {
		return nil
	}
	if dir == "" {
		return fmt.Errorf("artifact directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	if opts.SaveLocations {
		for _, trail := range trails {
			name := SafeLabel(trail.Label) + "_path_record.csv"
			if err := writeFileWith(filepath.Join(dir, name), func(f *os.File) error {
				return WriteTrajectoryCSV(f, trail.Points)
			}); err != nil {
				return fmt.Errorf("save locations for %s: %w", trail.Label, err)
			}
		}
	}

	if opts.SaveGraphs {
		if err := writeFileWith(filepath.Join(dir, "all.svg"), func(f *os.File) error {
			return WriteCombinedPlotSVG(f, m, trails)
		}); err != nil {
			return fmt.Errorf("save combined plot: %w", err)
		}
		for _, trail := range trails {
			name := SafeLabel(trail.Label) + "_coverage.svg"
			trail := trail
			if err := writeFileWith(filepath.Join(dir, name), func(f *os.File) error {
				return WriteAgentPlotSVG(f, m, trail)
			}); err != nil {
				return fmt.Errorf("save plot for %s: %w", trail.Label, err)
			}
		}
	}
	return nil
}

func writeFileWith(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
