package export

import (
	"fmt"
	"io"

	"github.com/aravind1338/eecs545-artificial-curiosity/internal/model"
	"github.com/aravind1338/eecs545-artificial-curiosity/internal/terrain"
)

// Trail is one agent's labeled path, ready for plotting.
type Trail struct {
	Label  string
	Points []model.Position
}

var trailColors = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728",
	"#9467bd", "#8c564b", "#e377c2", "#7f7f7f",
}

// WriteCombinedPlotSVG draws every trail on a single canvas sized to the
// map, one polyline per agent plus a legend.
func WriteCombinedPlotSVG(out io.Writer, m *terrain.Map, trails []Trail) error {
	if m == nil {
		return fmt.Errorf("terrain is required")
	}
	if err := writeSVGHeader(out, m.Width(), m.Height()); err != nil {
		return err
	}
	for i, trail := range trails {
		color := trailColors[i%len(trailColors)]
		if err := writePolyline(out, trail.Points, color); err != nil {
			return err
		}
		if err := writeLegendEntry(out, i, trail.Label, color); err != nil {
			return err
		}
	}
	_, err := io.WriteString(out, "</svg>\n")
	return err
}

// WriteAgentPlotSVG draws one trail with a field-of-view square around each
// visited position, showing the terrain the agent has actually seen.
func WriteAgentPlotSVG(out io.Writer, m *terrain.Map, trail Trail) error {
	if m == nil {
		return fmt.Errorf("terrain is required")
	}
	if err := writeSVGHeader(out, m.Width(), m.Height()); err != nil {
		return err
	}

	half := m.FOV() / 2
	for _, p := range trail.Points {
		_, err := fmt.Fprintf(out,
			"  <rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" fill=\"#1f77b4\" fill-opacity=\"0.08\" stroke=\"none\"/>\n",
			p.X-half, p.Y-half, m.FOV(), m.FOV(),
		)
		if err != nil {
			return err
		}
	}
	if err := writePolyline(out, trail.Points, "#d62728"); err != nil {
		return err
	}
	if err := writeLegendEntry(out, 0, trail.Label, "#d62728"); err != nil {
		return err
	}
	_, err := io.WriteString(out, "</svg>\n")
	return err
}

func writeSVGHeader(out io.Writer, width, height int) error {
	_, err := fmt.Fprintf(out,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %d %d\" width=\"%d\" height=\"%d\">\n"+
			"  <rect width=\"%d\" height=\"%d\" fill=\"#f5f5f5\"/>\n",
		width, height, width, height, width, height,
	)
	return err
}

func writePolyline(out io.Writer, points []model.Position, color string) error {
	if len(points) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(out, "  <polyline fill=\"none\" stroke=\"%s\" stroke-width=\"2\" points=\"", color); err != nil {
		return err
	}
	for i, p := range points {
		sep := " "
		if i == 0 {
			sep = ""
		}
		if _, err := fmt.Fprintf(out, "%s%d,%d", sep, p.X, p.Y); err != nil {
			return err
		}
	}
	_, err := io.WriteString(out, "\"/>\n")
	return err
}

func writeLegendEntry(out io.Writer, slot int, label, color string) error {
	y := 20 + slot*18
	_, err := fmt.Fprintf(out,
		"  <text x=\"12\" y=\"%d\" font-family=\"monospace\" font-size=\"14\" fill=\"%s\">%s</text>\n",
		y, color, label,
	)
	return err
}
