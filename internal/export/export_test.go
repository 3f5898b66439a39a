package export

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aravind1338/eecs545-artificial-curiosity/internal/model"
	"github.com/aravind1338/eecs545-artificial-curiosity/internal/terrain"
)

func TestSafeLabel(t *testing.T) {
	cases := map[string]string{
		"curiosity (2000, 1000)": "curiosity_2000__1000",
		"random (600, 300)":      "random_600__300",
		"linear":                 "linear",
	}
	for input, want := range cases {
		if got := SafeLabel(input); got != want {
			t.Fatalf("SafeLabel(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestTrajectoryCSVRoundTrip(t *testing.T) {
	input := []model.Position{{X: 30, Y: 30}, {X: 45, Y: 30}, {X: 45, Y: 45}}

	var buf bytes.Buffer
	if err := WriteTrajectoryCSV(&buf, input); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "x,y\n") {
		t.Fatalf("missing header: %q", buf.String())
	}

	output, err := ReadTrajectoryCSV(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(output) != len(input) {
		t.Fatalf("expected %d points, got %d", len(input), len(output))
	}
	for i := range input {
		if output[i] != input[i] {
			t.Fatalf("point %d: got (%d, %d), want (%d, %d)", i, output[i].X, output[i].Y, input[i].X, input[i].Y)
		}
	}
}

func TestReadTrajectoryCSVRejectsBadInput(t *testing.T) {
	if _, err := ReadTrajectoryCSV(strings.NewReader("")); err == nil {
		t.Fatalf("empty input must fail")
	}
	if _, err := ReadTrajectoryCSV(strings.NewReader("a,b\n1,2\n")); err == nil {
		t.Fatalf("wrong header must fail")
	}
	if _, err := ReadTrajectoryCSV(strings.NewReader("x,y\nfoo,2\n")); err == nil {
		t.Fatalf("non-integer x must fail")
	}
}

func testMap(t *testing.T) *terrain.Map {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 64, 64))
	m, err := terrain.NewMapFromImage(img, "test", terrain.Config{FOV: 8, GrainCount: 4})
	if err != nil {
		t.Fatalf("new map: %v", err)
	}
	return m
}

func TestWriteCombinedPlotSVG(t *testing.T) {
	m := testMap(t)
	trails := []Trail{
		{Label: "random (32, 32)", Points: []model.Position{{X: 32, Y: 32}, {X: 36, Y: 32}}},
		{Label: "linear (32, 32)", Points: []model.Position{{X: 32, Y: 32}, {X: 32, Y: 36}}},
	}

	var buf bytes.Buffer
	if err := WriteCombinedPlotSVG(&buf, m, trails); err != nil {
		t.Fatalf("write: %v", err)
	}
	svg := buf.String()
	if !strings.Contains(svg, `viewBox="0 0 64 64"`) {
		t.Fatalf("missing viewBox: %s", svg)
	}
	if got := strings.Count(svg, "<polyline"); got != 2 {
		t.Fatalf("expected 2 polylines, got %d", got)
	}
	if !strings.Contains(svg, "random (32, 32)") {
		t.Fatalf("missing legend entry")
	}
	if !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Fatalf("unterminated svg")
	}
}

func TestWriteAgentPlotSVGDrawsCoverage(t *testing.T) {
	m := testMap(t)
	trail := Trail{Label: "curiosity (32, 32)", Points: []model.Position{{X: 32, Y: 32}, {X: 36, Y: 36}}}

	var buf bytes.Buffer
	if err := WriteAgentPlotSVG(&buf, m, trail); err != nil {
		t.Fatalf("write: %v", err)
	}
	svg := buf.String()
	// One background rect plus one coverage rect per visited position.
	if got := strings.Count(svg, "<rect"); got != 3 {
		t.Fatalf("expected 3 rects, got %d", got)
	}
	if !strings.Contains(svg, `width="8" height="8"`) {
		t.Fatalf("coverage rects must be fov-sized")
	}
}

func TestSaveExperimentArtifacts(t *testing.T) {
	m := testMap(t)
	dir := t.TempDir()
	trails := []Trail{
		{Label: "random (32, 32)", Points: []model.Position{{X: 32, Y: 32}, {X: 36, Y: 32}}},
	}

	err := SaveExperimentArtifacts(dir, m, trails, ArtifactOptions{SaveGraphs: true, SaveLocations: true})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	for _, name := range []string{
		"random_32__32_path_record.csv",
		"random_32__32_coverage.svg",
		"all.svg",
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected artifact %s: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "random_32__32_path_record.csv"))
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	points, err := ReadTrajectoryCSV(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
}

func TestSaveExperimentArtifactsRequiresDir(t *testing.T) {
	m := testMap(t)

	if err := SaveExperimentArtifacts("", m, nil, ArtifactOptions{SaveGraphs: true}); err == nil {
		t.Fatalf("missing dir must fail when artifacts are requested")
	}
	if err := SaveExperimentArtifacts("", m, nil, ArtifactOptions{}); err != nil {
		t.Fatalf("nothing requested must be a no-op: %v", err)
	}
}
