package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadExperimentFile(t *testing.T) {
	path := writeConfig(t, `
map: images/terrain.png
fov: 30
grains: 4
iterations: 100
seed: 42
motivations: [curiosity, random]
positions:
  - {x: 2000, y: 1000}
  - {x: 600, y: 300}
predictor: mean
memory_capacity: 64
train_every: 1
save_graphs: true
save_locations: true
output_dir: artifacts
store: memory
`)

	file, err := loadExperimentFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	req, err := file.toRunRequest()
	if err != nil {
		t.Fatalf("to request: %v", err)
	}
	if req.MapPath != "images/terrain.png" || req.FOV != 30 || req.GrainCount != 4 {
		t.Fatalf("unexpected terrain fields: %+v", req)
	}
	if len(req.Agents) != 2 {
		t.Fatalf("expected 2 agents, got %d", len(req.Agents))
	}
	if req.Agents[0].Motivation != "curiosity" || req.Agents[0].Start.X != 2000 || req.Agents[0].Start.Y != 1000 {
		t.Fatalf("unexpected first agent: %+v", req.Agents[0])
	}
	if req.Agents[1].Motivation != "random" || req.Agents[1].Start.X != 600 {
		t.Fatalf("unexpected second agent: %+v", req.Agents[1])
	}
	if req.Agents[0].Predictor != "mean" || req.Agents[0].MemoryCapacity != 64 {
		t.Fatalf("predictor settings not applied: %+v", req.Agents[0])
	}
	if !req.SaveGraphs || !req.SaveLocations || req.OutDir != "artifacts" {
		t.Fatalf("artifact settings not applied: %+v", req)
	}
}

func TestExperimentFileValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "missing map",
			content: `
motivations: [random]
positions:
  - {x: 30, y: 30}
`,
			wantErr: "map is required",
		},
		{
			name: "no motivations",
			content: `
map: terrain.png
`,
			wantErr: "at least one motivation",
		},
		{
			name: "length mismatch",
			content: `
map: terrain.png
motivations: [random, linear]
positions:
  - {x: 30, y: 30}
`,
			wantErr: "equal length",
		},
		{
			name: "save without dir",
			content: `
map: terrain.png
motivations: [random]
positions:
  - {x: 30, y: 30}
save_graphs: true
`,
			wantErr: "output_dir is required",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			file, err := loadExperimentFile(writeConfig(t, tc.content))
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			_, err = file.toRunRequest()
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	file, err := loadExperimentFile(writeConfig(t, `
map: terrain.png
fov: 30
grains: 4
iterations: 100
motivations: [random]
positions:
  - {x: 30, y: 30}
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	file.applyOverrides(fileOverrides{
		MapPath:    "other.png",
		FOV:        64,
		Iterations: 10,
		Seed:       7,
		Store:      "sqlite",
		DBPath:     "runs.db",
	})

	if file.Map != "other.png" || file.FOV != 64 || file.Iterations != 10 {
		t.Fatalf("overrides not applied: %+v", file)
	}
	if file.Seed != 7 || file.Store != "sqlite" || file.DBPath != "runs.db" {
		t.Fatalf("overrides not applied: %+v", file)
	}
	// Untouched fields keep their config values.
	if file.GrainCount != 4 {
		t.Fatalf("grains must keep config value, got %d", file.GrainCount)
	}
}
