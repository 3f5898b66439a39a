package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aravind1338/eecs545-artificial-curiosity/internal/model"
	"github.com/aravind1338/eecs545-artificial-curiosity/pkg/curiosity"
)

// experimentFile is the YAML experiment description. Motivations and
// positions are parallel lists: agent i pairs motivations[i] with
// positions[i].
type experimentFile struct {
	Map        string `yaml:"map"`
	FOV        int    `yaml:"fov"`
	GrainCount int    `yaml:"grains"`
	Iterations int    `yaml:"iterations"`
	Seed       int64  `yaml:"seed"`

	Motivations []string       `yaml:"motivations"`
	Positions   []positionYAML `yaml:"positions"`

	Predictor      string `yaml:"predictor"`
	MemoryCapacity int    `yaml:"memory_capacity"`
	TrainEvery     int    `yaml:"train_every"`

	SaveGraphs    bool   `yaml:"save_graphs"`
	SaveLocations bool   `yaml:"save_locations"`
	OutputDir     string `yaml:"output_dir"`

	Store  string `yaml:"store"`
	DBPath string `yaml:"db_path"`
}

type positionYAML struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type fileOverrides struct {
	MapPath    string
	FOV        int
	GrainCount int
	Iterations int
	Seed       int64
	OutputDir  string
	Store      string
	DBPath     string
}

func loadExperimentFile(path string) (*experimentFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file experimentFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse experiment config %s: %w", path, err)
	}
	return &file, nil
}

func (f *experimentFile) applyOverrides(o fileOverrides) {
	if o.MapPath != "" {
		f.Map = o.MapPath
	}
	if o.FOV > 0 {
		f.FOV = o.FOV
	}
	if o.GrainCount > 0 {
		f.GrainCount = o.GrainCount
	}
	if o.Iterations > 0 {
		f.Iterations = o.Iterations
	}
	if o.Seed != 0 {
		f.Seed = o.Seed
	}
	if o.OutputDir != "" {
		f.OutputDir = o.OutputDir
	}
	if o.Store != "" {
		f.Store = o.Store
	}
	if o.DBPath != "" {
		f.DBPath = o.DBPath
	}
}

func (f *experimentFile) validate() error {
	if f.Map == "" {
		return fmt.Errorf("map is required")
	}
	if len(f.Motivations) == 0 {
		return fmt.Errorf("at least one motivation is required")
	}
	if len(f.Motivations) != len(f.Positions) {
		return fmt.Errorf(
			"motivations and positions must have equal length: %d != %d",
			len(f.Motivations), len(f.Positions),
		)
	}
	if (f.SaveGraphs || f.SaveLocations) && f.OutputDir == "" {
		return fmt.Errorf("output_dir is required when save_graphs or save_locations is set")
	}
	return nil
}

func (f *experimentFile) toRunRequest() (curiosity.RunRequest, error) {
	if err := f.validate(); err != nil {
		return curiosity.RunRequest{}, err
	}

	agents := make([]curiosity.AgentRequest, 0, len(f.Motivations))
	for i, name := range f.Motivations {
		agents = append(agents, curiosity.AgentRequest{
			Motivation:     name,
			Start:          model.Position{X: f.Positions[i].X, Y: f.Positions[i].Y},
			Predictor:      f.Predictor,
			MemoryCapacity: f.MemoryCapacity,
			TrainEvery:     f.TrainEvery,
		})
	}

	return curiosity.RunRequest{
		MapPath:       f.Map,
		FOV:           f.FOV,
		GrainCount:    f.GrainCount,
		Iterations:    f.Iterations,
		Seed:          f.Seed,
		Agents:        agents,
		SaveGraphs:    f.SaveGraphs,
		SaveLocations: f.SaveLocations,
		OutDir:        f.OutputDir,
	}, nil
}
