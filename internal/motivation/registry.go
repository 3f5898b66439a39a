package motivation

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/aravind1338/eecs545-artificial-curiosity/internal/memory"
)

var (
	ErrMotivationExists   = errors.New("motivation already registered")
	ErrMotivationNotFound = errors.New("motivation not found")
)

// FactoryConfig carries the per-agent knobs a factory may consume. Fields a
// given motivation does not use are ignored.
type FactoryConfig struct {
	Seed           int64
	Predictor      Predictor
	MemoryCapacity int
	TrainEvery     int
}

// Factory builds a fresh motivation instance for a single agent.
type Factory func(cfg FactoryConfig) (Motivation, error)

var registry = struct {
	mu sync.RWMutex
	m  map[string]Factory
}{
	m: make(map[string]Factory),
}

func Register(name string, factory Factory) error {
	if name == "" {
		return errors.New("motivation name is required")
	}
	if factory == nil {
		return errors.New("motivation factory is required")
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, exists := registry.m[name]; exists {
		return fmt.Errorf("%w: %s", ErrMotivationExists, name)
	}
	registry.m[name] = factory
	return nil
}

func Resolve(name string, cfg FactoryConfig) (Motivation, error) {
	registry.mu.RLock()
	factory, ok := registry.m[name]
	registry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMotivationNotFound, name)
	}
	return factory(cfg)
}

func List() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	names := make([]string, 0, len(registry.m))
	for name := range registry.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	mustRegister("random", func(cfg FactoryConfig) (Motivation, error) {
		return NewRandom(cfg.Seed), nil
	})
	mustRegister("linear", func(cfg FactoryConfig) (Motivation, error) {
		return NewLinear(cfg.Seed), nil
	})
	mustRegister("curiosity", func(cfg FactoryConfig) (Motivation, error) {
		curiosityCfg := CuriosityConfig{
			Predictor:  cfg.Predictor,
			TrainEvery: cfg.TrainEvery,
		}
		if cfg.MemoryCapacity > 0 {
			mem, err := memory.NewPriorityBasedMemory(cfg.MemoryCapacity)
			if err != nil {
				return nil, err
			}
			curiosityCfg.Memory = mem
		}
		return NewCuriosity(curiosityCfg)
	})
}

func mustRegister(name string, factory Factory) {
	if err := Register(name, factory); err != nil {
		panic(err)
	}
}
