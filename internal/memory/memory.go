// Package memory provides bounded experience buffers backing novelty-driven
// exploration. Overflow is a normal condition resolved by each variant's
// eviction policy, never by an error.
package memory

import (
	"fmt"

	"github.com/aravind1338/eecs545-artificial-curiosity/internal/model"
)

// Memory is a bounded store of experiences. Size never exceeds Capacity;
// every push beyond capacity evicts exactly one existing entry.
type Memory interface {
	Push(e model.Experience) error
	AsList() []model.Experience
	Size() int
	Capacity() int
}

func validateCapacity(capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("memory capacity must be positive, got %d", capacity)
	}
	return nil
}
