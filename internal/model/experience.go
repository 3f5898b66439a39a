package model

import (
	"errors"
	"math"
)

// ErrInvalidNovelty reports a NaN novelty score. Ordering over NaN is
// undefined, so memories refuse to store such an experience.
var ErrInvalidNovelty = errors.New("novelty is NaN")

// Experience is a recorded (novelty, payload) observation. The novelty score
// is the sole ordering key; the position and patch sample ride along as
// opaque payload and are never inspected for comparisons.
type Experience struct {
	Novelty  float64   `json:"novelty"`
	Position Position  `json:"position"`
	Patch    []float64 `json:"patch,omitempty"`
}

func (e Experience) Validate() error {
	if math.IsNaN(e.Novelty) {
		return ErrInvalidNovelty
	}
	return nil
}

func (e Experience) Less(other Experience) bool { return e.Novelty < other.Novelty }

func (e Experience) LessEq(other Experience) bool { return e.Novelty <= other.Novelty }

func (e Experience) Greater(other Experience) bool { return e.Novelty > other.Novelty }

func (e Experience) GreaterEq(other Experience) bool { return e.Novelty >= other.Novelty }

// Equal holds whenever the novelty scores match, regardless of payload.
func (e Experience) Equal(other Experience) bool { return e.Novelty == other.Novelty }
