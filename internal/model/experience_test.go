package model

import (
	"errors"
	"math"
	"testing"
)

func TestExperienceOrderingPositive(t *testing.T) {
	low := Experience{Novelty: 0}
	high := Experience{Novelty: 1}

	if !high.Greater(low) {
		t.Fatalf("expected %v > %v", high.Novelty, low.Novelty)
	}
	if !high.GreaterEq(low) {
		t.Fatalf("expected %v >= %v", high.Novelty, low.Novelty)
	}
	if !high.GreaterEq(high) {
		t.Fatalf("expected %v >= itself", high.Novelty)
	}
	if !high.Equal(Experience{Novelty: 1}) {
		t.Fatalf("expected equal novelties to compare equal")
	}
	if !high.LessEq(high) {
		t.Fatalf("expected %v <= itself", high.Novelty)
	}
	if !low.LessEq(high) {
		t.Fatalf("expected %v <= %v", low.Novelty, high.Novelty)
	}
	if !low.Less(high) {
		t.Fatalf("expected %v < %v", low.Novelty, high.Novelty)
	}
}

func TestExperienceOrderingNegative(t *testing.T) {
	low := Experience{Novelty: 0}
	high := Experience{Novelty: 1}

	if low.Greater(high) {
		t.Fatalf("did not expect %v > %v", low.Novelty, high.Novelty)
	}
	if low.GreaterEq(high) {
		t.Fatalf("did not expect %v >= %v", low.Novelty, high.Novelty)
	}
	if low.Equal(high) {
		t.Fatalf("did not expect distinct novelties to compare equal")
	}
	if high.LessEq(low) {
		t.Fatalf("did not expect %v <= %v", high.Novelty, low.Novelty)
	}
	if high.Less(low) {
		t.Fatalf("did not expect %v < %v", high.Novelty, low.Novelty)
	}
}

func TestExperienceEqualityIgnoresPayload(t *testing.T) {
	a := Experience{Novelty: 0.5, Position: Position{X: 1, Y: 2}}
	b := Experience{Novelty: 0.5, Position: Position{X: 9, Y: 9}, Patch: []float64{0.1, 0.2}}

	if !a.Equal(b) {
		t.Fatalf("payload must not participate in equality")
	}
	if a.Less(b) || a.Greater(b) {
		t.Fatalf("payload must not participate in ordering")
	}
}

func TestExperienceValidateRejectsNaN(t *testing.T) {
	bad := Experience{Novelty: math.NaN()}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidNovelty) {
		t.Fatalf("expected ErrInvalidNovelty, got %v", err)
	}
	ok := Experience{Novelty: 0}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
