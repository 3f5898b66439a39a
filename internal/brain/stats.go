package brain

import (
	"fmt"
	"math"
)

// Avg returns the arithmetic mean of values.
func Avg(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("values must not be empty")
	}
	sum := 0.0
	for _, value := range values {
		sum += value
	}
	return sum / float64(len(values)), nil
}

// Std returns population standard deviation.
func Std(values []float64) (float64, error) {
	mean, err := Avg(values)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for _, value := range values {
		diff := mean - value
		sum += diff * diff
	}
	return math.Sqrt(sum / float64(len(values))), nil
}

func meanAbsDeviation(values, reference []float64) (float64, error) {
	if len(values) != len(reference) {
		return 0, fmt.Errorf("vector length mismatch: %d != %d", len(values), len(reference))
	}
	if len(values) == 0 {
		return 0, fmt.Errorf("values must not be empty")
	}
	acc := 0.0
	for i := range values {
		acc += math.Abs(values[i] - reference[i])
	}
	return acc / float64(len(values)), nil
}
