package palette

import "fmt"

const (
	// DefaultBrightnessTolerance is the brightness difference below which two
	// colors may be considered similar.
	DefaultBrightnessTolerance = 10.0

	// DefaultDistanceTolerance is the RGB Euclidean distance below which two
	// colors may be considered similar.
	DefaultDistanceTolerance = 30.0
)

// Options controls ComputeWithOptions and DedupeWith.
type Options struct {
	// GridSizes lists the grids to sample, in order. Samples from earlier grids
	// come first in the combined sequence and therefore win deduplication.
	GridSizes []int

	// BrightnessTolerance: colors closer than this in brightness may be merged.
	BrightnessTolerance float64

	// DistanceTolerance: colors closer than this in RGB space may be merged.
	DistanceTolerance float64
}

// DefaultOptions returns the 2x2 + 4x4 sampling with the standard tolerances.
func DefaultOptions() Options {
	return Options{
		GridSizes:           []int{2, 4},
		BrightnessTolerance: DefaultBrightnessTolerance,
		DistanceTolerance:   DefaultDistanceTolerance,
	}
}

// Validate checks that the options describe a runnable pipeline.
func (o Options) Validate() error {
	if len(o.GridSizes) == 0 {
		return fmt.Errorf("at least one grid size is required: %w", ErrInvalidInput)
	}
	for _, n := range o.GridSizes {
		if n <= 0 || n > MaxGridSize {
			return fmt.Errorf("grid size %d must be in [1, %d]: %w", n, MaxGridSize, ErrInvalidInput)
		}
	}
	if o.BrightnessTolerance <= 0 {
		return fmt.Errorf("brightness tolerance %g must be positive: %w", o.BrightnessTolerance, ErrInvalidInput)
	}
	if o.DistanceTolerance <= 0 {
		return fmt.Errorf("distance tolerance %g must be positive: %w", o.DistanceTolerance, ErrInvalidInput)
	}
	return nil
}
