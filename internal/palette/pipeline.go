package palette

import "fmt"

// GridSample holds the raw tile colors of one sampled grid, row-major.
type GridSample struct {
	Size   int     `json:"size"`
	Colors []Color `json:"colors"`
}

// Result is the outcome of one pipeline run.
type Result struct {
	// Grids are the raw samples in the order they were taken.
	Grids []GridSample `json:"grids"`

	// Ranked holds the deduplicated colors, brightest first.
	Ranked []Color `json:"ranked"`

	// Brightest and Darkest are the first and last ranked colors, or nil when
	// the palette is empty.
	Brightest *Color `json:"brightest"`
	Darkest   *Color `json:"darkest"`

	// Complements[i] is the complement of Ranked[i].
	Complements []Color `json:"complements"`
}

// Empty reports whether no colors survived.
func (r *Result) Empty() bool {
	return len(r.Ranked) == 0
}

// BrightestColor returns the brightest color and false if the palette is empty.
func (r *Result) BrightestColor() (Color, bool) {
	if r.Brightest == nil {
		return Color{}, false
	}
	return *r.Brightest, true
}

// DarkestColor returns the darkest color and false if the palette is empty.
func (r *Result) DarkestColor() (Color, bool) {
	if r.Darkest == nil {
		return Color{}, false
	}
	return *r.Darkest, true
}

// Compute runs the standard pipeline (2x2 and 4x4 grids, default tolerances).
func Compute(src PixelSource) (*Result, error) {
	return ComputeWithOptions(src, DefaultOptions())
}

// ComputeWithOptions runs the pipeline:
//
//  1. Sample src once per entry of opts.GridSizes
//  2. Concatenate the samples in grid order
//  3. Dedupe the combined sequence
//  4. Rank the survivors by brightness
//  5. Derive the complement of every ranked color
//
// Any sampling failure aborts the run; no partial result is returned.
func ComputeWithOptions(src PixelSource, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	grids := make([]GridSample, 0, len(opts.GridSizes))
	var combined []Color
	for _, n := range opts.GridSizes {
		samples, err := Sample(src, n)
		if err != nil {
			return nil, fmt.Errorf("failed to sample %dx%d grid: %w", n, n, err)
		}
		grids = append(grids, GridSample{Size: n, Colors: samples})
		combined = append(combined, samples...)
	}

	ranked := Rank(DedupeWith(combined, opts))

	result := &Result{
		Grids:       grids,
		Ranked:      ranked,
		Complements: Complements(ranked),
	}
	if len(ranked) > 0 {
		brightest := ranked[0]
		darkest := ranked[len(ranked)-1]
		result.Brightest = &brightest
		result.Darkest = &darkest
	}
	return result, nil
}
