package palette

import "math"

// Distance returns the Euclidean distance between a and b in 8-bit RGB space.
func Distance(a, b Color) float64 {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return math.Sqrt(float64(dr*dr + dg*dg + db*db))
}

// Similar reports whether a and b are visually interchangeable under the
// default tolerances: brightness differs by less than 10 and RGB distance is
// less than 30. Both bounds are strict.
func Similar(a, b Color) bool {
	return similar(a, b, DefaultBrightnessTolerance, DefaultDistanceTolerance)
}

func similar(a, b Color, brightnessTol, distanceTol float64) bool {
	brightnessDiff := math.Abs(a.Brightness() - b.Brightness())
	return brightnessDiff < brightnessTol && Distance(a, b) < distanceTol
}

// Dedupe removes every color that is similar to an earlier color of the input.
//
// Index i survives iff no j < i exists with Similar(colors[j], colors[i]).
// Comparison is against the full input, not just the survivors: because
// similarity is not transitive, a color can be dropped because of a neighbor
// that was itself dropped. Survivors keep their relative order. The input is
// not modified.
func Dedupe(colors []Color) []Color {
	return dedupe(colors, DefaultBrightnessTolerance, DefaultDistanceTolerance)
}

// DedupeWith is Dedupe using the tolerances from opts. GridSizes is ignored.
func DedupeWith(colors []Color, opts Options) []Color {
	return dedupe(colors, opts.BrightnessTolerance, opts.DistanceTolerance)
}

func dedupe(colors []Color, brightnessTol, distanceTol float64) []Color {
	kept := make([]Color, 0, len(colors))
	for i, c := range colors {
		first := true
		for j := 0; j < i; j++ {
			if similar(colors[j], c, brightnessTol, distanceTol) {
				first = false
				break
			}
		}
		if first {
			kept = append(kept, c)
		}
	}
	return kept
}
