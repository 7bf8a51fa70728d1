package palette

import "sort"

// Rank returns a copy of colors sorted by brightness, brightest first.
// The sort is stable: colors with equal brightness keep their input order.
func Rank(colors []Color) []Color {
	ranked := make([]Color, len(colors))
	copy(ranked, colors)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Brightness() > ranked[j].Brightness()
	})
	return ranked
}

// Complements maps Complement over colors, preserving order.
func Complements(colors []Color) []Color {
	out := make([]Color, len(colors))
	for i, c := range colors {
		out[i] = c.Complement()
	}
	return out
}
