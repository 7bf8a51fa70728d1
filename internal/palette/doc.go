// Package palette extracts a small set of representative colors from an image.
//
// The pipeline samples the center pixel of every tile in a 2x2 and a 4x4 grid,
// removes colors that are similar to an earlier sample, ranks the survivors by
// brightness and derives the complement of each ranked color:
//
//	samples (2x2 + 4x4) -> Dedupe -> Rank -> (ranked, complements)
//
// # Pixel Access
//
// The package never decodes or scales images itself. Callers provide a
// PixelSource, usually an ImageSource wrapping an image that has already been
// normalized to the square sample surface (see imaging.NewSurface).
//
// # Similarity
//
// Two colors are similar when their BT.601 brightness differs by less than 10
// and their RGB Euclidean distance is below 30. The relation is not transitive,
// so Dedupe keeps an element only when no earlier element of the input is
// similar to it. The result therefore depends on input order.
//
// # Errors
//
// All failures wrap ErrInvalidInput; test with errors.Is. An empty palette is
// not an error: Result.Empty reports it and Brightest/Darkest are nil.
//
// # Thread Safety
//
// Every function is pure. Independent calls may run concurrently as long as
// the PixelSource they read is not being mutated.
package palette
