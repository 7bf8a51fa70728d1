// Package imaging connects files on disk to the palette pipeline.
//
// It covers everything around the pure color logic in package palette:
// decoding and caching source images, normalizing them to the square sample
// surface, rendering mosaics, swatches and sample overlays, and shaping results
// for JSON output.
//
// # Sample Surface
//
// Every image is normalized with Cover before sampling. Cover scales the image
// until it fills a size x size square (400 by default) and crops the overflow
// around the center, so tile positions are independent of the source aspect
// ratio.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner; X grows to
// the right and Y grows downward.
//
// # Color Representation
//
// Colors are reported as ColorResult:
//   - Hex: "#rrggbb" (lowercase)
//   - RGB: 8-bit components (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//   - Brightness: BT.601 luma (0-255)
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. All other functions are stateless.
package imaging
