// Package geom provides the 2D curve geometry used for glyph overlap
// testing: points, rectangles, Bezier curves, multi-contour paths, and
// intersection primitives (curve/curve points and flattened overlap
// area). Coordinates are font units with the y axis pointing up.
package geom
