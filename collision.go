package collide

import (
	"fmt"

	"github.com/glyphtools/collide/geom"
)

// Collision is one reported overlap between two glyph contours.
type Collision struct {
	// Glyph1 and Glyph2 are the names of the colliding glyphs.
	Glyph1, Glyph2 string

	// Index1 and Index2 are the glyphs' run positions in visual order.
	Index1, Index2 int

	// Path1 and Path2 are the specific intersecting contours, in run
	// space.
	Path1, Path2 *Path

	// Point is one intersection point of the two contours: the first
	// found in segment traversal order, so results are reproducible
	// across runs.
	Point geom.Point
}

// String returns a short human-readable description of the collision.
func (c Collision) String() string {
	return fmt.Sprintf("%s (#%d) overlaps %s (#%d) at (%.1f, %.1f)",
		c.Glyph1, c.Index1, c.Glyph2, c.Index2, c.Point.X, c.Point.Y)
}
