package collide

import "github.com/glyphtools/collide/geom"

// PositionedGlyph is a GlyphShape fixed in run space by a pen offset.
// It is derived per shaping call, never cached: positioning is a pure
// translation of the cached geometry and does not touch the font.
type PositionedGlyph struct {
	// Shape is the underlying cached shape (shared, read-only).
	Shape *GlyphShape

	// Offset is the pen translation applied to the cached outline.
	Offset geom.Point

	// Cluster is the shaping cluster id of the glyph.
	Cluster int

	// Index is the glyph's position in the current run, in visual
	// order. Zero outside a run.
	Index int

	// Paths holds translated copies of the cached contours. Glyph
	// back-references and anchor flags carry over unchanged.
	Paths []*Path

	// Bounds is the translated union bounding box.
	Bounds geom.Rect
}

// Name returns the owning glyph's name.
func (g *PositionedGlyph) Name() string { return g.Shape.Name }

// Category returns the owning glyph's GDEF class.
func (g *PositionedGlyph) Category() Category { return g.Shape.Category }

// Empty reports whether the glyph has no outline.
func (g *PositionedGlyph) Empty() bool { return g.Shape.Empty() }

// Position looks up (or builds) the glyph's cached shape and returns it
// rigidly translated by offset. The cached geometry is never re-derived
// from the font here.
func (d *Detector) Position(gid GlyphID, offset geom.Point) (*PositionedGlyph, error) {
	shape, err := d.Shape(gid)
	if err != nil {
		return nil, err
	}

	pg := &PositionedGlyph{
		Shape:  shape,
		Offset: offset,
		Paths:  make([]*Path, len(shape.Paths)),
		Bounds: shape.Bounds.Translate(offset.X, offset.Y),
	}
	for i, p := range shape.Paths {
		pg.Paths[i] = &Path{
			Outline:   p.Outline.Translate(offset.X, offset.Y),
			Glyph:     p.Glyph,
			Bounds:    p.Bounds.Translate(offset.X, offset.Y),
			HasAnchor: p.HasAnchor,
		}
	}
	return pg, nil
}
