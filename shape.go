package collide

import "github.com/glyphtools/collide/geom"

// Path is one closed contour of a glyph outline, with a back-reference
// to its owning glyph. HasAnchor is tracked per contour: when a cursive
// entry/exit anchor falls inside this specific contour, only this
// contour is exempted by the cursive rule, not the whole glyph.
type Path struct {
	// Outline is the contour geometry.
	Outline *geom.Path

	// Glyph is the name of the owning glyph.
	Glyph string

	// Bounds is the contour's bounding box.
	Bounds geom.Rect

	// HasAnchor is true when a cursive anchor point lies inside the
	// contour (non-zero winding).
	HasAnchor bool
}

// GlyphShape is the cached, position-independent outline data of one
// glyph. It is computed once per glyph per detector and never mutated
// afterwards.
type GlyphShape struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Name is the glyph's name, for reporting.
	Name string

	// Category is the glyph's GDEF class.
	Category Category

	// Paths holds the closed contours. Degenerate contours with no
	// extent are excluded at build time.
	Paths []*Path

	// Bounds is the union of all contour bounding boxes. Shapes with
	// no contours (e.g. space) have the zero Rect.
	Bounds geom.Rect

	// HasAnchor is true when any contour carries a cursive anchor.
	HasAnchor bool
}

// Empty reports whether the shape has no contours. Empty shapes never
// participate in overlaps.
func (s *GlyphShape) Empty() bool {
	return len(s.Paths) == 0
}

// buildShape derives the cached shape of one glyph from the font:
// fetch the raw outline, drop degenerate contours, apply the optional
// uniform scale about the unscaled bounding box center, then test each
// cursive anchor for containment in each contour.
func buildShape(src OutlineSource, gid GlyphID, scale float64) (*GlyphShape, error) {
	outline, err := src.GlyphOutline(gid)
	if err != nil {
		return nil, err
	}

	shape := &GlyphShape{
		GID:      gid,
		Name:     src.GlyphName(gid),
		Category: src.GlyphCategory(gid),
	}

	var contours []*geom.Path
	for _, c := range outline.Contours() {
		if c.ControlLength() == 0 {
			continue
		}
		contours = append(contours, c)
	}
	if len(contours) == 0 {
		return shape, nil
	}

	if scale != 1.0 {
		bounds := contours[0].Bounds()
		for _, c := range contours[1:] {
			bounds = bounds.Union(c.Bounds())
		}
		center := bounds.Center()
		for i, c := range contours {
			contours[i] = c.ScaleAbout(scale, center)
		}
	}

	anchors := src.CursiveAnchors(gid)
	for i, c := range contours {
		p := &Path{
			Outline: c,
			Glyph:   shape.Name,
			Bounds:  c.Bounds(),
		}
		for _, a := range anchors {
			if c.Contains(a) {
				p.HasAnchor = true
				break
			}
		}
		shape.Paths = append(shape.Paths, p)
		if i == 0 {
			shape.Bounds = p.Bounds
		} else {
			shape.Bounds = shape.Bounds.Union(p.Bounds)
		}
		shape.HasAnchor = shape.HasAnchor || p.HasAnchor
	}
	return shape, nil
}
