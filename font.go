package collide

import "github.com/glyphtools/collide/geom"

// OutlineSource supplies glyph outlines and glyph metadata in font
// units. Implementations wrap a parsed font; see the opentype
// sub-package for the standard TTF/OTF adapter.
type OutlineSource interface {
	// GlyphOutline returns all contours of a glyph as a single path in
	// font units. A *GlyphNotFoundError is returned when the font does
	// not contain the glyph. Glyphs without any outline (e.g. space)
	// return an empty path and no error.
	GlyphOutline(gid GlyphID) (*geom.Path, error)

	// GlyphName returns a human-readable name for the glyph, or a
	// synthetic fallback such as "gid42" when the font carries none.
	GlyphName(gid GlyphID) string

	// GlyphCategory returns the glyph's GDEF class.
	GlyphCategory(gid GlyphID) Category

	// CursiveAnchors returns the cursive entry/exit anchor points of
	// the glyph in font units. Empty for glyphs without cursive
	// attachment records.
	CursiveAnchors(gid GlyphID) []geom.Point

	// UnitsPerEm returns the font's design grid size.
	UnitsPerEm() uint16
}

// ShapedGlyph is one positioned glyph of a shaped run, in font units.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the input character cluster the glyph originates from.
	Cluster int

	// XOffset and YOffset are fine-grained positioning adjustments
	// applied on top of the running pen position.
	XOffset float64
	YOffset float64

	// XAdvance is the horizontal pen movement after this glyph.
	XAdvance float64
}

// ShapedRun is the output of shaping one string of text.
type ShapedRun struct {
	// Direction is the visual order of the run.
	Direction Direction

	// Glyphs is the glyph sequence in input (logical) order.
	Glyphs []ShapedGlyph
}

// Shaper turns a string of text into a positioned glyph sequence.
// The standard implementation lives in the opentype sub-package and
// wraps go-text/typesetting's HarfBuzz port.
type Shaper interface {
	Shape(text string) (ShapedRun, error)
}
