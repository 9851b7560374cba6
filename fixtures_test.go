package collide

import (
	"fmt"

	"github.com/glyphtools/collide/geom"
)

// fakeGlyph is one glyph of a fakeFont.
type fakeGlyph struct {
	outline  *geom.Path
	category Category
	anchors  []geom.Point
}

// fakeFont is an in-memory OutlineSource with hand-built outlines.
type fakeFont struct {
	glyphs map[GlyphID]fakeGlyph
	names  map[GlyphID]string
}

func newFakeFont() *fakeFont {
	return &fakeFont{
		glyphs: make(map[GlyphID]fakeGlyph),
		names:  make(map[GlyphID]string),
	}
}

func (f *fakeFont) add(gid GlyphID, name string, g fakeGlyph) {
	f.glyphs[gid] = g
	f.names[gid] = name
}

func (f *fakeFont) GlyphOutline(gid GlyphID) (*geom.Path, error) {
	g, ok := f.glyphs[gid]
	if !ok {
		return nil, &GlyphNotFoundError{GID: gid}
	}
	if g.outline == nil {
		return geom.NewPath(), nil
	}
	return g.outline, nil
}

func (f *fakeFont) GlyphName(gid GlyphID) string {
	if n, ok := f.names[gid]; ok {
		return n
	}
	return fmt.Sprintf("gid%d", gid)
}

func (f *fakeFont) GlyphCategory(gid GlyphID) Category {
	return f.glyphs[gid].category
}

func (f *fakeFont) CursiveAnchors(gid GlyphID) []geom.Point {
	return f.glyphs[gid].anchors
}

func (f *fakeFont) UnitsPerEm() uint16 { return 1000 }

// fakeShaper replays a fixed shaped run for any input text.
type fakeShaper struct {
	run ShapedRun
}

func (s *fakeShaper) Shape(string) (ShapedRun, error) {
	return s.run, nil
}

// squarePath is a closed square contour with corner (x0, y0) and the
// given side length.
func squarePath(x0, y0, side float64) *geom.Path {
	p := geom.NewPath()
	p.MoveTo(x0, y0)
	p.LineTo(x0+side, y0)
	p.LineTo(x0+side, y0+side)
	p.LineTo(x0, y0+side)
	p.Close()
	return p
}

// square is a base glyph whose outline is a side x side square at the
// origin.
func square(side float64) fakeGlyph {
	return fakeGlyph{outline: squarePath(0, 0, side), category: CategoryBase}
}

// markSquare is a mark glyph with a square outline.
func markSquare(side float64) fakeGlyph {
	return fakeGlyph{outline: squarePath(0, 0, side), category: CategoryMark}
}
