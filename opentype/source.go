package opentype

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/glyphtools/collide"
	"github.com/glyphtools/collide/geom"
)

// ErrEmptyFontData is returned when font data is empty.
var ErrEmptyFontData = errors.New("opentype: empty font data")

// Source is a parsed font exposing outlines, glyph metadata and
// shaping. It implements both collide.OutlineSource and collide.Shaper.
//
// Optional tables degrade gracefully: a font without GDEF yields
// CategoryUnclassified for every glyph, without GPOS cursive lookups no
// anchors, without post names synthetic "gidN" names.
//
// Source is safe for concurrent use. One Source corresponds to one
// variation instance; wrap each instance separately so cached shapes of
// distinct instances never collide.
type Source struct {
	font      *font.Font
	upem      uint16
	numGlyphs int

	classes classDef
	anchors map[collide.GlyphID][]geom.Point
	names   []string

	shapers shaperPool
}

// NewSource parses TTF/OTF font data. The data slice is retained.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	ld, err := ot.NewLoader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opentype: parsing font: %w", err)
	}
	fnt, err := font.NewFont(ld)
	if err != nil {
		return nil, fmt.Errorf("opentype: parsing font: %w", err)
	}

	s := &Source{
		font: fnt,
		upem: fnt.Upem(),
	}
	s.shapers.init()

	// Glyph count from maxp (a required table; zero means unknown and
	// disables the range check).
	if raw, err := ld.RawTable(ot.MustNewTag("maxp")); err == nil && len(raw) >= 6 {
		s.numGlyphs = int(binary.BigEndian.Uint16(raw[4:]))
	}

	// GDEF glyph classes.
	if raw, err := ld.RawTable(ot.MustNewTag("GDEF")); err == nil {
		if classes, err := parseGlyphClasses(raw); err == nil {
			s.classes = classes
		} else {
			collide.Logger().Warn("ignoring malformed GDEF table", "err", err)
		}
	}

	// GPOS cursive entry/exit anchors.
	if raw, err := ld.RawTable(ot.MustNewTag("GPOS")); err == nil {
		if anchors, err := parseCursiveAnchors(raw); err == nil {
			s.anchors = anchors
		} else {
			collide.Logger().Warn("ignoring malformed GPOS table", "err", err)
		}
	}

	// post glyph names.
	if raw, err := ld.RawTable(ot.MustNewTag("post")); err == nil {
		if names, err := parsePostNames(raw); err == nil {
			s.names = names
		} else {
			collide.Logger().Warn("ignoring malformed post table", "err", err)
		}
	}

	return s, nil
}

// UnitsPerEm implements collide.OutlineSource.
func (s *Source) UnitsPerEm() uint16 {
	return s.upem
}

// NumGlyphs returns the number of glyphs in the font.
func (s *Source) NumGlyphs() int {
	return s.numGlyphs
}

// GlyphOutline implements collide.OutlineSource. The returned path is
// in font units, one MoveTo-delimited contour per outline contour.
func (s *Source) GlyphOutline(gid collide.GlyphID) (*geom.Path, error) {
	if s.numGlyphs > 0 && int(gid) >= s.numGlyphs {
		return nil, &collide.GlyphNotFoundError{GID: gid}
	}
	// font.Face is not safe for concurrent use; it is a cheap wrapper
	// around the shared *font.Font, so build one per call.
	face := font.NewFace(s.font)
	data := face.GlyphData(font.GID(gid))
	outline, ok := data.(font.GlyphOutline)
	if !ok {
		// Bitmap or SVG glyph: nothing to intersect.
		return geom.NewPath(), nil
	}
	return convertOutline(outline), nil
}

// GlyphName implements collide.OutlineSource. Fonts without post names
// yield "gidN".
func (s *Source) GlyphName(gid collide.GlyphID) string {
	if int(gid) < len(s.names) && s.names[gid] != "" {
		return s.names[gid]
	}
	return fmt.Sprintf("gid%d", gid)
}

// GlyphID returns the glyph id carrying the given post name, if any.
func (s *Source) GlyphID(name string) (collide.GlyphID, bool) {
	for gid, n := range s.names {
		if n == name {
			return collide.GlyphID(gid), true
		}
	}
	return 0, false
}

// GlyphCategory implements collide.OutlineSource.
func (s *Source) GlyphCategory(gid collide.GlyphID) collide.Category {
	if s.classes == nil {
		return collide.CategoryUnclassified
	}
	return collide.Category(s.classes.lookup(uint16(gid)))
}

// CursiveAnchors implements collide.OutlineSource.
func (s *Source) CursiveAnchors(gid collide.GlyphID) []geom.Point {
	return s.anchors[gid]
}

// convertOutline turns a go-text glyph outline into a geom.Path.
// go-text emits absolute font-unit coordinates with the same segment
// vocabulary, so this is a straight re-tagging.
func convertOutline(o font.GlyphOutline) *geom.Path {
	p := geom.NewPath()
	for _, seg := range o.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			p.MoveTo(float64(seg.Args[0].X), float64(seg.Args[0].Y))
		case ot.SegmentOpLineTo:
			p.LineTo(float64(seg.Args[0].X), float64(seg.Args[0].Y))
		case ot.SegmentOpQuadTo:
			p.QuadTo(float64(seg.Args[0].X), float64(seg.Args[0].Y),
				float64(seg.Args[1].X), float64(seg.Args[1].Y))
		case ot.SegmentOpCubeTo:
			p.CubeTo(float64(seg.Args[0].X), float64(seg.Args[0].Y),
				float64(seg.Args[1].X), float64(seg.Args[1].Y),
				float64(seg.Args[2].X), float64(seg.Args[2].Y))
		}
	}
	return p
}
