package collide

import (
	"fmt"
	"strings"

	"github.com/glyphtools/collide/geom"
)

// svgPalette is the rotating fill palette for run glyphs.
var svgPalette = []string{"green", "red", "purple", "blue", "yellow"}

// RenderSVG renders a positioned run as an SVG document, with each
// glyph filled from a rotating palette and every collision marked: the
// intersection region of the two colliding contours is filled black,
// by clipping one contour against the other. attribs is inserted
// verbatim into the <svg> element (e.g. `width="500"`); pass "" for
// none.
//
// The viewBox spans the union of all glyph bounds. Glyph outlines use
// font-unit y-up coordinates, so the y axis is flipped for screen
// display.
func RenderSVG(glyphs []*PositionedGlyph, collisions []Collision, attribs string) string {
	var b strings.Builder

	bounds := unionBounds(glyphs)
	if attribs != "" {
		attribs = " " + attribs
	}
	fmt.Fprintf(&b, "<svg%s viewBox=\"%g %g %g %g\">", attribs,
		bounds.Min.X, -bounds.Max.Y, bounds.Width(), bounds.Height())
	b.WriteString("<g transform=\"scale(1 -1)\">")

	for i, g := range glyphs {
		fill := svgPalette[i%len(svgPalette)]
		for _, p := range g.Paths {
			fmt.Fprintf(&b, "<path d=\"%s\" fill=\"%s\"/>", p.Outline.SVGPath(), fill)
		}
	}
	for i, col := range collisions {
		fmt.Fprintf(&b, "<clipPath id=\"overlap%d\"><path d=\"%s\"/></clipPath>",
			i, col.Path1.Outline.SVGPath())
		fmt.Fprintf(&b, "<path d=\"%s\" clip-path=\"url(#overlap%d)\" fill=\"black\"/>",
			col.Path2.Outline.SVGPath(), i)
	}

	b.WriteString("</g></svg>\n")
	return b.String()
}

// unionBounds returns the union of all non-empty glyph bounds.
func unionBounds(glyphs []*PositionedGlyph) geom.Rect {
	var bounds geom.Rect
	first := true
	for _, g := range glyphs {
		if g.Empty() {
			continue
		}
		if first {
			bounds = g.Bounds
			first = false
		} else {
			bounds = bounds.Union(g.Bounds)
		}
	}
	return bounds
}
