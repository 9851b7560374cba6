// Package collide detects unwanted overlaps between glyph outlines in
// a shaped run of text. It is a quality-assurance tool for font
// engineers, aimed at scripts with complex mark attachment or cursive
// joining (Arabic joining behavior, stacked Vietnamese diacritics, and
// the like).
//
// A Detector caches each glyph's outline once per font, positions the
// cached outlines at the pen offsets a shaping engine produced, and
// tests selected glyph pairs for literal curve intersections. A rule
// configuration decides which pairs are worth testing and which
// detected overlaps count as defects; cursive connector joins and
// negligible overlap areas can be exempted.
//
// Shaping and font parsing are pluggable via the Shaper and
// OutlineSource interfaces. The opentype sub-package provides the
// standard implementation backed by go-text/typesetting.
//
//	src, _ := opentype.NewSource(fontData)
//	det := collide.New(src,
//	    collide.WithShaper(src),
//	    collide.WithRules(collide.Rules{Faraway: true, Bases: true}))
//	collisions, err := det.Detect("اتّب")
package collide
