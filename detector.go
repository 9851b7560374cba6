package collide

import "github.com/glyphtools/collide/geom"

// Detector owns the per-font outline cache and runs the collision
// pipeline: shape text (or accept a pre-shaped run), position each
// glyph's cached outline in run space, and report rule violations.
//
// A Detector is safe for concurrent use; the cache uses a read-mostly
// lock and everything else is immutable after New. For single-threaded
// batch work, one detector per goroutine avoids even that lock traffic.
type Detector struct {
	src    OutlineSource
	shaper Shaper
	rules  Rules
	scale  float64
	cache  *shapeCache
}

// New creates a Detector reading outlines from src.
// With no options it uses DefaultRules, no shaper and no scaling.
func New(src OutlineSource, opts ...Option) *Detector {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Detector{
		src:    src,
		shaper: cfg.shaper,
		rules:  cfg.rules,
		scale:  cfg.scale,
		cache:  newShapeCache(),
	}
}

// Rules returns the detector's rule configuration.
func (d *Detector) Rules() Rules {
	return d.rules
}

// Shape returns the cached position-independent shape of a glyph,
// building it on first use.
func (d *Detector) Shape(gid GlyphID) (*GlyphShape, error) {
	return d.cache.getOrBuild(shapeKey{src: d.src, gid: gid}, func() (*GlyphShape, error) {
		Logger().Debug("building glyph shape", "gid", gid)
		return buildShape(d.src, gid, d.scale)
	})
}

// Detect shapes text with the configured shaper and reports all rule
// violations in the run. It fails with ErrShapingUnavailable when the
// detector has no shaper; use DetectRun with a pre-shaped run instead.
func (d *Detector) Detect(text string) ([]Collision, error) {
	if d.shaper == nil {
		return nil, ErrShapingUnavailable
	}
	run, err := d.shaper.Shape(text)
	if err != nil {
		return nil, err
	}
	return d.DetectRun(run)
}

// DetectRun reports all rule violations in a pre-shaped run. Callers
// that already shaped the text (e.g. when sweeping variation instances)
// use this to avoid re-shaping.
func (d *Detector) DetectRun(run ShapedRun) ([]Collision, error) {
	glyphs, err := d.PositionRun(run)
	if err != nil {
		return nil, err
	}
	return d.DetectPositioned(glyphs), nil
}

// DetectPositioned reports all rule violations among already-positioned
// glyphs. Useful when the same positioned run is also wanted for
// rendering.
func (d *Detector) DetectPositioned(glyphs []*PositionedGlyph) []Collision {
	return detect(glyphs, d.rules)
}

// PositionRun fixes every glyph of a shaped run in run space: the pen
// advances by each glyph's XAdvance, and each glyph is additionally
// displaced by its own XOffset/YOffset. For RTL runs the sequence is
// reversed afterwards so indices follow visual order, which is what
// adjacency-based rules are defined over.
func (d *Detector) PositionRun(run ShapedRun) ([]*PositionedGlyph, error) {
	glyphs := make([]*PositionedGlyph, 0, len(run.Glyphs))
	var pen float64
	for _, sg := range run.Glyphs {
		pg, err := d.Position(sg.GID, geom.Pt(pen+sg.XOffset, sg.YOffset))
		if err != nil {
			return nil, err
		}
		pg.Cluster = sg.Cluster
		glyphs = append(glyphs, pg)
		pen += sg.XAdvance
	}

	if run.Direction == DirectionRTL {
		for i, j := 0, len(glyphs)-1; i < j; i, j = i+1, j-1 {
			glyphs[i], glyphs[j] = glyphs[j], glyphs[i]
		}
	}
	for i, g := range glyphs {
		g.Index = i
	}
	return glyphs, nil
}

// HasCollisions reports whether the text produces at least one
// collision. Derived from the exhaustive Detect result.
func (d *Detector) HasCollisions(text string) (bool, error) {
	collisions, err := d.Detect(text)
	if err != nil {
		return false, err
	}
	return len(collisions) > 0, nil
}

// CachedShapes returns the number of glyph shapes currently cached.
func (d *Detector) CachedShapes() int {
	return d.cache.len()
}
