package collide

import (
	"math"

	"github.com/glyphtools/collide/geom"
)

// areaTolerance is the flattening tolerance of intersection-area
// measurements, in font units.
const areaTolerance = 1.0

// detect runs the rule engine over a glyph sequence already in visual
// order. Every ordered pair i < j is offered to the enabled rules;
// overlap testing only runs for claimed pairs, which is the primary
// cost control since curve intersection is the expensive path. All
// reportable collisions are returned, not merely the first.
func detect(glyphs []*PositionedGlyph, rules Rules) []Collision {
	var collisions []Collision
	tested := 0
	for i := 0; i < len(glyphs); i++ {
		for j := i + 1; j < len(glyphs); j++ {
			if !shouldTest(glyphs, i, j, rules) {
				continue
			}
			tested++
			for _, col := range Overlaps(glyphs[i], glyphs[j]) {
				if shouldReport(glyphs, i, j, col, rules) {
					collisions = append(collisions, col)
				}
			}
		}
	}
	Logger().Debug("collision pass done",
		"glyphs", len(glyphs), "pairs_tested", tested, "collisions", len(collisions))
	return collisions
}

// shouldTest decides whether a pair must be overlap-tested: a pair is
// selected when any enabled rule claims it. Base/base pairs are special
// cased: with Bases off they are skipped entirely, regardless of any
// other rule.
func shouldTest(glyphs []*PositionedGlyph, i, j int, rules Rules) bool {
	gi, gj := glyphs[i], glyphs[j]
	if gi.Empty() || gj.Empty() {
		return false
	}

	iMark := gi.Category().IsMark()
	jMark := gj.Category().IsMark()

	if !iMark && !jMark {
		return rules.Bases
	}
	if rules.Marks && iMark && jMark {
		return true
	}
	if rules.Faraway && j >= firstBeyondAdjacent(glyphs, i) {
		return true
	}
	if rules.AdjacentClusters && absInt(gj.Cluster-gi.Cluster) < 2 {
		return true
	}
	return false
}

// firstBeyondAdjacent returns the first index past glyph i's adjacency
// unit: the glyph itself, its directly attached marks, and the very
// next glyph. Attached marks are skipped when finding the next
// neighbor, so a heavily marked base still has exactly one adjacent
// base.
func firstBeyondAdjacent(glyphs []*PositionedGlyph, i int) int {
	j := i + 1
	for j < len(glyphs) && glyphs[j].Category().IsMark() {
		j++
	}
	return j + 1
}

// shouldReport applies the reportability filters to one raw collision.
//
// The cursive exemption works at contour granularity: only overlaps
// between the specific anchored contours are excused, and only when no
// base glyph sits between the pair in visual order. An intervening base
// means the two anchored glyphs are not actually joined to each other,
// so their overlap is a real defect.
func shouldReport(glyphs []*PositionedGlyph, i, j int, col Collision, rules Rules) bool {
	if rules.Cursive && col.Path1.HasAnchor && col.Path2.HasAnchor {
		if !interveningBase(glyphs, i, j) {
			return false
		}
	}
	if rules.Area > 0 {
		ia := geom.IntersectionArea(col.Path1.Outline, col.Path2.Outline, areaTolerance)
		a1 := math.Abs(col.Path1.Outline.Area())
		a2 := math.Abs(col.Path2.Outline.Area())
		return ia > a1*rules.Area || ia > a2*rules.Area
	}
	return true
}

// interveningBase reports whether any glyph strictly between i and j is
// a non-mark glyph.
func interveningBase(glyphs []*PositionedGlyph, i, j int) bool {
	for k := i + 1; k < j; k++ {
		if !glyphs[k].Category().IsMark() {
			return true
		}
	}
	return false
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
