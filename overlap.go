package collide

import (
	"sort"

	"github.com/glyphtools/collide/geom"
)

// intersectTolerance is the geometric tolerance of curve intersection
// tests, in font units. Outlines live on a 1000-2048 unit grid, so half
// a unit is well below anything visible.
const intersectTolerance = 0.5

// Overlaps determines the literal curve intersections between two
// positioned glyphs. Each pruning stage feeds the next: glyph bounding
// boxes, then contour pairs found by a sweep over both contour sets,
// then segment pairs within surviving contours, then exact curve/curve
// intersection. One Collision per intersecting contour pair is
// produced, carrying the first intersection point found.
//
// Overlaps has no rule awareness: it answers "do these outlines touch".
func Overlaps(a, b *PositionedGlyph) []Collision {
	if a.Empty() || b.Empty() {
		return nil
	}
	if !a.Bounds.Intersects(b.Bounds) {
		return nil
	}

	var collisions []Collision
	for _, pair := range sweepPathPairs(a.Paths, b.Paths) {
		p1 := a.Paths[pair.i]
		p2 := b.Paths[pair.j]
		if pt, ok := pathIntersection(p1.Outline, p2.Outline); ok {
			collisions = append(collisions, Collision{
				Glyph1: p1.Glyph,
				Glyph2: p2.Glyph,
				Index1: a.Index,
				Index2: b.Index,
				Path1:  p1,
				Path2:  p2,
				Point:  pt,
			})
		}
	}
	return collisions
}

// indexPair is a candidate (contour of a, contour of b) pair.
type indexPair struct {
	i, j int
}

// sweepPathPairs finds contour pairs with intersecting bounding boxes
// by sweeping both sets along the x axis instead of scanning every
// combination. The result is ordered by (i, j) so downstream output is
// deterministic.
func sweepPathPairs(a, b []*Path) []indexPair {
	order := make([]int, len(b))
	for j := range b {
		order[j] = j
	}
	sort.Slice(order, func(x, y int) bool {
		return b[order[x]].Bounds.Min.X < b[order[y]].Bounds.Min.X
	})

	var pairs []indexPair
	for i, pa := range a {
		for _, j := range order {
			pb := b[j]
			if pb.Bounds.Min.X > pa.Bounds.Max.X {
				break
			}
			if pa.Bounds.Intersects(pb.Bounds) {
				pairs = append(pairs, indexPair{i: i, j: j})
			}
		}
	}
	sort.Slice(pairs, func(x, y int) bool {
		if pairs[x].i != pairs[y].i {
			return pairs[x].i < pairs[y].i
		}
		return pairs[x].j < pairs[y].j
	})
	return pairs
}

// pathIntersection finds the first curve intersection of two contours
// in segment traversal order, applying the same bounding-box sweep at
// segment granularity.
func pathIntersection(p1, p2 *geom.Path) (geom.Point, bool) {
	curves1 := p1.Curves()
	curves2 := p2.Curves()

	boxes2 := make([]geom.Rect, len(curves2))
	order2 := make([]int, len(curves2))
	for j, c := range curves2 {
		boxes2[j] = c.ControlBox()
		order2[j] = j
	}
	sort.Slice(order2, func(x, y int) bool {
		return boxes2[order2[x]].Min.X < boxes2[order2[y]].Min.X
	})

	for _, c1 := range curves1 {
		box1 := c1.ControlBox()

		// Candidates in ascending segment order for a stable first point.
		var candidates []int
		for _, j := range order2 {
			if boxes2[j].Min.X > box1.Max.X {
				break
			}
			if box1.Intersects(boxes2[j]) {
				candidates = append(candidates, j)
			}
		}
		sort.Ints(candidates)

		for _, j := range candidates {
			if pts := geom.CurveIntersections(c1, curves2[j], intersectTolerance); len(pts) > 0 {
				return pts[0], true
			}
		}
	}
	return geom.Point{}, false
}
