package geom

import (
	"math"
	"sort"
)

// Curve and path intersection. Curve pairs are intersected by recursive
// bounding-box subdivision down to flat chords, which keeps the point
// order stable for a given pair of inputs: results always follow
// traversal order of the first operand.

// maxIntersectDepth caps subdivision. 2^24 subdivisions of a font-unit
// sized curve is far below any meaningful tolerance.
const maxIntersectDepth = 24

// CurveIntersections returns the intersection points of two cubic
// Bezier curves, to within tolerance. Points closer than the tolerance
// to one another are merged, keeping the first found.
func CurveIntersections(a, b CubicBez, tolerance float64) []Point {
	if tolerance <= 0 {
		tolerance = 0.1
	}
	var out []Point
	curveIntersectRec(a, b, tolerance*tolerance, 0, &out)
	return mergeNearby(out, tolerance*4)
}

func curveIntersectRec(a, b CubicBez, tolSq float64, depth int, out *[]Point) {
	if !a.ControlBox().Intersects(b.ControlBox()) {
		return
	}
	flatA := a.flatness() <= tolSq*16
	flatB := b.flatness() <= tolSq*16
	if depth >= maxIntersectDepth || (flatA && flatB) {
		if pt, ok := lineIntersection(a.P0, a.P3, b.P0, b.P3); ok {
			*out = append(*out, pt)
		}
		return
	}
	if !flatA && !flatB {
		a1, a2 := a.Subdivide()
		b1, b2 := b.Subdivide()
		curveIntersectRec(a1, b1, tolSq, depth+1, out)
		curveIntersectRec(a1, b2, tolSq, depth+1, out)
		curveIntersectRec(a2, b1, tolSq, depth+1, out)
		curveIntersectRec(a2, b2, tolSq, depth+1, out)
		return
	}
	if !flatA {
		a1, a2 := a.Subdivide()
		curveIntersectRec(a1, b, tolSq, depth+1, out)
		curveIntersectRec(a2, b, tolSq, depth+1, out)
		return
	}
	b1, b2 := b.Subdivide()
	curveIntersectRec(a, b1, tolSq, depth+1, out)
	curveIntersectRec(a, b2, tolSq, depth+1, out)
}

// lineIntersection intersects two line segments. Parallel segments
// report no intersection; subdivision resolves tangential contact.
func lineIntersection(a0, a1, b0, b1 Point) (Point, bool) {
	d1 := a1.Sub(a0)
	d2 := b1.Sub(b0)
	denom := d1.Cross(d2)
	if math.Abs(denom) < 1e-12 {
		return Point{}, false
	}
	w := b0.Sub(a0)
	t := w.Cross(d2) / denom
	u := w.Cross(d1) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	return a0.Add(d1.Mul(t)), true
}

// mergeNearby collapses points within dist of an already kept point.
func mergeNearby(pts []Point, dist float64) []Point {
	if len(pts) < 2 {
		return pts
	}
	distSq := dist * dist
	kept := pts[:1]
	for _, p := range pts[1:] {
		close := false
		for _, q := range kept {
			if p.Sub(q).LengthSquared() <= distSq {
				close = true
				break
			}
		}
		if !close {
			kept = append(kept, p)
		}
	}
	return kept
}

// IntersectionArea returns the area of the overlap region of two closed
// paths, computed on flattened outlines by scanline integration under
// the non-zero fill rule. tolerance controls both the flattening error
// and the scanline spacing.
func IntersectionArea(p1, p2 *Path, tolerance float64) float64 {
	if tolerance <= 0 {
		tolerance = 1.0
	}
	overlap := p1.Bounds().Intersect(p2.Bounds())
	if overlap.Empty() {
		return 0
	}

	edges1 := polygonEdges(p1.Flatten(tolerance))
	edges2 := polygonEdges(p2.Flatten(tolerance))
	if len(edges1) == 0 || len(edges2) == 0 {
		return 0
	}

	rows := int(math.Ceil(overlap.Height() / tolerance))
	if rows < 32 {
		rows = 32
	}
	if rows > 1024 {
		rows = 1024
	}
	dy := overlap.Height() / float64(rows)

	var area float64
	for i := 0; i < rows; i++ {
		y := overlap.Min.Y + (float64(i)+0.5)*dy
		area += overlapWidth(insideSpans(edges1, y), insideSpans(edges2, y)) * dy
	}
	return area
}

type polyEdge struct {
	p0, p1 Point
}

type span struct {
	x0, x1 float64
}

func polygonEdges(polys [][]Point) []polyEdge {
	var edges []polyEdge
	for _, poly := range polys {
		n := len(poly)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			edges = append(edges, polyEdge{p0: poly[i], p1: poly[(i+1)%n]})
		}
	}
	return edges
}

type crossing struct {
	x   float64
	dir int
}

// insideSpans returns the x-intervals at height y whose winding number
// is non-zero, using the same crossing convention as the winding test.
func insideSpans(edges []polyEdge, y float64) []span {
	var crossings []crossing
	for _, e := range edges {
		switch {
		case e.p0.Y <= y && e.p1.Y > y:
			t := (y - e.p0.Y) / (e.p1.Y - e.p0.Y)
			crossings = append(crossings, crossing{x: e.p0.X + t*(e.p1.X-e.p0.X), dir: 1})
		case e.p1.Y <= y && e.p0.Y > y:
			t := (y - e.p0.Y) / (e.p1.Y - e.p0.Y)
			crossings = append(crossings, crossing{x: e.p0.X + t*(e.p1.X-e.p0.X), dir: -1})
		}
	}
	sort.Slice(crossings, func(i, j int) bool { return crossings[i].x < crossings[j].x })

	var spans []span
	winding := 0
	var start float64
	for _, c := range crossings {
		was := winding
		winding += c.dir
		if was == 0 && winding != 0 {
			start = c.x
		} else if was != 0 && winding == 0 {
			spans = append(spans, span{x0: start, x1: c.x})
		}
	}
	return spans
}

// overlapWidth sums the widths of the pairwise intersections of two
// sorted span lists.
func overlapWidth(a, b []span) float64 {
	var width float64
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		lo := math.Max(a[i].x0, b[j].x0)
		hi := math.Min(a[i].x1, b[j].x1)
		if hi > lo {
			width += hi - lo
		}
		if a[i].x1 < b[j].x1 {
			i++
		} else {
			j++
		}
	}
	return width
}
