package geom

import (
	"fmt"
	"strings"
)

// SegmentOp is the type of path segment operation.
type SegmentOp uint8

const (
	// SegmentOpMoveTo starts a new contour at the target point.
	SegmentOpMoveTo SegmentOp = iota

	// SegmentOpLineTo draws a line to the target point.
	SegmentOpLineTo

	// SegmentOpQuadTo draws a quadratic Bezier curve.
	SegmentOpQuadTo

	// SegmentOpCubeTo draws a cubic Bezier curve.
	SegmentOpCubeTo

	// SegmentOpClose closes the current contour.
	SegmentOpClose
)

// String returns a string representation of the operation.
func (op SegmentOp) String() string {
	switch op {
	case SegmentOpMoveTo:
		return "MoveTo"
	case SegmentOpLineTo:
		return "LineTo"
	case SegmentOpQuadTo:
		return "QuadTo"
	case SegmentOpCubeTo:
		return "CubeTo"
	case SegmentOpClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// Segment is a single path segment with absolute coordinates.
//   - MoveTo, LineTo: Args[0] is the target point
//   - QuadTo: Args[0] is the control point, Args[1] the target
//   - CubeTo: Args[0], Args[1] are controls, Args[2] the target
//   - Close: no arguments
type Segment struct {
	Op   SegmentOp
	Args [3]Point
}

// Path is a sequence of segments describing one or more contours.
// Contours are treated as closed: an implicit closing line is assumed
// from the last point back to the contour start.
type Path struct {
	segs []Segment
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{segs: make([]Segment, 0, 16)}
}

// MoveTo starts a new contour at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.segs = append(p.segs, Segment{Op: SegmentOpMoveTo, Args: [3]Point{{X: x, Y: y}}})
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.segs = append(p.segs, Segment{Op: SegmentOpLineTo, Args: [3]Point{{X: x, Y: y}}})
}

// QuadTo draws a quadratic Bezier through control (cx, cy) to (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.segs = append(p.segs, Segment{Op: SegmentOpQuadTo, Args: [3]Point{{X: cx, Y: cy}, {X: x, Y: y}}})
}

// CubeTo draws a cubic Bezier with controls (c1x, c1y), (c2x, c2y) to (x, y).
func (p *Path) CubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.segs = append(p.segs, Segment{Op: SegmentOpCubeTo, Args: [3]Point{{X: c1x, Y: c1y}, {X: c2x, Y: c2y}, {X: x, Y: y}}})
}

// Close closes the current contour.
func (p *Path) Close() {
	p.segs = append(p.segs, Segment{Op: SegmentOpClose})
}

// Segments returns the raw segment list.
func (p *Path) Segments() []Segment {
	return p.segs
}

// Empty reports whether the path has no drawing segments.
func (p *Path) Empty() bool {
	for _, s := range p.segs {
		if s.Op != SegmentOpMoveTo && s.Op != SegmentOpClose {
			return false
		}
	}
	return true
}

// argCount returns the number of points used by a segment op.
func argCount(op SegmentOp) int {
	switch op {
	case SegmentOpMoveTo, SegmentOpLineTo:
		return 1
	case SegmentOpQuadTo:
		return 2
	case SegmentOpCubeTo:
		return 3
	default:
		return 0
	}
}

// mapPoints returns a new path with fn applied to every coordinate.
func (p *Path) mapPoints(fn func(Point) Point) *Path {
	out := &Path{segs: make([]Segment, len(p.segs))}
	for i, s := range p.segs {
		ns := Segment{Op: s.Op}
		for j := 0; j < argCount(s.Op); j++ {
			ns.Args[j] = fn(s.Args[j])
		}
		out.segs[i] = ns
	}
	return out
}

// Translate returns a new path rigidly shifted by (dx, dy).
func (p *Path) Translate(dx, dy float64) *Path {
	return p.mapPoints(func(pt Point) Point {
		return Point{X: pt.X + dx, Y: pt.Y + dy}
	})
}

// ScaleAbout returns a new path uniformly scaled by factor about center,
// so that only relative size changes and the apparent center is kept.
func (p *Path) ScaleAbout(factor float64, center Point) *Path {
	return p.mapPoints(func(pt Point) Point {
		return Point{
			X: center.X + (pt.X-center.X)*factor,
			Y: center.Y + (pt.Y-center.Y)*factor,
		}
	})
}

// Contours splits the path into one path per contour.
func (p *Path) Contours() []*Path {
	var out []*Path
	var cur *Path
	for _, s := range p.segs {
		if s.Op == SegmentOpMoveTo {
			if cur != nil {
				out = append(out, cur)
			}
			cur = NewPath()
		}
		if cur == nil {
			// Drawing op before any MoveTo; start an implicit contour.
			cur = NewPath()
		}
		cur.segs = append(cur.segs, s)
	}
	if cur != nil {
		out = append(out, cur)
	}
	return out
}

// Curves decomposes the path into cubic Bezier curves, one per drawing
// segment plus an implicit closing line for each contour. Lines and
// quadratics are degree-raised so callers deal with a single curve type.
func (p *Path) Curves() []CubicBez {
	out := make([]CubicBez, 0, len(p.segs))
	var current, start Point
	started := false
	closeContour := func() {
		if started && current != start {
			out = append(out, LineCubic(current, start))
		}
	}
	for _, s := range p.segs {
		switch s.Op {
		case SegmentOpMoveTo:
			closeContour()
			start = s.Args[0]
			current = s.Args[0]
			started = true
		case SegmentOpLineTo:
			out = append(out, LineCubic(current, s.Args[0]))
			current = s.Args[0]
		case SegmentOpQuadTo:
			out = append(out, QuadBez{P0: current, P1: s.Args[0], P2: s.Args[1]}.Raise())
			current = s.Args[1]
		case SegmentOpCubeTo:
			out = append(out, CubicBez{P0: current, P1: s.Args[0], P2: s.Args[1], P3: s.Args[2]})
			current = s.Args[2]
		case SegmentOpClose:
			closeContour()
			current = start
		}
	}
	closeContour()
	return out
}

// Bounds returns the tight bounding box of the path, using curve
// extrema rather than control points. Empty paths yield the zero Rect.
func (p *Path) Bounds() Rect {
	curves := p.Curves()
	if len(curves) == 0 {
		return Rect{}
	}
	bbox := curves[0].BoundingBox()
	for _, c := range curves[1:] {
		bbox = bbox.Union(c.BoundingBox())
	}
	return bbox
}

// ControlLength returns the total length of the control polygons of all
// drawing segments. It is an upper bound on arc length and is zero
// exactly when the path has no extent, which makes it a cheap
// degenerate-contour test.
func (p *Path) ControlLength() float64 {
	var length float64
	for _, c := range p.Curves() {
		length += c.P0.Distance(c.P1) + c.P1.Distance(c.P2) + c.P2.Distance(c.P3)
	}
	return length
}

// Area returns the signed area enclosed by the path, via Green's
// theorem applied to each cubic segment. Positive for clockwise
// contours in a y-up coordinate system.
func (p *Path) Area() float64 {
	var area float64
	for _, c := range p.Curves() {
		area += cubicArea(c)
	}
	return area
}

// cubicArea is the x*dy integral of a single cubic Bezier segment.
func cubicArea(c CubicBez) float64 {
	return (c.P0.X*(6*c.P1.Y+3*c.P2.Y+c.P3.Y) +
		3*c.P1.X*(-2*c.P0.Y+c.P2.Y+c.P3.Y) +
		3*c.P2.X*(-c.P0.Y-c.P1.Y+2*c.P3.Y) +
		c.P3.X*(-c.P0.Y-3*c.P1.Y-6*c.P2.Y)) / 20.0
}

// Winding returns the winding number of pt relative to the path.
// 0 means outside; non-zero means inside under the non-zero fill rule.
func (p *Path) Winding(pt Point) int {
	var winding int
	for _, c := range p.Curves() {
		winding += cubicWinding(c, pt)
	}
	return winding
}

// Contains tests if a point is inside the path (non-zero fill rule).
func (p *Path) Contains(pt Point) bool {
	return p.Winding(pt) != 0
}

// windingFlatTolerance bounds the flattening error of the winding test,
// in path units. Glyph outlines are in font units, so sub-unit accuracy
// is ample.
const windingFlatTolerance = 0.1

func cubicWinding(c CubicBez, pt Point) int {
	box := c.ControlBox()
	if pt.Y < box.Min.Y || pt.Y > box.Max.Y || pt.X > box.Max.X {
		return 0
	}
	if c.flatness() <= windingFlatTolerance*windingFlatTolerance*16 {
		return lineWinding(c.P0, c.P3, pt)
	}
	c1, c2 := c.Subdivide()
	return cubicWinding(c1, pt) + cubicWinding(c2, pt)
}

// lineWinding computes the winding contribution of one line segment
// using a horizontal ray to the right of pt.
func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft is positive if pt lies left of the directed line p0->p1.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

// Flatten approximates the path with one closed polygon per contour.
// tolerance is the maximum distance from the true curve.
func (p *Path) Flatten(tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = 0.1
	}
	tolSq := tolerance * tolerance
	var polys [][]Point
	for _, contour := range p.Contours() {
		curves := contour.Curves()
		if len(curves) == 0 {
			continue
		}
		poly := []Point{curves[0].P0}
		for _, c := range curves {
			flattenCubic(c, tolSq, &poly)
		}
		polys = append(polys, poly)
	}
	return polys
}

func flattenCubic(c CubicBez, tolSq float64, out *[]Point) {
	if c.flatness() <= tolSq*16 {
		*out = append(*out, c.P3)
		return
	}
	c1, c2 := c.Subdivide()
	flattenCubic(c1, tolSq, out)
	flattenCubic(c2, tolSq, out)
}

// SVGPath renders the path as an SVG path data string.
func (p *Path) SVGPath() string {
	var b strings.Builder
	for _, s := range p.segs {
		switch s.Op {
		case SegmentOpMoveTo:
			fmt.Fprintf(&b, "M%g %g", s.Args[0].X, s.Args[0].Y)
		case SegmentOpLineTo:
			fmt.Fprintf(&b, "L%g %g", s.Args[0].X, s.Args[0].Y)
		case SegmentOpQuadTo:
			fmt.Fprintf(&b, "Q%g %g %g %g", s.Args[0].X, s.Args[0].Y, s.Args[1].X, s.Args[1].Y)
		case SegmentOpCubeTo:
			fmt.Fprintf(&b, "C%g %g %g %g %g %g",
				s.Args[0].X, s.Args[0].Y, s.Args[1].X, s.Args[1].Y, s.Args[2].X, s.Args[2].Y)
		case SegmentOpClose:
			b.WriteString("Z")
		}
	}
	return b.String()
}
