package geom

import "math"

// Bezier curve types used to decompose glyph contours for intersection
// testing. Modeled after kurbo, adapted for Go idioms.

// Line represents a line segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

// Eval evaluates the line at parameter t in [0, 1].
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// BoundingBox returns the axis-aligned bounding box of the line.
func (l Line) BoundingBox() Rect {
	return NewRect(l.P0, l.P1)
}

// Length returns the length of the line segment.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// QuadBez represents a quadratic Bezier curve.
// P0 is the start point, P1 the control point, P2 the end point.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at parameter t in [0, 1].
func (q QuadBez) Eval(t float64) Point {
	mt := 1 - t
	x := mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X
	y := mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y
	return Point{X: x, Y: y}
}

// Raise converts the quadratic to an equivalent cubic Bezier.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		P0: q.P0,
		P1: q.P0.Lerp(q.P1, 2.0/3.0),
		P2: q.P2.Lerp(q.P1, 2.0/3.0),
		P3: q.P2,
	}
}

// CubicBez represents a cubic Bezier curve with control points P0..P3.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// LineCubic returns the cubic Bezier equivalent of a line segment.
func LineCubic(p0, p1 Point) CubicBez {
	return CubicBez{
		P0: p0,
		P1: p0.Lerp(p1, 1.0/3.0),
		P2: p0.Lerp(p1, 2.0/3.0),
		P3: p1,
	}
}

// Eval evaluates the curve at parameter t in [0, 1].
func (c CubicBez) Eval(t float64) Point {
	mt := 1 - t
	mt2 := mt * mt
	t2 := t * t
	x := mt2*mt*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t2*t*c.P3.X
	y := mt2*mt*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t2*t*c.P3.Y
	return Point{X: x, Y: y}
}

// Subdivide splits the curve at t=0.5 using de Casteljau's algorithm.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, 0.5)
	p12 := c.P1.Lerp(c.P2, 0.5)
	p23 := c.P2.Lerp(c.P3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)
	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// ControlBox returns the bounding box of the control polygon.
// It always encloses the curve, though not tightly.
func (c CubicBez) ControlBox() Rect {
	return NewRect(c.P0, c.P1).expand(c.P2).expand(c.P3)
}

// Extrema returns the parameter values in (0, 1) where the derivative
// of x(t) or y(t) vanishes. Used to compute tight bounding boxes.
func (c CubicBez) Extrema() []float64 {
	var out []float64
	collect := func(p0, p1, p2, p3 float64) {
		// Derivative is a quadratic: a*t^2 + b*t + c.
		a := 3 * (-p0 + 3*p1 - 3*p2 + p3)
		b := 6 * (p0 - 2*p1 + p2)
		cc := 3 * (p1 - p0)
		if math.Abs(a) < 1e-12 {
			if math.Abs(b) > 1e-12 {
				t := -cc / b
				if t > 0 && t < 1 {
					out = append(out, t)
				}
			}
			return
		}
		disc := b*b - 4*a*cc
		if disc < 0 {
			return
		}
		sq := math.Sqrt(disc)
		for _, t := range []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)} {
			if t > 0 && t < 1 {
				out = append(out, t)
			}
		}
	}
	collect(c.P0.X, c.P1.X, c.P2.X, c.P3.X)
	collect(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)
	return out
}

// BoundingBox returns the tight axis-aligned bounding box of the curve,
// using derivative extrema rather than the control polygon.
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRect(c.P0, c.P3)
	for _, t := range c.Extrema() {
		bbox = bbox.expand(c.Eval(t))
	}
	return bbox
}

// flatness returns the maximum squared distance metric of the control
// points from the chord, per the standard cubic flatness test.
func (c CubicBez) flatness() float64 {
	ux := 3*c.P1.X - 2*c.P0.X - c.P3.X
	uy := 3*c.P1.Y - 2*c.P0.Y - c.P3.Y
	vx := 3*c.P2.X - c.P0.X - 2*c.P3.X
	vy := 3*c.P2.Y - c.P0.Y - 2*c.P3.Y
	return math.Max(ux*ux+uy*uy, vx*vx+vy*vy)
}
