package geom

import (
	"math"
	"testing"
)

func TestCurveIntersections_Lines(t *testing.T) {
	tests := []struct {
		name string
		a, b CubicBez
		want []Point
	}{
		{
			name: "crossing diagonals",
			a:    LineCubic(Pt(0, 0), Pt(10, 10)),
			b:    LineCubic(Pt(0, 10), Pt(10, 0)),
			want: []Point{Pt(5, 5)},
		},
		{
			name: "disjoint",
			a:    LineCubic(Pt(0, 0), Pt(10, 0)),
			b:    LineCubic(Pt(0, 5), Pt(10, 5)),
			want: nil,
		},
		{
			name: "parallel overlapping",
			a:    LineCubic(Pt(0, 0), Pt(10, 0)),
			b:    LineCubic(Pt(5, 0), Pt(15, 0)),
			want: nil,
		},
		{
			name: "shared endpoint",
			a:    LineCubic(Pt(0, 0), Pt(10, 0)),
			b:    LineCubic(Pt(10, 0), Pt(10, 10)),
			want: []Point{Pt(10, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurveIntersections(tt.a, tt.b, 0.1)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d intersections %v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if !pointsEqual(got[i], tt.want[i], 0.5) {
					t.Errorf("intersection[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCurveIntersections_CurveLine(t *testing.T) {
	// An arch crossing a horizontal line twice.
	arch := CubicBez{P0: Pt(0, 0), P1: Pt(20, 60), P2: Pt(60, 60), P3: Pt(80, 0)}
	line := LineCubic(Pt(-10, 20), Pt(90, 20))

	pts := CurveIntersections(arch, line, 0.1)
	if len(pts) != 2 {
		t.Fatalf("got %d intersections %v, want 2", len(pts), pts)
	}
	for _, pt := range pts {
		if math.Abs(pt.Y-20) > 0.5 {
			t.Errorf("intersection %v not on the line y=20", pt)
		}
	}
	if pts[0].X >= pts[1].X {
		t.Errorf("intersections %v not in deterministic left-to-right order", pts)
	}
}

func TestCurveIntersections_Deterministic(t *testing.T) {
	arch := CubicBez{P0: Pt(0, 0), P1: Pt(20, 60), P2: Pt(60, 60), P3: Pt(80, 0)}
	line := LineCubic(Pt(-10, 20), Pt(90, 20))

	first := CurveIntersections(arch, line, 0.1)
	for i := 0; i < 10; i++ {
		again := CurveIntersections(arch, line, 0.1)
		if len(again) != len(first) {
			t.Fatalf("run %d: got %d intersections, want %d", i, len(again), len(first))
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatalf("run %d: intersection[%d] = %v, want %v", i, j, again[j], first[j])
			}
		}
	}
}

func TestIntersectionArea(t *testing.T) {
	tests := []struct {
		name string
		a, b *Path
		want float64
		eps  float64
	}{
		{
			name: "half overlapping squares",
			a:    rectPath(0, 0, 100, 100),
			b:    rectPath(50, 0, 150, 100),
			want: 5000,
			eps:  100,
		},
		{
			name: "quarter overlap",
			a:    rectPath(0, 0, 100, 100),
			b:    rectPath(50, 50, 150, 150),
			want: 2500,
			eps:  100,
		},
		{
			name: "disjoint",
			a:    rectPath(0, 0, 100, 100),
			b:    rectPath(200, 0, 300, 100),
			want: 0,
			eps:  epsilon,
		},
		{
			name: "contained",
			a:    rectPath(0, 0, 100, 100),
			b:    rectPath(25, 25, 75, 75),
			want: 2500,
			eps:  100,
		},
		{
			name: "identical",
			a:    rectPath(0, 0, 100, 100),
			b:    rectPath(0, 0, 100, 100),
			want: 10000,
			eps:  200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntersectionArea(tt.a, tt.b, 1.0)
			if math.Abs(got-tt.want) > tt.eps {
				t.Errorf("IntersectionArea = %v, want %v (±%v)", got, tt.want, tt.eps)
			}
			// Symmetric in its arguments.
			swapped := IntersectionArea(tt.b, tt.a, 1.0)
			if math.Abs(got-swapped) > tt.eps {
				t.Errorf("IntersectionArea not symmetric: %v vs %v", got, swapped)
			}
		})
	}
}

func TestIntersectionArea_Circles(t *testing.T) {
	// Two unit-ish circles whose centers coincide: intersection equals
	// either area.
	a := circlePath(0, 0, 50)
	b := circlePath(0, 0, 50)
	want := math.Pi * 2500
	got := IntersectionArea(a, b, 1.0)
	if math.Abs(got-want) > want*0.02 {
		t.Errorf("IntersectionArea = %v, want ~%v", got, want)
	}
}

func TestMergeNearby(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(0.05, 0.05), Pt(10, 10), Pt(10.01, 10)}
	merged := mergeNearby(pts, 0.5)
	if len(merged) != 2 {
		t.Fatalf("got %d points %v, want 2", len(merged), merged)
	}
	if !pointsEqual(merged[0], Pt(0, 0), 0.1) || !pointsEqual(merged[1], Pt(10, 10), 0.1) {
		t.Errorf("merged = %v", merged)
	}
}
