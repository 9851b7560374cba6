package collide

import (
	"errors"
	"testing"

	"github.com/glyphtools/collide/geom"
)

// twoSquareFont has a single 500-unit square base glyph.
func twoSquareFont() *fakeFont {
	font := newFakeFont()
	font.add(1, "box", square(500))
	return font
}

// runOf builds an LTR run of glyphs with uniform advance and one
// cluster per glyph.
func runOf(advance float64, gids ...GlyphID) ShapedRun {
	run := ShapedRun{Direction: DirectionLTR}
	for i, gid := range gids {
		run.Glyphs = append(run.Glyphs, ShapedGlyph{GID: gid, Cluster: i, XAdvance: advance})
	}
	return run
}

func TestDetector_OverlappingSquaresCollide(t *testing.T) {
	det := New(twoSquareFont())

	collisions, err := det.DetectRun(runOf(400, 1, 1))
	if err != nil {
		t.Fatal(err)
	}
	if len(collisions) != 1 {
		t.Fatalf("got %d collisions, want 1", len(collisions))
	}
	c := collisions[0]
	if c.Glyph1 != "box" || c.Glyph2 != "box" {
		t.Errorf("collision names = %q, %q, want box, box", c.Glyph1, c.Glyph2)
	}
	if c.Index1 != 0 || c.Index2 != 1 {
		t.Errorf("collision indices = %d, %d, want 0, 1", c.Index1, c.Index2)
	}
}

func TestDetector_SeparatedSquaresDoNotCollide(t *testing.T) {
	det := New(twoSquareFont())

	collisions, err := det.DetectRun(runOf(514, 1, 1))
	if err != nil {
		t.Fatal(err)
	}
	if len(collisions) != 0 {
		t.Errorf("got %d collisions, want 0: %v", len(collisions), collisions)
	}
}

func TestDetector_BasesOffSuppressesBasePairs(t *testing.T) {
	det := New(twoSquareFont(), WithRules(Rules{Bases: false}))

	collisions, err := det.DetectRun(runOf(400, 1, 1))
	if err != nil {
		t.Fatal(err)
	}
	if len(collisions) != 0 {
		t.Errorf("got %d collisions with bases=false, want 0", len(collisions))
	}
}

func TestDetector_BasesOffLeavesMarkPairsAlone(t *testing.T) {
	// Disabling base pairs must not disturb the other rules: a run with
	// both a base/base and a mark/mark overlap keeps exactly the
	// mark/mark collision when only marks are enabled.
	font := newFakeFont()
	font.add(1, "base", square(500))
	font.add(2, "mark", markSquare(100))

	run := ShapedRun{Glyphs: []ShapedGlyph{
		{GID: 1, Cluster: 0, XAdvance: 400},
		{GID: 2, Cluster: 0, XOffset: -150, YOffset: 520},
		{GID: 2, Cluster: 0, XOffset: -100, YOffset: 560},
		{GID: 1, Cluster: 1, XAdvance: 400},
	}}

	det := New(font, WithRules(Rules{Bases: true, Marks: true}))
	collisions, err := det.DetectRun(run)
	if err != nil {
		t.Fatal(err)
	}
	if len(collisions) != 2 {
		t.Fatalf("bases on: got %d collisions, want 2 (base/base and mark/mark): %v",
			len(collisions), collisions)
	}

	det = New(font, WithRules(Rules{Bases: false, Marks: true}))
	collisions, err = det.DetectRun(run)
	if err != nil {
		t.Fatal(err)
	}
	if len(collisions) != 1 {
		t.Fatalf("bases off: got %d collisions, want 1: %v", len(collisions), collisions)
	}
	if collisions[0].Glyph1 != "mark" || collisions[0].Glyph2 != "mark" {
		t.Errorf("surviving collision = %s/%s, want mark/mark",
			collisions[0].Glyph1, collisions[0].Glyph2)
	}
}

func TestDetector_ContainedContoursDoNotCollide(t *testing.T) {
	// A small glyph entirely inside a wide one shares no outline
	// crossing, so the literal intersection test finds nothing.
	font := newFakeFont()
	font.add(1, "wide", square(500))
	font.add(2, "tiny", square(50))

	det := New(font)
	run := ShapedRun{Glyphs: []ShapedGlyph{
		{GID: 1, Cluster: 0, XAdvance: 200},
		{GID: 2, Cluster: 1, XOffset: 25, YOffset: 100, XAdvance: 300},
	}}
	collisions, err := det.DetectRun(run)
	if err != nil {
		t.Fatal(err)
	}
	if len(collisions) != 0 {
		t.Errorf("got %d collisions for nested contours, want 0", len(collisions))
	}
}

func TestDetector_DetectRequiresShaper(t *testing.T) {
	det := New(twoSquareFont())
	_, err := det.Detect("abc")
	if !errors.Is(err, ErrShapingUnavailable) {
		t.Errorf("Detect err = %v, want ErrShapingUnavailable", err)
	}
}

func TestDetector_DetectWithShaper(t *testing.T) {
	shaper := &fakeShaper{run: runOf(400, 1, 1)}
	det := New(twoSquareFont(), WithShaper(shaper))

	collisions, err := det.Detect("xx")
	if err != nil {
		t.Fatal(err)
	}
	if len(collisions) != 1 {
		t.Errorf("got %d collisions, want 1", len(collisions))
	}

	has, err := det.HasCollisions("xx")
	if err != nil {
		t.Fatal(err)
	}
	if !has {
		t.Error("HasCollisions = false, want true")
	}
}

func TestDetector_EmptyAndTinyRuns(t *testing.T) {
	font := twoSquareFont()
	font.add(2, "space", fakeGlyph{category: CategoryBase})
	det := New(font)

	for _, tt := range []struct {
		name string
		run  ShapedRun
	}{
		{name: "zero glyphs", run: ShapedRun{}},
		{name: "one glyph", run: runOf(500, 1)},
		{name: "empty glyph over base", run: runOf(0, 1, 2)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			collisions, err := det.DetectRun(tt.run)
			if err != nil {
				t.Fatal(err)
			}
			if len(collisions) != 0 {
				t.Errorf("got %d collisions, want 0", len(collisions))
			}
		})
	}
}

func TestDetector_RTLRunIsReversedToVisualOrder(t *testing.T) {
	font := newFakeFont()
	font.add(1, "alef", square(500))
	font.add(2, "beh", square(500))

	det := New(font)
	run := ShapedRun{
		Direction: DirectionRTL,
		Glyphs: []ShapedGlyph{
			{GID: 1, Cluster: 0, XAdvance: 400},
			{GID: 2, Cluster: 1, XAdvance: 400},
		},
	}

	glyphs, err := det.PositionRun(run)
	if err != nil {
		t.Fatal(err)
	}
	if glyphs[0].Name() != "beh" || glyphs[1].Name() != "alef" {
		t.Errorf("visual order = %s, %s, want beh, alef", glyphs[0].Name(), glyphs[1].Name())
	}
	for i, g := range glyphs {
		if g.Index != i {
			t.Errorf("glyphs[%d].Index = %d", i, g.Index)
		}
	}

	collisions, err := det.DetectRun(run)
	if err != nil {
		t.Fatal(err)
	}
	if len(collisions) != 1 {
		t.Fatalf("got %d collisions, want 1", len(collisions))
	}
	if collisions[0].Glyph1 != "beh" || collisions[0].Glyph2 != "alef" {
		t.Errorf("collision = %s/%s, want beh/alef", collisions[0].Glyph1, collisions[0].Glyph2)
	}
}

func TestDetector_ScaleTurnsNearMissIntoCollision(t *testing.T) {
	font := twoSquareFont()

	// 20 units of daylight at natural size.
	plain := New(font)
	collisions, err := plain.DetectRun(runOf(520, 1, 1))
	if err != nil {
		t.Fatal(err)
	}
	if len(collisions) != 0 {
		t.Fatalf("unscaled: got %d collisions, want 0", len(collisions))
	}

	// Scaling 10% about each glyph's center grows each square by 25
	// units per side, closing the gap.
	scaled := New(font, WithScale(1.1))
	collisions, err = scaled.DetectRun(runOf(520, 1, 1))
	if err != nil {
		t.Fatal(err)
	}
	if len(collisions) != 1 {
		t.Errorf("scaled: got %d collisions, want 1", len(collisions))
	}
}

func TestDetector_ShapeCaching(t *testing.T) {
	det := New(twoSquareFont())

	s1, err := det.Shape(1)
	if err != nil {
		t.Fatal(err)
	}
	s2, err := det.Shape(1)
	if err != nil {
		t.Fatal(err)
	}
	if s1 != s2 {
		t.Error("Shape(1) built twice, want cached instance")
	}
	if n := det.CachedShapes(); n != 1 {
		t.Errorf("CachedShapes = %d, want 1", n)
	}

	// Repeat runs reuse the cache.
	if _, err := det.DetectRun(runOf(400, 1, 1)); err != nil {
		t.Fatal(err)
	}
	if n := det.CachedShapes(); n != 1 {
		t.Errorf("CachedShapes after run = %d, want 1", n)
	}
}

func TestDetector_UnknownGlyph(t *testing.T) {
	det := New(twoSquareFont())

	_, err := det.DetectRun(runOf(400, 1, 99))
	var nfe *GlyphNotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("err = %v, want *GlyphNotFoundError", err)
	}
	if nfe.GID != 99 {
		t.Errorf("GID = %d, want 99", nfe.GID)
	}
}

func TestDetector_PositionTranslatesOutline(t *testing.T) {
	det := New(twoSquareFont())

	pg, err := det.Position(1, geom.Pt(100, -50))
	if err != nil {
		t.Fatal(err)
	}
	want := geom.NewRect(geom.Pt(100, -50), geom.Pt(600, 450))
	if pg.Bounds != want {
		t.Errorf("Bounds = %v, want %v", pg.Bounds, want)
	}
	if len(pg.Paths) != 1 {
		t.Fatalf("got %d paths, want 1", len(pg.Paths))
	}
	if pg.Paths[0].Bounds != want {
		t.Errorf("path Bounds = %v, want %v", pg.Paths[0].Bounds, want)
	}

	// The cached shape must stay untranslated.
	if pg.Shape.Bounds != geom.NewRect(geom.Pt(0, 0), geom.Pt(500, 500)) {
		t.Errorf("cached shape Bounds moved: %v", pg.Shape.Bounds)
	}
}

func TestDetector_DetectIsRepeatable(t *testing.T) {
	det := New(twoSquareFont())
	run := runOf(400, 1, 1, 1)

	first, err := det.DetectRun(run)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := det.DetectRun(run)
		if err != nil {
			t.Fatal(err)
		}
		if len(again) != len(first) {
			t.Fatalf("run %d: %d collisions, want %d", i, len(again), len(first))
		}
		for j := range again {
			if again[j].Point != first[j].Point {
				t.Errorf("run %d: collision %d point %v, want %v", i, j, again[j].Point, first[j].Point)
			}
		}
	}
}
