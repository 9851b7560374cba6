package opentype

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/glyphtools/collide"
)

// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has
// internal mutable state and is not safe for concurrent use, but
// reusing instances across sequential calls avoids reallocating its
// buffers.
type shaperPool struct {
	pool sync.Pool
}

func (p *shaperPool) init() {
	p.pool.New = func() any {
		return &shaping.HarfbuzzShaper{}
	}
}

func (p *shaperPool) shape(input shaping.Input) shaping.Output {
	hb := p.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	p.pool.Put(hb)
	return out
}

// Shape implements collide.Shaper. The run is shaped at the font's
// units-per-em so all positions come out in font units, with direction
// and script guessed from the text (first-strong for direction, first
// non-space rune for script).
func (s *Source) Shape(text string) (collide.ShapedRun, error) {
	runes := []rune(text)
	if len(runes) == 0 {
		return collide.ShapedRun{}, nil
	}

	direction := guessDirection(runes)
	dir := di.DirectionLTR
	if direction == collide.DirectionRTL {
		dir = di.DirectionRTL
	}

	// font.Face is not concurrent-safe; build one per call around the
	// shared thread-safe *font.Font.
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(s.font),
		Size:      fixed.I(int(s.upem)),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	output := s.shapers.shape(input)

	run := collide.ShapedRun{
		Direction: direction,
		Glyphs:    make([]collide.ShapedGlyph, len(output.Glyphs)),
	}
	for i, g := range output.Glyphs {
		run.Glyphs[i] = collide.ShapedGlyph{
			GID:      collide.GlyphID(g.GlyphID),
			Cluster:  g.TextIndex(),
			XOffset:  fixedToFloat(g.XOffset),
			YOffset:  fixedToFloat(g.YOffset),
			XAdvance: fixedToFloat(g.Advance),
		}
	}
	return run, nil
}

// guessDirection applies first-strong detection: the bidi class of the
// first strongly directional rune decides the run direction.
func guessDirection(runes []rune) collide.Direction {
	for _, r := range runes {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return collide.DirectionLTR
		case bidi.R, bidi.AL:
			return collide.DirectionRTL
		}
	}
	return collide.DirectionLTR
}

// detectScript returns the script of the first non-space rune. For
// mixed-script text, callers should split runs by script before
// shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// fixedToFloat converts a 26.6 fixed-point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
