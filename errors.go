package collide

import (
	"errors"
	"fmt"
)

// ErrShapingUnavailable is returned by Detect when raw text is given
// but the detector has no shaper configured. Callers must either supply
// a shaper or use DetectRun with a pre-shaped run.
var ErrShapingUnavailable = errors.New("collide: no shaper configured for raw text")

// GlyphNotFoundError is returned when the font cannot resolve a glyph.
// The call that triggered the lookup fails as a whole; glyphs are never
// silently substituted.
type GlyphNotFoundError struct {
	GID  GlyphID
	Name string
}

func (e *GlyphNotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("collide: glyph %q (gid %d) not found in font", e.Name, e.GID)
	}
	return fmt.Sprintf("collide: glyph %d not found in font", e.GID)
}
