package collide

// GlyphID is a glyph index within a font.
type GlyphID uint32

// Category classifies a glyph for adjacency decisions.
// Values match the GDEF glyph class definitions.
type Category uint8

const (
	// CategoryUnclassified is a glyph without a GDEF class.
	CategoryUnclassified Category = iota

	// CategoryBase is a single-character spacing glyph.
	CategoryBase

	// CategoryLigature is a multi-character spacing glyph.
	CategoryLigature

	// CategoryMark is a non-spacing combining glyph.
	CategoryMark

	// CategoryComponent is part of a ligature.
	CategoryComponent
)

// String returns the string representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryUnclassified:
		return "Unclassified"
	case CategoryBase:
		return "Base"
	case CategoryLigature:
		return "Ligature"
	case CategoryMark:
		return "Mark"
	case CategoryComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// IsMark reports whether the glyph is a non-spacing mark.
// Every other category counts as a base for adjacency purposes.
func (c Category) IsMark() bool {
	return c == CategoryMark
}

// Direction specifies the visual order of a shaped run.
type Direction int

const (
	// DirectionLTR is left-to-right text (Latin, Cyrillic, ...).
	DirectionLTR Direction = iota

	// DirectionRTL is right-to-left text (Arabic, Hebrew).
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return "Unknown"
	}
}
