package opentype

import (
	"encoding/binary"
	"errors"
	"sort"

	"github.com/glyphtools/collide"
	"github.com/glyphtools/collide/geom"
)

// Raw OpenType layout table parsing. go-text/typesetting exposes parsed
// shaping structures but not the GDEF glyph classes, GPOS cursive
// anchors or post names this package needs, so those are read directly
// from the raw tables. All offsets are big-endian and checked before
// use; malformed optional tables surface as errors and the caller
// degrades gracefully.

var errInvalidTable = errors.New("opentype: truncated or malformed table")

var be = binary.BigEndian

// --- ClassDef ---

// classDef maps glyph ids to integer classes.
type classDef interface {
	lookup(gid uint16) uint16
}

// classDefFormat1 assigns classes to a contiguous glyph range.
type classDefFormat1 struct {
	start   uint16
	classes []uint16
}

func (c *classDefFormat1) lookup(gid uint16) uint16 {
	if gid < c.start || int(gid-c.start) >= len(c.classes) {
		return 0
	}
	return c.classes[gid-c.start]
}

// classRange assigns one class to an inclusive glyph range.
type classRange struct {
	start, end, class uint16
}

// classDefFormat2 assigns classes via sorted glyph ranges.
type classDefFormat2 struct {
	ranges []classRange
}

func (c *classDefFormat2) lookup(gid uint16) uint16 {
	i := sort.Search(len(c.ranges), func(i int) bool {
		return c.ranges[i].end >= gid
	})
	if i < len(c.ranges) && c.ranges[i].start <= gid && gid <= c.ranges[i].end {
		return c.ranges[i].class
	}
	return 0
}

func parseClassDef(data []byte, offset int) (classDef, error) {
	if offset+4 > len(data) {
		return nil, errInvalidTable
	}
	switch be.Uint16(data[offset:]) {
	case 1:
		if offset+6 > len(data) {
			return nil, errInvalidTable
		}
		start := be.Uint16(data[offset+2:])
		count := int(be.Uint16(data[offset+4:]))
		if offset+6+count*2 > len(data) {
			return nil, errInvalidTable
		}
		classes := make([]uint16, count)
		for i := 0; i < count; i++ {
			classes[i] = be.Uint16(data[offset+6+i*2:])
		}
		return &classDefFormat1{start: start, classes: classes}, nil
	case 2:
		count := int(be.Uint16(data[offset+2:]))
		if offset+4+count*6 > len(data) {
			return nil, errInvalidTable
		}
		ranges := make([]classRange, count)
		for i := 0; i < count; i++ {
			rec := offset + 4 + i*6
			ranges[i] = classRange{
				start: be.Uint16(data[rec:]),
				end:   be.Uint16(data[rec+2:]),
				class: be.Uint16(data[rec+4:]),
			}
		}
		return &classDefFormat2{ranges: ranges}, nil
	default:
		return nil, errInvalidTable
	}
}

// parseGlyphClasses extracts the glyph class definition from a raw GDEF
// table. A GDEF without a class definition yields (nil, nil).
func parseGlyphClasses(gdef []byte) (classDef, error) {
	if len(gdef) < 12 {
		return nil, errInvalidTable
	}
	classDefOffset := int(be.Uint16(gdef[4:]))
	if classDefOffset == 0 {
		return nil, nil
	}
	return parseClassDef(gdef, classDefOffset)
}

// --- Coverage ---

// parseCoverage returns the covered glyphs in coverage-index order.
func parseCoverage(data []byte, offset int) ([]uint16, error) {
	if offset+4 > len(data) {
		return nil, errInvalidTable
	}
	count := int(be.Uint16(data[offset+2:]))
	switch be.Uint16(data[offset:]) {
	case 1:
		if offset+4+count*2 > len(data) {
			return nil, errInvalidTable
		}
		glyphs := make([]uint16, count)
		for i := 0; i < count; i++ {
			glyphs[i] = be.Uint16(data[offset+4+i*2:])
		}
		return glyphs, nil
	case 2:
		if offset+4+count*6 > len(data) {
			return nil, errInvalidTable
		}
		var glyphs []uint16
		for i := 0; i < count; i++ {
			rec := offset + 4 + i*6
			start := be.Uint16(data[rec:])
			end := be.Uint16(data[rec+2:])
			if end < start {
				return nil, errInvalidTable
			}
			for g := start; ; g++ {
				glyphs = append(glyphs, g)
				if g == end {
					break
				}
			}
		}
		return glyphs, nil
	default:
		return nil, errInvalidTable
	}
}

// --- GPOS cursive attachment ---

const (
	gposTypeCursive   = 3
	gposTypeExtension = 9
)

// parseCursiveAnchors walks the GPOS lookup list and collects the
// entry/exit anchor points of every Cursive Attachment (type 3)
// subtable, including those wrapped in Extension (type 9) lookups.
func parseCursiveAnchors(gpos []byte) (map[collide.GlyphID][]geom.Point, error) {
	if len(gpos) < 10 {
		return nil, errInvalidTable
	}
	lookupListOffset := int(be.Uint16(gpos[8:]))
	if lookupListOffset == 0 || lookupListOffset+2 > len(gpos) {
		return nil, errInvalidTable
	}
	lookupCount := int(be.Uint16(gpos[lookupListOffset:]))
	if lookupListOffset+2+lookupCount*2 > len(gpos) {
		return nil, errInvalidTable
	}

	anchors := make(map[collide.GlyphID][]geom.Point)
	for i := 0; i < lookupCount; i++ {
		lookupOffset := lookupListOffset + int(be.Uint16(gpos[lookupListOffset+2+i*2:]))
		if lookupOffset+6 > len(gpos) {
			return nil, errInvalidTable
		}
		lookupType := int(be.Uint16(gpos[lookupOffset:]))
		subCount := int(be.Uint16(gpos[lookupOffset+4:]))
		if lookupType != gposTypeCursive && lookupType != gposTypeExtension {
			continue
		}
		if lookupOffset+6+subCount*2 > len(gpos) {
			return nil, errInvalidTable
		}
		for j := 0; j < subCount; j++ {
			subOffset := lookupOffset + int(be.Uint16(gpos[lookupOffset+6+j*2:]))
			effType := lookupType
			if effType == gposTypeExtension {
				// ExtensionPosFormat1: format, extensionLookupType,
				// extensionOffset (u32, relative to this subtable).
				if subOffset+8 > len(gpos) {
					return nil, errInvalidTable
				}
				effType = int(be.Uint16(gpos[subOffset+2:]))
				subOffset += int(be.Uint32(gpos[subOffset+4:]))
			}
			if effType != gposTypeCursive {
				continue
			}
			if err := parseCursiveSubtable(gpos, subOffset, anchors); err != nil {
				return nil, err
			}
		}
	}
	return anchors, nil
}

// parseCursiveSubtable reads one CursivePosFormat1 subtable: a coverage
// of joining glyphs and one entry/exit anchor record per covered glyph.
func parseCursiveSubtable(data []byte, offset int, anchors map[collide.GlyphID][]geom.Point) error {
	if offset+6 > len(data) {
		return errInvalidTable
	}
	if be.Uint16(data[offset:]) != 1 {
		return errInvalidTable
	}
	coverageOffset := int(be.Uint16(data[offset+2:]))
	recordCount := int(be.Uint16(data[offset+4:]))
	if offset+6+recordCount*4 > len(data) {
		return errInvalidTable
	}

	covered, err := parseCoverage(data, offset+coverageOffset)
	if err != nil {
		return err
	}
	for i, gid := range covered {
		if i >= recordCount {
			break
		}
		rec := offset + 6 + i*4
		for _, anchorOffset := range []int{
			int(be.Uint16(data[rec:])),
			int(be.Uint16(data[rec+2:])),
		} {
			if anchorOffset == 0 {
				continue
			}
			pt, err := parseAnchor(data, offset+anchorOffset)
			if err != nil {
				return err
			}
			anchors[collide.GlyphID(gid)] = append(anchors[collide.GlyphID(gid)], pt)
		}
	}
	return nil
}

// parseAnchor reads the design-unit coordinates common to all three
// anchor formats (contour-point and device refinements are irrelevant
// for containment testing).
func parseAnchor(data []byte, offset int) (geom.Point, error) {
	if offset+6 > len(data) {
		return geom.Point{}, errInvalidTable
	}
	x := int16(be.Uint16(data[offset+2:]))
	y := int16(be.Uint16(data[offset+4:]))
	return geom.Pt(float64(x), float64(y)), nil
}
