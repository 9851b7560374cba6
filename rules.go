package collide

import (
	"fmt"
	"strconv"
	"strings"
)

// Rules configures which glyph pairs are tested for overlap and which
// detected overlaps are reported. The zero value tests nothing; start
// from DefaultRules.
//
// Rules are immutable once handed to a Detector.
type Rules struct {
	// Bases tests every pair of non-mark glyphs. When false, base/base
	// pairs are skipped entirely, regardless of other rules.
	Bases bool

	// Marks tests pairs where both glyphs are non-spacing marks.
	Marks bool

	// Faraway tests glyph pairs that are not adjacent: a glyph, its
	// directly attached marks and the very next glyph form one
	// adjacency unit, and only pairs strictly beyond that unit qualify.
	Faraway bool

	// AdjacentClusters tests pairs whose shaping cluster ids differ by
	// less than 2.
	AdjacentClusters bool

	// Cursive exempts overlaps between anchored connector contours of
	// cursively joined glyphs, unless a base glyph sits between them.
	Cursive bool

	// Area, when positive, reports an overlap only if its flattened
	// intersection area exceeds Area times either contour's own area.
	// Zero disables the filter.
	Area float64

	// Unknown retains unrecognized rule keys from configuration input.
	// The engine ignores them; they are kept so configs written for
	// newer versions round-trip unchanged.
	Unknown map[string]string
}

// DefaultRules returns the default rule set: base/base pairs tested,
// everything else off.
func DefaultRules() Rules {
	return Rules{Bases: true}
}

// ParseRules parses rule settings of the form "name=value" and merges
// them over DefaultRules. Recognized names are faraway, marks, bases,
// adjacent_clusters, cursive (booleans) and area (float). Unrecognized
// names are retained in Unknown and otherwise ignored.
func ParseRules(settings []string) (Rules, error) {
	rules := DefaultRules()
	for _, s := range settings {
		name, value, ok := strings.Cut(s, "=")
		if !ok {
			return Rules{}, fmt.Errorf("collide: rule %q is not of the form name=value", s)
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)

		var err error
		switch name {
		case "faraway":
			rules.Faraway, err = strconv.ParseBool(value)
		case "marks":
			rules.Marks, err = strconv.ParseBool(value)
		case "bases":
			rules.Bases, err = strconv.ParseBool(value)
		case "adjacent_clusters":
			rules.AdjacentClusters, err = strconv.ParseBool(value)
		case "cursive":
			rules.Cursive, err = strconv.ParseBool(value)
		case "area":
			rules.Area, err = strconv.ParseFloat(value, 64)
		default:
			if rules.Unknown == nil {
				rules.Unknown = make(map[string]string)
			}
			rules.Unknown[name] = value
		}
		if err != nil {
			return Rules{}, fmt.Errorf("collide: rule %s: invalid value %q", name, value)
		}
	}
	return rules, nil
}
