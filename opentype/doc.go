// Package opentype adapts a TTF/OTF font to the collide collaborator
// interfaces. Shaping and outline extraction are delegated to
// go-text/typesetting (the Go HarfBuzz port); glyph classes, cursive
// entry/exit anchors and glyph names are read from the raw GDEF, GPOS
// and post tables, which the high-level API does not expose.
package opentype
