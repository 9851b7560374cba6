// Command collide reports glyph collisions in shaped text.
//
// Usage:
//
//	collide -font MyFont.ttf [-rule faraway=true] [-svg out.svg] "some text"
//
// The exit status is 2 on usage or font errors, 1 when collisions were
// found, 0 when the text is clean.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/glyphtools/collide"
	"github.com/glyphtools/collide/opentype"
)

// ruleFlags accumulates repeated -rule name=value pairs.
type ruleFlags []string

func (r *ruleFlags) String() string {
	return strings.Join(*r, ",")
}

func (r *ruleFlags) Set(v string) error {
	*r = append(*r, v)
	return nil
}

func main() {
	var rules ruleFlags
	var (
		fontPath = flag.String("font", "", "path to a TTF/OTF font file")
		scale    = flag.Float64("scale", 1.0, "outline scale factor (>1 exaggerates near-misses)")
		svgPath  = flag.String("svg", "", "write an SVG visualization to this file")
	)
	flag.Var(&rules, "rule", "collision rule as name=value, repeatable (bases, marks, faraway, adjacent_clusters, cursive, area)")
	flag.Parse()

	if *fontPath == "" || flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s -font FONT [options] TEXT...\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	parsed, err := collide.ParseRules(rules)
	if err != nil {
		log.Fatalf("bad -rule: %v", err)
	}

	data, err := os.ReadFile(*fontPath)
	if err != nil {
		log.Fatalf("reading font: %v", err)
	}
	src, err := opentype.NewSource(data)
	if err != nil {
		log.Fatalf("parsing font: %v", err)
	}

	det := collide.New(src,
		collide.WithShaper(src),
		collide.WithRules(parsed),
		collide.WithScale(*scale),
	)

	found := false
	for _, text := range flag.Args() {
		run, err := src.Shape(text)
		if err != nil {
			log.Fatalf("shaping %q: %v", text, err)
		}
		glyphs, err := det.PositionRun(run)
		if err != nil {
			log.Fatalf("positioning %q: %v", text, err)
		}
		collisions := det.DetectPositioned(glyphs)
		if len(collisions) == 0 {
			continue
		}
		found = true
		for _, c := range collisions {
			fmt.Printf("%s: %s\n", text, c)
		}
		if *svgPath != "" {
			svg := collide.RenderSVG(glyphs, collisions, `width="1000"`)
			if err := os.WriteFile(*svgPath, []byte(svg), 0o644); err != nil {
				log.Fatalf("writing %s: %v", *svgPath, err)
			}
		}
	}
	if found {
		os.Exit(1)
	}
}
