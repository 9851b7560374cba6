package collide

// Option configures a Detector during creation.
//
//	det := collide.New(src,
//	    collide.WithShaper(src),
//	    collide.WithRules(collide.Rules{Bases: true, Cursive: true}))
type Option func(*options)

// options holds optional configuration for Detector creation.
type options struct {
	shaper Shaper
	rules  Rules
	scale  float64
}

// defaultOptions returns the default detector options.
func defaultOptions() options {
	return options{
		rules: DefaultRules(),
		scale: 1.0,
	}
}

// WithShaper sets the shaping engine used by Detect. Without a shaper
// only DetectRun is available.
func WithShaper(s Shaper) Option {
	return func(o *options) {
		o.shaper = s
	}
}

// WithRules sets the rule configuration.
func WithRules(r Rules) Option {
	return func(o *options) {
		o.rules = r
	}
}

// WithScale applies a uniform scale factor to every cached outline,
// about the center of the glyph's unscaled bounding box. Values below
// 1.0 shrink outlines to probe near-collisions; 1.0 (the default)
// leaves outlines untouched.
func WithScale(factor float64) Option {
	return func(o *options) {
		if factor > 0 {
			o.scale = factor
		}
	}
}
