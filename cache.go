package collide

import "sync"

// shapeKey identifies a cached shape. The source is part of the key so
// that distinct variation instances or masters, each wrapped in its own
// OutlineSource, never collide in one cache.
type shapeKey struct {
	src OutlineSource
	gid GlyphID
}

// shapeCache memoizes GlyphShapes for the lifetime of a detector.
// Reads dominate after warm-up, so it uses a read-mostly lock with a
// double-checked insert. A lost race costs duplicate build work, never
// corruption: shapes are immutable once built.
type shapeCache struct {
	mu     sync.RWMutex
	shapes map[shapeKey]*GlyphShape
}

func newShapeCache() *shapeCache {
	return &shapeCache{shapes: make(map[shapeKey]*GlyphShape)}
}

// getOrBuild returns the cached shape for key, building and inserting
// it on first use. Build errors are not cached.
func (c *shapeCache) getOrBuild(key shapeKey, build func() (*GlyphShape, error)) (*GlyphShape, error) {
	c.mu.RLock()
	shape, ok := c.shapes[key]
	c.mu.RUnlock()
	if ok {
		return shape, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if shape, ok := c.shapes[key]; ok {
		return shape, nil
	}

	shape, err := build()
	if err != nil {
		return nil, err
	}
	c.shapes[key] = shape
	return shape, nil
}

// len returns the number of cached shapes.
func (c *shapeCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.shapes)
}
