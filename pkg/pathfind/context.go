package pathfind

import (
	"github.com/rs/zerolog"

	"github.com/dshills/mapgen/pkg/grid"
	"github.com/dshills/mapgen/pkg/metrics"
)

// Infinity is the impassable-cell sentinel entry cost functions return.
const Infinity = 1e9

// genTable pairs a value table with a generation-counter table so the
// whole table can be "cleared" in O(1) by bumping a monotonic counter:
// a cell reads back its zero value unless its own counter matches.
type genTable[T any] struct {
	values  *grid.Table[T]
	gen     *grid.Table[int]
	counter int
	zero    T
}

func newGenTable[T any](bounds grid.Rect, zero T) *genTable[T] {
	return &genTable[T]{
		values: grid.NewTable[T](bounds.Width(), bounds.Height()),
		gen:    grid.NewTable[int](bounds.Width(), bounds.Height()),
		zero:   zero,
	}
}

func (t *genTable[T]) get(v grid.Vec2) T {
	if t.gen.Get(v) != t.counter {
		return t.zero
	}
	return t.values.Get(v)
}

func (t *genTable[T]) set(v grid.Vec2, val T) {
	t.values.Set(v, val)
	t.gen.Set(v, t.counter)
}

func (t *genTable[T]) clear() {
	t.counter++
}

// Context holds the scratch state a single Context may run many searches
// over: the distance table relaxed during each search and the entry-cost
// cache that memoises a (possibly predicate-evaluating, RNG-consuming)
// cost function per cell for the duration of one search.
type Context struct {
	bounds grid.Rect
	dist   *genTable[float64]
	cost   *genTable[float64]
	// origin offsets every Vec2 passed in against the table's 0-based
	// storage, so a Context can cover any sub-rectangle of the map.
	origin grid.Vec2
	// Metrics records per-search instrumentation when set. Left nil, a
	// Context behaves exactly as before: Metrics' methods are all
	// nil-safe, so every search site can call them unconditionally.
	Metrics *metrics.Metrics
	// Logger, if set, receives Debug-level engine events (Place retry
	// exhaustion, Connect disconnected sample pairs, NoiseMap quantile
	// bounds). Use Log() to read it; a nil Logger yields a disabled one.
	Logger *zerolog.Logger
}

// Log returns the context's logger, or a disabled one if none is set,
// so call sites never need a nil check before logging.
func (c *Context) Log() zerolog.Logger {
	if c.Logger == nil {
		return zerolog.Nop()
	}
	return *c.Logger
}

// NewContext allocates a context covering bounds. bounds need not start
// at the origin; callers pass map-relative coordinates and the context
// translates internally.
func NewContext(bounds grid.Rect) *Context {
	local := grid.Rect{Px: 0, Py: 0, Kx: bounds.Width(), Ky: bounds.Height()}
	return &Context{
		bounds: bounds,
		dist:   newGenTable[float64](local, Infinity),
		cost:   newGenTable[float64](local, Infinity),
		origin: bounds.TopLeft(),
	}
}

func (c *Context) local(v grid.Vec2) grid.Vec2 { return v.Sub(c.origin) }

func (c *Context) distance(v grid.Vec2) float64 { return c.dist.get(c.local(v)) }

func (c *Context) setDistance(v grid.Vec2, d float64) { c.dist.set(c.local(v), d) }

func (c *Context) clearDistances() { c.dist.clear() }

func (c *Context) clearCostCache() { c.cost.clear() }

// cachedEntryCost memoises fn(v) for the lifetime of the current
// generation so a cost function with an expensive or RNG-consuming body
// (predicate evaluation backing a Connect element lookup) runs at most
// once per cell per search.
func (c *Context) cachedEntryCost(v grid.Vec2, fn func(grid.Vec2) float64) float64 {
	lv := c.local(v)
	if c.cost.gen.Get(lv) == c.cost.counter {
		return c.cost.values.Get(lv)
	}
	val := fn(v)
	c.cost.set(lv, val)
	return val
}

// inBounds reports whether v lies within the context's rectangle.
func (c *Context) inBounds(v grid.Vec2) bool { return c.bounds.Contains(v) }
