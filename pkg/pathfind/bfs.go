package pathfind

import "github.com/dshills/mapgen/pkg/grid"

// BFS computes unweighted reachability from a single source: every
// passable cell connected to the source via Directions moves, ignoring
// entry cost magnitude (a cell is either passable or not).
type BFS struct {
	ctx    *Context
	bounds grid.Rect
}

// NewBFS floods outward from source, marking each reached cell with its
// step count in the context's distance table. passable should return
// false for impassable cells (equivalent to an Infinity entry cost).
func NewBFS(ctx *Context, bounds grid.Rect, passable func(grid.Vec2) bool, dirs Directions, source grid.Vec2) *BFS {
	b := &BFS{ctx: ctx, bounds: bounds}
	ctx.clearDistances()

	queue := []grid.Vec2{source}
	ctx.setDistance(source, 0)
	for head := 0; head < len(queue); head++ {
		pos := queue[head]
		d := ctx.distance(pos)
		for _, dir := range dirs(pos) {
			next := pos.Add(dir)
			if !bounds.Contains(next) {
				continue
			}
			if ctx.distance(next) == Infinity && passable(next) {
				ctx.setDistance(next, d+1)
				queue = append(queue, next)
			}
		}
	}
	return b
}

// Reachable reports whether v was reached from the BFS source.
func (b *BFS) Reachable(v grid.Vec2) bool { return b.ctx.distance(v) != Infinity }

// Steps returns the number of moves from the source to v, or -1 if
// unreached.
func (b *BFS) Steps(v grid.Vec2) int {
	d := b.ctx.distance(v)
	if d == Infinity {
		return -1
	}
	return int(d)
}
