package pathfind

import (
	"container/heap"
	"time"

	"github.com/dshills/mapgen/pkg/grid"
)

// EntryCost returns the cost of entering cell v. Return Infinity for an
// impassable cell. Must be strictly positive wherever passable; the
// search panics if a relaxation would not strictly increase distance.
type EntryCost func(v grid.Vec2) float64

// Heuristic returns an admissible estimate of the remaining distance
// from v to the search's source.
type Heuristic func(v grid.Vec2) float64

// Directions returns the moves available from v. Vec2.Directions4 is the
// usual choice; a cell-dependent move set is supported for completeness.
type Directions func(v grid.Vec2) []grid.Vec2

// AStar is a single shortest-path search between two cells, computed
// target-to-source so that a path already holds the distance gradient
// needed to answer repeated NextMove queries walking forward from
// source to target.
type AStar struct {
	ctx          *Context
	target, from grid.Vec2
	dirs         Directions
	bounds       grid.Rect
	// path is stored target-first (i.e. reversed from the public
	// source→target order) so NextMove/IsReachable can pop off the back
	// as the caller advances, mirroring the source's cursor semantics.
	path  []grid.Vec2
	found bool
}

type queueElem struct {
	pos   grid.Vec2
	value float64
}

type priorityQueue []queueElem

func (q priorityQueue) Len() int { return len(q) }
func (q priorityQueue) Less(i, j int) bool {
	if q[i].value != q[j].value {
		return q[i].value < q[j].value
	}
	return q[i].pos.Less(q[j].pos)
}
func (q priorityQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *priorityQueue) Push(x any)        { *q = append(*q, x.(queueElem)) }
func (q *priorityQueue) Pop() any {
	old := *q
	n := len(old)
	elem := old[n-1]
	*q = old[:n-1]
	return elem
}

// NewAStar runs a shortest-path search within bounds from "from" to "to"
// using ctx's scratch tables. Both the distance table and the entry-cost
// cache are cleared (O(1)) at the start of every search. When ctx.Metrics
// is set, the search's wall-clock duration is recorded as one pathfind
// query regardless of whether a path was found.
func NewAStar(ctx *Context, bounds grid.Rect, entryCost EntryCost, h Heuristic, dirs Directions, from, to grid.Vec2) *AStar {
	start := time.Now()
	a := &AStar{ctx: ctx, target: to, from: from, dirs: dirs, bounds: bounds}
	ctx.clearDistances()
	ctx.clearCostCache()

	pq := &priorityQueue{}
	heap.Init(pq)
	ctx.setDistance(to, 0)
	heap.Push(pq, queueElem{pos: to, value: 0})

	for pq.Len() > 0 {
		top := (*pq)[0]
		pos := top.pos
		posDist := ctx.distance(pos)
		if pos == from {
			a.found = true
			a.path = a.reconstruct()
			ctx.Metrics.PathfindQuery(time.Since(start).Seconds())
			return a
		}
		heap.Pop(pq)
		for _, dir := range dirs(pos) {
			next := pos.Add(dir)
			if !bounds.Contains(next) {
				continue
			}
			nextDist := ctx.distance(next)
			if posDist < nextDist {
				cost := ctx.cachedEntryCost(next, entryCost)
				dist := posDist + cost
				if dist <= posDist {
					panic("pathfind: entry cost must be strictly positive")
				}
				if dist < nextDist {
					ctx.setDistance(next, dist)
					heap.Push(pq, queueElem{pos: next, value: dist + h(next)})
				}
			}
		}
	}
	ctx.Metrics.PathfindQuery(time.Since(start).Seconds())
	return a
}

// reconstruct walks from a.from back to a.target choosing, at each step,
// a neighbour with strictly smaller distance (i.e. closer to target). If
// no such neighbour exists for a non-target cell the search invariant is
// broken, which is a programmer error.
func (a *AStar) reconstruct() []grid.Vec2 {
	var forward []grid.Vec2
	pos := a.from
	for pos != a.target {
		lowest := a.ctx.distance(pos)
		var next grid.Vec2
		found := false
		for _, dir := range a.dirs(pos) {
			cand := pos.Add(dir)
			if a.bounds.Contains(cand) {
				if d := a.ctx.distance(cand); d < lowest {
					lowest = d
					next = cand
					found = true
				}
			}
		}
		if !found {
			panic("pathfind: path reconstruction found no descending neighbour")
		}
		forward = append(forward, pos)
		pos = next
	}
	forward = append(forward, a.target)
	// Store target-first for the cursor API.
	rev := make([]grid.Vec2, len(forward))
	for i, v := range forward {
		rev[len(forward)-1-i] = v
	}
	return rev
}

// IsReachable reports whether pos is a valid cursor position: either the
// current tail of the path or one step before it.
func (a *AStar) IsReachable(pos grid.Vec2) bool {
	n := len(a.path)
	if n >= 1 && a.path[n-1] == pos {
		return true
	}
	if n >= 2 && a.path[n-2] == pos {
		return true
	}
	return false
}

// NextMove advances the cursor from pos and returns the next cell toward
// the target. pos must satisfy IsReachable.
func (a *AStar) NextMove(pos grid.Vec2) grid.Vec2 {
	if !a.IsReachable(pos) {
		panic("pathfind: NextMove called on unreachable cursor position")
	}
	if pos != a.path[len(a.path)-1] {
		a.path = a.path[:len(a.path)-1]
	}
	return a.path[len(a.path)-2]
}

// Path returns the full reconstructed path in source→target order, or
// nil if the target could not reach the source.
func (a *AStar) Path() []grid.Vec2 {
	if !a.found {
		return nil
	}
	out := make([]grid.Vec2, len(a.path))
	for i, v := range a.path {
		out[len(a.path)-1-i] = v
	}
	return out
}

// Found reports whether the search connected from and to.
func (a *AStar) Found() bool { return a.found }
