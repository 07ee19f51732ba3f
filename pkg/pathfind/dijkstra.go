package pathfind

import (
	"container/heap"

	"github.com/dshills/mapgen/pkg/grid"
)

// Dijkstra computes, from a set of sources, the distance to every
// reachable cell within bounds up to maxDist, for "within N steps" tests
// rather than a single point-to-point path. No generator node calls it.
type Dijkstra struct {
	ctx    *Context
	bounds grid.Rect
	maxDist float64
}

// NewDijkstra relaxes distances from sources outward, stopping expansion
// past maxDist. The context's distance table is cleared first.
func NewDijkstra(ctx *Context, bounds grid.Rect, entryCost EntryCost, dirs Directions, sources []grid.Vec2, maxDist float64) *Dijkstra {
	d := &Dijkstra{ctx: ctx, bounds: bounds, maxDist: maxDist}
	ctx.clearDistances()
	ctx.clearCostCache()

	pq := &priorityQueue{}
	heap.Init(pq)
	for _, s := range sources {
		if ctx.distance(s) > 0 {
			ctx.setDistance(s, 0)
			heap.Push(pq, queueElem{pos: s, value: 0})
		}
	}

	for pq.Len() > 0 {
		top := heap.Pop(pq).(queueElem)
		pos := top.pos
		posDist := ctx.distance(pos)
		if posDist > maxDist {
			continue
		}
		for _, dir := range dirs(pos) {
			next := pos.Add(dir)
			if !bounds.Contains(next) {
				continue
			}
			nextDist := ctx.distance(next)
			if posDist < nextDist {
				cost := ctx.cachedEntryCost(next, entryCost)
				dist := posDist + cost
				if dist <= maxDist && dist < nextDist {
					ctx.setDistance(next, dist)
					heap.Push(pq, queueElem{pos: next, value: dist})
				}
			}
		}
	}
	return d
}

// Distance returns the relaxed distance to v, or Infinity if v was not
// reached within maxDist.
func (d *Dijkstra) Distance(v grid.Vec2) float64 { return d.ctx.distance(v) }

// Reachable reports whether v was reached within maxDist.
func (d *Dijkstra) Reachable(v grid.Vec2) bool { return d.ctx.distance(v) <= d.maxDist }
