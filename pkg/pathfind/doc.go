// Package pathfind implements the grid router used by the generator's
// Connect node: an A*-style shortest path that searches from target to
// source so a single run can answer repeated NextMove queries walking
// forward, plus Dijkstra and BFS variants for distance maps and
// reachability that share the same generation-counter-backed distance
// table.
//
// A Context owns the distance table and the per-cell entry-cost cache.
// Both are keyed by a monotonic generation counter rather than being
// reallocated per search: clearing either is an O(1) counter bump. A
// Context is created once by the caller of a top-level generator Eval
// (cmd/mapgen does this per run) and threaded down through recursion — never a
// package-level global — so concurrent invocations only need to clone a
// Context, per the engine's single-threaded-but-shared-state design.
package pathfind
