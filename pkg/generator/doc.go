// Package generator implements the declarative generator tree: a set of
// node types, one per layout operation, each evaluated against a Canvas
// (a token map plus a working rectangle) and an RNG. Composite nodes
// (Margin, HRatio, Place, Chain, Connect, ...) hold child nodes and
// recurse by narrowing the canvas to a sub-rectangle, so the whole tree
// is driven by a single Eval call on the root.
//
// Dispatch is by Go interface rather than a switch or visitor: every
// node type implements Node.Eval directly, matching the single-method
// "interface objects" shape used throughout this module's predicate and
// pathfinding packages.
package generator
