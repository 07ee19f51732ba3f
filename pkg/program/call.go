package program

import (
	"fmt"

	"github.com/dshills/mapgen/pkg/pathfind"
	"github.com/dshills/mapgen/pkg/rng"
	"github.com/dshills/mapgen/pkg/token"
)

// callRef references a named generator by name, resolved against defs
// at Eval time rather than at build time, so named generators may call
// each other regardless of declaration order, including recursively.
type callRef struct {
	name string
	defs defs
}

// Eval implements generator.Node.
func (c *callRef) Eval(canvas token.Canvas, r *rng.RNG, pctx *pathfind.Context) bool {
	n, ok := c.defs[c.name]
	if !ok {
		panic(fmt.Sprintf("program: call to undefined generator %q", c.name))
	}
	return n.Eval(canvas, r, pctx)
}
