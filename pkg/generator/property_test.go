package generator

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/dshills/mapgen/pkg/grid"
	"github.com/dshills/mapgen/pkg/pathfind"
	"github.com/dshills/mapgen/pkg/predicate"
	"github.com/dshills/mapgen/pkg/rng"
	"github.com/dshills/mapgen/pkg/token"
)

func evalTree(n Node, w, h int, seed int64) *token.Map {
	m := token.NewMap(w, h)
	c := token.NewCanvas(m)
	r := rng.New(seed)
	pctx := pathfind.NewContext(c.Area)
	n.Eval(c, r, pctx)
	return m
}

// snapshot captures every cell's token set so two maps can be compared
// cell-by-cell without caring about iteration order inside Map.Tokens.
func snapshot(m *token.Map) map[grid.Vec2]map[token.Token]bool {
	out := make(map[grid.Vec2]map[token.Token]bool)
	m.Bounds().ForEach(func(v grid.Vec2) {
		cell := make(map[token.Token]bool)
		for _, tok := range m.Tokens(v) {
			cell[tok] = true
		}
		out[v] = cell
	})
	return out
}

func treeFor(depth int, t *rapid.T) Node {
	if depth <= 0 {
		return Set{Tokens: []token.Token{rapid.StringMatching(`[a-z]`).Draw(t, "leaf")}}
	}
	switch rapid.IntRange(0, 3).Draw(t, "kind") {
	case 0:
		return Set{Tokens: []token.Token{rapid.StringMatching(`[a-z]`).Draw(t, "tok")}}
	case 1:
		return Margins{
			Width:  1,
			Border: treeFor(depth-1, t),
			Inside: treeFor(depth-1, t),
		}
	case 2:
		return HRatio{
			R:     rapid.Float64Range(0.1, 0.9).Draw(t, "ratio"),
			Left:  treeFor(depth-1, t),
			Right: treeFor(depth-1, t),
		}
	default:
		return Chain{Generators: []Node{treeFor(depth-1, t), treeFor(depth-1, t)}}
	}
}

// Two runs of the same generator tree over the same size and seed
// produce cell-identical maps.
func TestPropertyDeterminism(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.IntRange(3, 12).Draw(t, "width")
		h := rapid.IntRange(3, 12).Draw(t, "height")
		seed := rapid.Int64().Draw(t, "seed")
		tree := treeFor(3, t)

		first := snapshot(evalTree(tree, w, h, seed))
		second := snapshot(evalTree(tree, w, h, seed))

		for v, cell := range first {
			other := second[v]
			if len(cell) != len(other) {
				t.Fatalf("cell %v diverged between runs: %v vs %v", v, cell, other)
			}
			for tok := range cell {
				if !other[tok] {
					t.Fatalf("cell %v missing token %q on second run", v, tok)
				}
			}
		}
	})
}

// No generator tree touches a cell outside the canvas it was evaluated
// over: a narrower sub-canvas carved out of a larger map leaves every
// cell outside its Area exactly as it started.
func TestPropertyBoundaryContainment(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.IntRange(4, 16).Draw(t, "width")
		h := rapid.IntRange(4, 16).Draw(t, "height")
		px := rapid.IntRange(1, w-2).Draw(t, "px")
		py := rapid.IntRange(1, h-2).Draw(t, "py")
		kx := rapid.IntRange(px+1, w-1).Draw(t, "kx")
		ky := rapid.IntRange(py+1, h-1).Draw(t, "ky")

		m := token.NewMap(w, h)
		sub := grid.Rect{Px: px, Py: py, Kx: kx, Ky: ky}
		c := token.Canvas{Area: sub, Map: m}
		r := rng.New(rapid.Int64().Draw(t, "seed"))
		pctx := pathfind.NewContext(m.Bounds())

		Set{Tokens: []token.Token{"x"}}.Eval(c, r, pctx)

		m.Bounds().ForEach(func(v grid.Vec2) {
			if !sub.Contains(v) && m.Has(v, "x") {
				t.Fatalf("cell %v outside sub-canvas %v was painted", v, sub)
			}
		})
	})
}

// Margins' border and inside rectangles partition the canvas exactly:
// every cell is painted by precisely one of the two branches.
func TestPropertyMarginsPartitionsCanvas(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.IntRange(3, 20).Draw(t, "width")
		h := rapid.IntRange(3, 20).Draw(t, "height")
		maxWidth := min(w, h)/2 - 1
		if maxWidth < 1 {
			maxWidth = 1
		}
		width := rapid.IntRange(1, maxWidth).Draw(t, "marginWidth")

		n := Margins{Width: width, Border: Set{Tokens: []token.Token{"border"}}, Inside: Set{Tokens: []token.Token{"inside"}}}
		m := evalTree(n, w, h, rapid.Int64().Draw(t, "seed"))

		m.Bounds().ForEach(func(v grid.Vec2) {
			border := m.Has(v, "border")
			inside := m.Has(v, "inside")
			if border == inside {
				t.Fatalf("cell %v painted by both or neither branch (border=%v inside=%v)", v, border, inside)
			}
			onEdge := v.X < width || v.Y < width || v.X >= w-width || v.Y >= h-width
			if onEdge != border {
				t.Fatalf("cell %v edge=%v but border=%v", v, onEdge, border)
			}
		})
	})
}

// HRatio's split line sits at floor(width*R) from the canvas's left
// edge, and the two halves tile the canvas exactly.
func TestPropertyHRatioSplitLine(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.IntRange(2, 30).Draw(t, "width")
		h := rapid.IntRange(1, 10).Draw(t, "height")
		ratio := rapid.Float64Range(0, 1).Draw(t, "ratio")

		n := HRatio{R: ratio, Left: Set{Tokens: []token.Token{"L"}}, Right: Set{Tokens: []token.Token{"R"}}}
		m := evalTree(n, w, h, rapid.Int64().Draw(t, "seed"))

		split := int(float64(w) * ratio)
		m.Bounds().ForEach(func(v grid.Vec2) {
			left := m.Has(v, "L")
			right := m.Has(v, "R")
			if left == right {
				t.Fatalf("cell %v should be exactly one of L/R, got L=%v R=%v", v, left, right)
			}
			if (v.X < split) != left {
				t.Fatalf("cell %v at split=%d should have left=%v, got %v", v, split, v.X < split, left)
			}
		})
	})
}

// recordingNode wraps another Node and appends the canvas area it ran
// over to Areas, so a test can inspect exactly which rectangles a Place
// node chose without inferring it from painted token counts.
type recordingNode struct {
	Inner Node
	Areas *[]grid.Rect
}

func (n recordingNode) Eval(c token.Canvas, r *rng.RNG, pctx *pathfind.Context) bool {
	*n.Areas = append(*n.Areas, c.Area)
	return n.Inner.Eval(c, r, pctx)
}

func rectsOverlap(a, b grid.Rect) bool {
	return a.Px < b.Kx && b.Px < a.Kx && a.Py < b.Ky && b.Py < a.Ky
}

// Within a single Place invocation, every successfully placed footprint
// is pairwise disjoint from every earlier one.
func TestPropertyPlaceFootprintsDoNotOverlap(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.IntRange(6, 20).Draw(t, "width")
		h := rapid.IntRange(6, 20).Draw(t, "height")
		size := rapid.IntRange(1, 3).Draw(t, "size")
		count := rapid.IntRange(1, 5).Draw(t, "count")

		var areas []grid.Rect
		n := Place{Elems: []PlaceElem{
			{Size: grid.Vec2{X: size, Y: size}, Count: count, Generator: recordingNode{Inner: Set{Tokens: []token.Token{"#"}}, Areas: &areas}, Predicate: predicate.True{}},
		}}
		m := token.NewMap(w, h)
		c := token.NewCanvas(m)
		r := rng.New(rapid.Int64().Draw(t, "seed"))
		pctx := pathfind.NewContext(c.Area)
		n.Eval(c, r, pctx)

		for i := range areas {
			for j := range areas {
				if i != j && rectsOverlap(areas[i], areas[j]) {
					t.Fatalf("placement %d (%v) overlaps placement %d (%v)", i, areas[i], j, areas[j])
				}
			}
		}
	})
}
