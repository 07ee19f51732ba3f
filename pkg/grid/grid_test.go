package grid

import "testing"

func TestRectCellsColumnMajor(t *testing.T) {
	r := Rect{0, 0, 2, 3}
	cells := r.Cells()
	want := []Vec2{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	if len(cells) != len(want) {
		t.Fatalf("got %d cells, want %d", len(cells), len(want))
	}
	for i, c := range want {
		if cells[i] != c {
			t.Errorf("cell %d: got %v, want %v", i, cells[i], c)
		}
	}
}

func TestRectMinusMargin(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	got := r.MinusMargin(2)
	want := Rect{2, 2, 8, 8}
	if got != want {
		t.Errorf("MinusMargin(2) = %v, want %v", got, want)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{1, 1, 4, 4}
	if !r.Contains(Vec2{1, 1}) {
		t.Error("expected top-left to be contained")
	}
	if r.Contains(Vec2{4, 4}) {
		t.Error("bottom-right is exclusive, should not be contained")
	}
	if r.Contains(Vec2{0, 2}) {
		t.Error("point outside rect reported contained")
	}
}

func TestRectContainsRect(t *testing.T) {
	outer := Rect{0, 0, 10, 10}
	inner := Rect{2, 2, 8, 8}
	if !outer.ContainsRect(inner) {
		t.Error("expected outer to contain inner")
	}
	if outer.ContainsRect(Rect{-1, 0, 5, 5}) {
		t.Error("rect extending past bounds should not be contained")
	}
}

func TestTableGetSet(t *testing.T) {
	tbl := NewTable[int](3, 3)
	tbl.Set(Vec2{1, 2}, 42)
	if got := tbl.Get(Vec2{1, 2}); got != 42 {
		t.Errorf("Get = %d, want 42", got)
	}
	if got := tbl.Get(Vec2{0, 0}); got != 0 {
		t.Errorf("zero value Get = %d, want 0", got)
	}
}

func TestTableOutOfBoundsPanics(t *testing.T) {
	tbl := NewTable[int](2, 2)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for out-of-bounds access")
		}
	}()
	tbl.Get(Vec2{5, 5})
}

func TestVec2Less(t *testing.T) {
	if !(Vec2{1, 5}).Less(Vec2{2, 0}) {
		t.Error("expected (1,5) < (2,0)")
	}
	if !(Vec2{1, 0}).Less(Vec2{1, 5}) {
		t.Error("expected (1,0) < (1,5)")
	}
	if (Vec2{1, 1}).Less(Vec2{1, 1}) {
		t.Error("expected equal points to not be Less")
	}
}

func TestVec2Dist4(t *testing.T) {
	if got := (Vec2{0, 0}).Dist4(Vec2{3, 4}); got != 7 {
		t.Errorf("Dist4 = %d, want 7", got)
	}
}
