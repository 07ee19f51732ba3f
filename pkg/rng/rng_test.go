package rng

import "testing"

func TestDeterminism(t *testing.T) {
	r1 := New(12345)
	r2 := New(12345)
	for i := 0; i < 200; i++ {
		if a, b := r1.Int(0, 1000), r2.Int(0, 1000); a != b {
			t.Fatalf("iteration %d: Int diverged: %d vs %d", i, a, b)
		}
	}
}

func TestIntRange(t *testing.T) {
	r := New(1)
	for i := 0; i < 500; i++ {
		v := r.Int(5, 10)
		if v < 5 || v >= 10 {
			t.Fatalf("Int(5,10) out of range: %d", v)
		}
	}
}

func TestIntPanicsOnEmptyRange(t *testing.T) {
	r := New(1)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for hi <= lo")
		}
	}()
	r.Int(5, 5)
}

func TestF64Range(t *testing.T) {
	r := New(2)
	for i := 0; i < 500; i++ {
		v := r.F64()
		if v < 0 || v >= 1 {
			t.Fatalf("F64 out of range: %f", v)
		}
	}
}

func TestF64RangeBounds(t *testing.T) {
	r := New(3)
	for i := 0; i < 500; i++ {
		v := r.F64Range(2.0, 4.0)
		if v < 2.0 || v >= 4.0 {
			t.Fatalf("F64Range(2,4) out of range: %f", v)
		}
	}
}

func TestChanceAlwaysConsumesEntropy(t *testing.T) {
	r1 := New(7)
	r2 := New(7)
	r1.Chance(0) // should still draw
	v1 := r1.F64()
	v2 := r2.F64()
	if v1 == v2 {
		t.Error("Chance(0) did not consume a draw")
	}
}

func TestChanceBoundaries(t *testing.T) {
	r := New(9)
	trueCount := 0
	for i := 0; i < 1000; i++ {
		if r.Chance(1.0) {
			trueCount++
		}
	}
	if trueCount != 1000 {
		t.Errorf("Chance(1.0) should always be true, got %d/1000", trueCount)
	}
}

func TestChooseDeterministic(t *testing.T) {
	v := []string{"a", "b", "c", "d"}
	r1 := New(55)
	r2 := New(55)
	for i := 0; i < 50; i++ {
		if Choose(r1, v) != Choose(r2, v) {
			t.Fatalf("iteration %d: Choose diverged", i)
		}
	}
}

func TestChoosePanicsOnEmpty(t *testing.T) {
	r := New(1)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for empty slice")
		}
	}()
	Choose(r, []int{})
}
