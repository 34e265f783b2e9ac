package pq

import (
	"testing"

	"github.com/ndaniels/astarpa/internal/geom"
)

func TestPushPopOrdering(t *testing.T) {
	q := New()
	q.Push(5, geom.Pos{I: 0, J: 0}, 5)
	q.Push(1, geom.Pos{I: 1, J: 1}, 1)
	q.Push(3, geom.Pos{I: 2, J: 2}, 3)

	want := []int{1, 3, 5}
	for _, w := range want {
		f, _, _, ok := q.Pop()
		if !ok {
			t.Fatalf("Pop() = not ok, want f=%d", w)
		}
		if f != w {
			t.Fatalf("Pop() f = %d, want %d", f, w)
		}
	}
	if _, _, _, ok := q.Pop(); ok {
		t.Fatalf("Pop() on empty queue returned ok=true")
	}
}

func TestShiftPreservesOrder(t *testing.T) {
	q := New()
	q.Push(10, geom.Pos{I: 0, J: 0}, 10)
	q.Push(20, geom.Pos{I: 1, J: 1}, 20)

	moved := q.Shift(4, 100)
	if moved != 2 {
		t.Fatalf("Shift moved = %d, want 2", moved)
	}

	f1, _, _, _ := q.Pop()
	f2, _, _, _ := q.Pop()
	if f1 != 14 || f2 != 24 {
		t.Fatalf("after Shift(4, 100), pops = %d, %d, want 14, 24", f1, f2)
	}
}

func TestShiftGuardedByRecentPushes(t *testing.T) {
	q := New()
	q.Push(50, geom.Pos{I: 0, J: 0}, 50)

	if moved := q.Shift(5, 10); moved != 0 {
		t.Fatalf("Shift with a too-high recent push should be a no-op, moved = %d", moved)
	}
	if q.DownShift() != 0 {
		t.Fatalf("down_shift changed despite guard rejecting the shift")
	}
}

func TestEqualPriorityBothPop(t *testing.T) {
	q := New()
	q.Push(3, geom.Pos{I: 0, J: 0}, 0)
	q.Push(3, geom.Pos{I: 1, J: 1}, 0)

	f1, _, _, _ := q.Pop()
	f2, _, _, _ := q.Pop()
	if f1 != 3 || f2 != 3 {
		t.Fatalf("equal-priority pops = %d, %d, want 3, 3", f1, f2)
	}
}
