package machine

import (
	"slices"
	"testing"
)

func TestTapePushFront(t *testing.T) {
	tape := NewTape([]int{0})
	for i := 1; i <= 100; i++ {
		tape.PushFront(i)
		if tape.Len() != i+1 {
			t.Fatalf("got %v", tape.Len())
		}
		if tape.At(0) != i {
			t.Fatalf("got %v", tape.At(0))
		}
		if tape.At(tape.Len()-1) != 0 {
			t.Fatalf("got %v", tape.At(tape.Len()-1))
		}
	}
	cells := tape.Cells()
	for i, cell := range cells {
		if cell != 100-i {
			t.Fatalf("cell %d: got %v", i, cell)
		}
	}
}

func TestTapeMixedGrowth(t *testing.T) {
	initial := []string{"b"}
	tape := NewTape(initial)
	tape.PushFront("a")
	tape.PushBack("c")
	tape.PushFront("_")
	tape.PushBack("d")
	tape.Set(0, "z")
	if cells := tape.Cells(); !slices.Equal(cells, []string{"z", "a", "b", "c", "d"}) {
		t.Fatalf("got %v", cells)
	}
	if initial[0] != "b" {
		t.Fatalf("got %v", initial)
	}
	// Cells is a copy
	cells := tape.Cells()
	cells[2] = "x"
	if tape.At(2) != "b" {
		t.Fatalf("got %v", tape.At(2))
	}
}
