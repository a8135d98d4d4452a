package machine

import "slices"

// Tape is the materialized part of an unbounded tape.
// Logical cell i lives at cells[start+i]; the free prefix cells[:start] is headroom for front insertion.
type Tape[S any] struct {
	cells []S
	start int
}

func NewTape[S any](cells []S) *Tape[S] {
	return &Tape[S]{
		cells: slices.Clone(cells),
	}
}

func (t *Tape[S]) Len() int {
	return len(t.cells) - t.start
}

func (t *Tape[S]) At(i int) S {
	return t.cells[t.start+i]
}

func (t *Tape[S]) Set(i int, symbol S) {
	t.cells[t.start+i] = symbol
}

func (t *Tape[S]) PushBack(symbol S) {
	t.cells = append(t.cells, symbol)
}

func (t *Tape[S]) PushFront(symbol S) {
	if t.start == 0 {
		t.growFront()
	}
	t.start--
	t.cells[t.start] = symbol
}

func (t *Tape[S]) growFront() {
	n := t.Len()
	headroom := n
	if headroom < 8 {
		headroom = 8
	}
	newCells := make([]S, headroom+n, headroom+n*2)
	copy(newCells[headroom:], t.cells[t.start:])
	t.cells = newCells
	t.start = headroom
}

func (t *Tape[S]) Cells() []S {
	return slices.Clone(t.cells[t.start:])
}
