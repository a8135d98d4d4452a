package machine

import (
	"fmt"

	"github.com/samber/lo"
)

type Machine[S, Q comparable] struct {
	program *Program[S, Q]
	tape    *Tape[S]
	state   Q
	cursor  int
	steps   int
}

func New[S, Q comparable](
	program *Program[S, Q],
	tape []S,
	state Q,
	cursor int,
) (*Machine[S, Q], error) {
	if program == nil {
		return nil, ErrNilProgram
	}
	if len(tape) == 0 {
		return nil, ErrEmptyTape
	}
	if cursor < 0 || cursor >= len(tape) {
		return nil, fmt.Errorf("%w: cursor %d, tape length %d", ErrCursorOutOfRange, cursor, len(tape))
	}
	return &Machine[S, Q]{
		program: program,
		tape:    NewTape(tape),
		state:   state,
		cursor:  cursor,
	}, nil
}

func (m *Machine[S, Q]) Program() *Program[S, Q] {
	return m.program
}

func (m *Machine[S, Q]) State() Q {
	return m.state
}

func (m *Machine[S, Q]) Cursor() int {
	return m.cursor
}

func (m *Machine[S, Q]) Steps() int {
	return m.steps
}

func (m *Machine[S, Q]) TapeLen() int {
	return m.tape.Len()
}

// Tape returns a copy of the materialized tape, Blanks included.
func (m *Machine[S, Q]) Tape() []S {
	return m.tape.Cells()
}

func (m *Machine[S, Q]) Halted() bool {
	return m.state == m.program.halt
}

// Step applies one rule. A failed lookup leaves tape, cursor and state untouched.
func (m *Machine[S, Q]) Step() (rule Rule[S, Q], err error) {
	if m.Halted() {
		return rule, ErrHalted
	}
	symbol := m.tape.At(m.cursor)
	rule, ok := m.program.Lookup(m.state, symbol)
	if !ok {
		return rule, &LookupError[S, Q]{
			State:  m.state,
			Symbol: symbol,
		}
	}
	m.tape.Set(m.cursor, rule.Write)
	switch rule.Move {
	case Right:
		m.moveRight()
	case Left:
		m.moveLeft()
	}
	m.state = rule.To
	m.steps++
	return rule, nil
}

func (m *Machine[S, Q]) moveRight() {
	if m.cursor == 0 {
		m.tape.PushFront(m.program.blank)
		return
	}
	m.cursor--
}

func (m *Machine[S, Q]) moveLeft() {
	m.cursor++
	if m.cursor >= m.tape.Len() {
		m.tape.PushBack(m.program.blank)
	}
}

// Run steps the machine until it halts, yielding every applied rule.
// Breaking out of the loop leaves the machine between two steps; ranging over Run again resumes it.
func (m *Machine[S, Q]) Run(yield func(Rule[S, Q], error) bool) {
	for !m.Halted() {
		rule, err := m.Step()
		if err != nil {
			yield(rule, err)
			return
		}
		if !yield(rule, nil) {
			return
		}
	}
}

// Execute runs to completion and returns the tape with Blanks removed.
func (m *Machine[S, Q]) Execute() ([]S, error) {
	for _, err := range m.Run {
		if err != nil {
			return nil, err
		}
	}
	return m.Result(), nil
}

func (m *Machine[S, Q]) Result() []S {
	return lo.Filter(m.tape.Cells(), func(symbol S, _ int) bool {
		return symbol != m.program.blank
	})
}
