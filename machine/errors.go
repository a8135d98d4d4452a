package machine

import (
	"errors"
	"fmt"
)

var (
	ErrNilProgram       = errors.New("nil program")
	ErrEmptyTape        = errors.New("empty tape")
	ErrCursorOutOfRange = errors.New("cursor out of range")
	ErrNoRule           = errors.New("no matching rule")
	ErrBadDirection     = errors.New("bad direction")
	ErrRuleFromHalt     = errors.New("rule leaves halt state")
	ErrHalted           = errors.New("machine halted")
)

// LookupError reports a (state, symbol) pair the program has no rule for.
type LookupError[S, Q comparable] struct {
	State  Q
	Symbol S
}

func (e *LookupError[S, Q]) Error() string {
	return fmt.Sprintf("no rule for state %#v reading symbol %#v", e.State, e.Symbol)
}

func (e *LookupError[S, Q]) Unwrap() error {
	return ErrNoRule
}
