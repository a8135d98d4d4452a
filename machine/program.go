package machine

import (
	"fmt"
	"slices"
)

type Rule[S, Q comparable] struct {
	From  Q
	Read  S
	Write S
	Move  Direction
	To    Q
}

type ruleKey[S, Q comparable] struct {
	state  Q
	symbol S
}

// Program is an immutable rule table. It may be shared by any number of machines.
type Program[S, Q comparable] struct {
	blank S
	halt  Q
	rules []Rule[S, Q]
	// (state, symbol) -> position of the first rule matching it
	index map[ruleKey[S, Q]]int
}

func NewProgram[S, Q comparable](blank S, halt Q, rules ...Rule[S, Q]) (*Program[S, Q], error) {
	p := &Program[S, Q]{
		blank: blank,
		halt:  halt,
		rules: slices.Clone(rules),
		index: make(map[ruleKey[S, Q]]int, len(rules)),
	}
	for i, rule := range p.rules {
		if !rule.Move.valid() {
			return nil, fmt.Errorf("rule %d: %w: %v", i, ErrBadDirection, rule.Move)
		}
		if rule.From == halt {
			return nil, fmt.Errorf("rule %d: %w", i, ErrRuleFromHalt)
		}
		key := ruleKey[S, Q]{
			state:  rule.From,
			symbol: rule.Read,
		}
		if _, ok := p.index[key]; ok {
			// first match wins
			continue
		}
		p.index[key] = i
	}
	return p, nil
}

func (p *Program[S, Q]) Blank() S {
	return p.blank
}

func (p *Program[S, Q]) Halt() Q {
	return p.halt
}

func (p *Program[S, Q]) Len() int {
	return len(p.rules)
}

func (p *Program[S, Q]) Rules() []Rule[S, Q] {
	return slices.Clone(p.rules)
}

func (p *Program[S, Q]) Lookup(state Q, symbol S) (rule Rule[S, Q], ok bool) {
	i, ok := p.index[ruleKey[S, Q]{
		state:  state,
		symbol: symbol,
	}]
	if !ok {
		return
	}
	return p.rules[i], true
}
