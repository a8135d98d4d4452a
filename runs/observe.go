package runs

import "github.com/reusee/turing/machine"

// Observe is called after every step, with the machine already in its post-step configuration.
type Observe func(job Job, m *machine.Machine[string, string], rule machine.Rule[string, string])

func (Module) Observe() Observe {
	return func(Job, *machine.Machine[string, string], machine.Rule[string, string]) {}
}
