package runs

import "github.com/reusee/turing/machine"

// Job is one machine run: a shared program plus the initial configuration of a fresh machine.
type Job struct {
	Name    string
	Program *machine.Program[string, string]
	Tape    []string
	State   string
	Cursor  int
}

func (j Job) Machine() (*machine.Machine[string, string], error) {
	return machine.New(j.Program, j.Tape, j.State, j.Cursor)
}
