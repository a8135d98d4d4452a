// Package programs holds the hand-written example programs, ready to run as jobs.
package programs

import (
	"github.com/reusee/turing/machine"
	"github.com/reusee/turing/runs"
)

const (
	Blank = " "
	Halt  = "stop"
)

type rule = machine.Rule[string, string]

func mustProgram(rules ...rule) *machine.Program[string, string] {
	program, err := machine.NewProgram(Blank, Halt, rules...)
	if err != nil {
		panic(err)
	}
	return program
}

var toggle = mustProgram(
	rule{From: "0", Read: Blank, Write: Blank, Move: machine.Right, To: Halt},
	rule{From: "0", Read: "0", Write: "1", Move: machine.Right, To: "0"},
	rule{From: "0", Read: "1", Write: "0", Move: machine.Right, To: "0"},
)

// Toggle flips every digit from the cursor toward the front of the tape. 110 becomes 001.
func Toggle() runs.Job {
	return runs.Job{
		Name:    "toggle",
		Program: toggle,
		Tape:    []string{"1", "1", "0"},
		State:   "0",
		Cursor:  2,
	}
}

var twoPass = mustProgram(
	rule{From: "0", Read: Blank, Write: Blank, Move: machine.Left, To: "1"},
	rule{From: "0", Read: "0", Write: "1", Move: machine.Right, To: "1"},
	rule{From: "0", Read: "1", Write: "0", Move: machine.Right, To: "0"},
	rule{From: "1", Read: Blank, Write: Blank, Move: machine.Right, To: Halt},
	rule{From: "1", Read: "0", Write: "1", Move: machine.Left, To: "1"},
	rule{From: "1", Read: "1", Write: "0", Move: machine.Left, To: "1"},
)

// TwoPass starts on a leading Blank and toggles every digit after it. _001 becomes 110.
func TwoPass() runs.Job {
	return runs.Job{
		Name:    "two_pass",
		Program: twoPass,
		Tape:    []string{Blank, "0", "0", "1"},
		State:   "0",
		Cursor:  0,
	}
}

func Builtins() map[string]runs.Job {
	ret := make(map[string]runs.Job)
	for _, job := range []runs.Job{
		Toggle(),
		TwoPass(),
	} {
		ret[job.Name] = job
	}
	return ret
}
