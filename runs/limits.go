package runs

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/vars"
)

var ErrNegativeLimit = errors.New("negative limit")

var (
	maxStepsFlag = limitFlag("-max-steps")
	parallelFlag = limitFlag("-parallel")
)

func limitFlag(name string) *int {
	var value int
	cmds.Define(name, cmds.Func(func(n int) error {
		if n < 0 {
			return fmt.Errorf("%w: %d", ErrNegativeLimit, n)
		}
		value = n
		return nil
	}))
	cmds.Define(name+".", cmds.Func(func() {
		value = 0
	}).Desc("reset "+name))
	return &value
}

type Limits struct {
	// zero means no limit
	MaxSteps int `json:"max_steps"`
	Parallel int `json:"parallel"`
}

func (Module) Limits(
	loader configs.Loader,
) Limits {
	configured := configs.First[Limits](loader, "limits")
	limits := Limits{
		MaxSteps: vars.FirstNonZero(*maxStepsFlag, configured.MaxSteps),
		Parallel: vars.FirstNonZero(*parallelFlag, configured.Parallel, runtime.NumCPU()),
	}
	if limits.MaxSteps < 0 || limits.Parallel < 0 {
		panic(fmt.Errorf("%w: %+v", ErrNegativeLimit, limits))
	}
	return limits
}
