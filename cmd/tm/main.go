package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/reusee/dscope"
	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/debugs"
	"github.com/reusee/turing/machine"
	"github.com/reusee/turing/modes"
	"github.com/reusee/turing/programs"
	"github.com/reusee/turing/runs"
	"github.com/reusee/turing/tmconfigs"
	"github.com/reusee/turing/views"
	"github.com/samber/lo"
)

var (
	jobNames     = cmds.Collect[string]("run")
	builtinNames = cmds.Collect[string]("builtin")
	list         = cmds.Switch("list")
	trace        = cmds.Switch("-trace")
	asYAML       = cmds.Switch("-yaml")
	tap          = cmds.Switch("-tap")
	evals        = cmds.Collect[string]("-eval")
)

var errUnknownJob = errors.New("unknown job")

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)
	if *trace {
		scope = scope.Fork(func() runs.Observe {
			return traceObserver(os.Stdout)
		})
	}

	var err error
	scope.Call(func(
		loadJobs tmconfigs.LoadJobs,
		runAll runs.RunAll,
		tapFn debugs.Tap,
	) {
		err = run(context.Background(), os.Stdout, loadJobs, runAll, tapFn)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(
	ctx context.Context,
	out io.Writer,
	loadJobs tmconfigs.LoadJobs,
	runAll runs.RunAll,
	tapFn debugs.Tap,
) error {
	configured, err := loadJobs()
	if err != nil {
		return err
	}
	builtins := programs.Builtins()

	if *list {
		for _, name := range configured.Names() {
			fmt.Fprintf(out, "%s\t%d rules\n", name, configured[name].Program.Len())
		}
		names := lo.Keys(builtins)
		slices.Sort(names)
		for _, name := range names {
			fmt.Fprintf(out, "builtin %s\t%d rules\n", name, builtins[name].Program.Len())
		}
	}

	var jobs []runs.Job
	for _, name := range *jobNames {
		job, ok := configured[name]
		if !ok {
			return fmt.Errorf("%w: %s", errUnknownJob, name)
		}
		jobs = append(jobs, job)
	}
	for _, name := range *builtinNames {
		job, ok := builtins[name]
		if !ok {
			return fmt.Errorf("%w: builtin %s", errUnknownJob, name)
		}
		jobs = append(jobs, job)
	}
	if len(jobs) == 0 {
		return nil
	}

	reports, runErr := runAll(ctx, jobs)

	if *asYAML {
		if err := runs.WriteYAML(out, reports); err != nil {
			return err
		}
	} else {
		for _, report := range reports {
			if report.Error != "" {
				fmt.Fprintf(out, "%s\terror: %s\n", report.Job, report.Error)
				continue
			}
			fmt.Fprintf(out, "%s\t%s\t(%d steps)\n", report.Job, strings.Join(report.Output, " "), report.Steps)
		}
	}

	for i, report := range reports {
		globals := debugs.ReportGlobals(report, jobs[i].Program.Blank())
		for _, expr := range *evals {
			value, err := debugs.Eval(expr, globals)
			if err != nil {
				return fmt.Errorf("eval %q on %s: %w", expr, report.Job, err)
			}
			fmt.Fprintf(out, "%s\t%s = %s\n", report.Job, expr, value)
		}
		if *tap {
			tapFn(ctx, report.Job, globals)
		}
	}

	return runErr
}

func traceObserver(w io.Writer) runs.Observe {
	var l sync.Mutex
	return func(job runs.Job, m *machine.Machine[string, string], rule machine.Rule[string, string]) {
		l.Lock()
		defer l.Unlock()
		fmt.Fprintf(w, "%s %s\n",
			job.Name,
			views.RenderStep(m.Steps(), m.State(), m.Halted(), m.Tape(), m.Cursor(), job.Program.Blank()),
		)
	}
}
