package runs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machine"
	"github.com/reusee/turing/modes"
)

type rule = machine.Rule[string, string]

func newTestScope(t *testing.T, defs ...any) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Fork(
		func() logs.Writer {
			return t.Output()
		},
	).Fork(defs...)
}

func toggleJob(t *testing.T, name string, tape ...string) Job {
	program, err := machine.NewProgram(" ", "stop",
		rule{From: "0", Read: " ", Write: " ", Move: machine.Right, To: "stop"},
		rule{From: "0", Read: "0", Write: "1", Move: machine.Right, To: "0"},
		rule{From: "0", Read: "1", Write: "0", Move: machine.Right, To: "0"},
	)
	if err != nil {
		t.Fatal(err)
	}
	return Job{
		Name:    name,
		Program: program,
		Tape:    tape,
		State:   "0",
		Cursor:  len(tape) - 1,
	}
}

func foreverJob(t *testing.T) Job {
	program, err := machine.NewProgram(" ", "stop",
		rule{From: "0", Read: " ", Write: "x", Move: machine.Right, To: "0"},
	)
	if err != nil {
		t.Fatal(err)
	}
	return Job{
		Name:    "forever",
		Program: program,
		Tape:    []string{" "},
		State:   "0",
	}
}

func TestRun(t *testing.T) {
	newTestScope(t).Call(func(
		run Run,
	) {
		report, err := run(t.Context(), toggleJob(t, "toggle", "1", "1", "0"))
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(report.Output, []string{"0", "0", "1"}) {
			t.Fatalf("got %v", report.Output)
		}
		if !slices.Equal(report.Tape, []string{" ", " ", "0", "0", "1"}) {
			t.Fatalf("got %q", report.Tape)
		}
		if report.Steps != 4 || report.State != "stop" || report.Cursor != 0 {
			t.Fatalf("got %+v", report)
		}
		if report.Error != "" {
			t.Fatalf("got %v", report.Error)
		}
	})
}

func TestRunLookupFailure(t *testing.T) {
	newTestScope(t).Call(func(
		run Run,
	) {
		job := toggleJob(t, "bad", "2")
		report, err := run(t.Context(), job)
		if !errors.Is(err, machine.ErrNoRule) {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(err.Error(), "job bad") {
			t.Fatalf("got %v", err)
		}
		if report.Error == "" || report.Output != nil || report.Steps != 0 {
			t.Fatalf("got %+v", report)
		}
		if !slices.Equal(report.Tape, []string{"2"}) {
			t.Fatalf("got %v", report.Tape)
		}
	})
}

func TestRunConstructionFailure(t *testing.T) {
	newTestScope(t).Call(func(
		run Run,
	) {
		job := toggleJob(t, "bad", "1", "1", "0")
		job.Cursor = 5
		report, err := run(t.Context(), job)
		if !errors.Is(err, machine.ErrCursorOutOfRange) {
			t.Fatalf("got %v", err)
		}
		if report.Error == "" || report.Tape != nil {
			t.Fatalf("got %+v", report)
		}
	})
}

func TestRunStepLimit(t *testing.T) {
	newTestScope(t, func() Limits {
		return Limits{
			MaxSteps: 10,
			Parallel: 1,
		}
	}).Call(func(
		run Run,
	) {
		report, err := run(t.Context(), foreverJob(t))
		if !errors.Is(err, ErrStepLimit) {
			t.Fatalf("got %v", err)
		}
		if report.Steps != 10 {
			t.Fatalf("got %v", report.Steps)
		}
		if len(report.Tape) != 11 {
			t.Fatalf("got %v", len(report.Tape))
		}

		// halting exactly at the limit is not an error
		report, err = run(t.Context(), toggleJob(t, "toggle", "1", "1", "1", "1", "1", "1", "1", "1", "1"))
		if err != nil {
			t.Fatal(err)
		}
		if report.Steps != 10 {
			t.Fatalf("got %v", report.Steps)
		}
	})
}

func TestRunCanceled(t *testing.T) {
	newTestScope(t).Call(func(
		run Run,
	) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		report, err := run(ctx, foreverJob(t))
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("got %v", err)
		}
		if report.Steps != 0 {
			t.Fatalf("got %v", report.Steps)
		}
		if !slices.Equal(report.Tape, []string{" "}) || report.State != "0" || report.Cursor != 0 {
			t.Fatalf("got %+v", report)
		}
	})
}

func TestRunObserve(t *testing.T) {
	var states []string
	newTestScope(t, func() Observe {
		return func(job Job, m *machine.Machine[string, string], rule machine.Rule[string, string]) {
			states = append(states, fmt.Sprintf("%d:%s", m.Steps(), rule.To))
		}
	}).Call(func(
		run Run,
	) {
		if _, err := run(t.Context(), toggleJob(t, "toggle", "0", "1")); err != nil {
			t.Fatal(err)
		}
	})
	if str := strings.Join(states, " "); str != "1:0 2:0 3:stop" {
		t.Fatalf("got %s", str)
	}
}

func TestRunAll(t *testing.T) {
	newTestScope(t, func() Limits {
		return Limits{
			Parallel: 4,
		}
	}).Call(func(
		runAll RunAll,
	) {
		base := toggleJob(t, "base", "0")
		var jobs []Job
		for i := range 20 {
			tape := strings.Split(fmt.Sprintf("%b", i), "")
			jobs = append(jobs, Job{
				Name:    fmt.Sprintf("job%d", i),
				Program: base.Program,
				Tape:    tape,
				State:   "0",
				Cursor:  len(tape) - 1,
			})
		}
		jobs = append(jobs, toggleJob(t, "bad", "1", "x"))

		reports, err := runAll(t.Context(), jobs)
		if !errors.Is(err, machine.ErrNoRule) {
			t.Fatalf("got %v", err)
		}
		if len(reports) != len(jobs) {
			t.Fatalf("got %v", len(reports))
		}
		for i, report := range reports[:20] {
			if report.Job != jobs[i].Name {
				t.Fatalf("got %v", report.Job)
			}
			if report.Error != "" {
				t.Fatalf("%s: %s", report.Job, report.Error)
			}
			var want []string
			for _, digit := range jobs[i].Tape {
				if digit == "0" {
					want = append(want, "1")
				} else {
					want = append(want, "0")
				}
			}
			if !slices.Equal(report.Output, want) {
				t.Fatalf("%s: got %v, want %v", report.Job, report.Output, want)
			}
		}
		if reports[20].Error == "" {
			t.Fatal("should fail")
		}
	})
}

func TestRunAllCanceled(t *testing.T) {
	newTestScope(t).Call(func(
		runAll RunAll,
	) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		jobs := []Job{
			toggleJob(t, "a", "1"),
			toggleJob(t, "b", "0"),
		}
		reports, err := runAll(ctx, jobs)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("got %v", err)
		}
		for i, report := range reports {
			if report == nil || report.Job != jobs[i].Name {
				t.Fatalf("got %+v", report)
			}
			if report.Steps != 0 {
				t.Fatalf("got %+v", report)
			}
		}
	})
}

func TestRunAllCanceledNeverSteps(t *testing.T) {
	var stepped atomic.Int64
	newTestScope(t, func() Limits {
		return Limits{
			Parallel: 4,
		}
	}, func() Observe {
		return func(Job, *machine.Machine[string, string], machine.Rule[string, string]) {
			stepped.Add(1)
		}
	}).Call(func(
		runAll RunAll,
	) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		for range 200 {
			reports, err := runAll(ctx, []Job{toggleJob(t, "toggle", "1")})
			if !errors.Is(err, context.Canceled) {
				t.Fatalf("got %v", err)
			}
			if reports[0].Steps != 0 {
				t.Fatalf("got %+v", reports[0])
			}
		}
	})
	if n := stepped.Load(); n != 0 {
		t.Fatalf("got %v", n)
	}
}

func TestLimits(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader([]string{"testdata/limits.cue"}, "")),
	).Call(func(
		limits Limits,
	) {
		if limits.MaxSteps != 50 || limits.Parallel != 3 {
			t.Fatalf("got %+v", limits)
		}
	})

	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		limits Limits,
	) {
		if limits.MaxSteps != 0 || limits.Parallel != runtime.NumCPU() {
			t.Fatalf("got %+v", limits)
		}
	})
}

func TestNegativeLimitFlags(t *testing.T) {
	for _, name := range []string{"-max-steps", "-parallel"} {
		err := cmds.GlobalExecutor.Execute([]string{name, "-1"})
		if !errors.Is(err, ErrNegativeLimit) {
			t.Fatalf("got %v", err)
		}
	}
	if *maxStepsFlag != 0 || *parallelFlag != 0 {
		t.Fatalf("got %v %v", *maxStepsFlag, *parallelFlag)
	}

	cmds.GlobalExecutor.MustExecute([]string{"-max-steps", "7"})
	defer cmds.GlobalExecutor.MustExecute([]string{"-max-steps."})
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		limits Limits,
	) {
		if limits.MaxSteps != 7 {
			t.Fatalf("got %+v", limits)
		}
	})
}

func TestWriteYAML(t *testing.T) {
	buf := new(bytes.Buffer)
	err := WriteYAML(buf, []*Report{
		{
			Job:    "toggle",
			Output: []string{"0", "0", "1"},
			Tape:   []string{" ", " ", "0", "0", "1"},
			State:  "stop",
			Steps:  4,
		},
		{
			Job:   "bad",
			Error: "no rule",
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"- job: toggle",
		"steps: 4",
		"state: stop",
		"error: no rule",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Count(out, "error:") != 1 {
		t.Fatalf("got %s", out)
	}
}
