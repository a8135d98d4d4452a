package runs

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machine"
	"github.com/reusee/turing/modes"
)

var ErrStepLimit = errors.New("step limit exceeded")

type Run func(ctx context.Context, job Job) (*Report, error)

func (Module) Run(
	logger logs.Logger,
	newSpan logs.NewSpan,
	limits Limits,
	observe Observe,
	mode modes.Mode,
) Run {
	return func(ctx context.Context, job Job) (report *Report, err error) {
		ctx, _ = newSpan(ctx, "run "+job.Name)
		report = &Report{
			Job: job.Name,
		}
		defer func() {
			if err != nil {
				err = logs.WrapSpan(ctx, fmt.Errorf("job %s: %w", job.Name, err))
				report.Error = err.Error()
				logger.ErrorContext(ctx, "run failed",
					"job", job.Name,
					"steps", report.Steps,
					"error", err,
				)
			}
		}()

		m, err := job.Machine()
		if err != nil {
			return report, err
		}
		defer func() {
			report.Tape = m.Tape()
			report.State = m.State()
			report.Cursor = m.Cursor()
			report.Steps = m.Steps()
		}()

		logger.InfoContext(ctx, "run start",
			"job", job.Name,
			"rules", job.Program.Len(),
			"tape", len(job.Tape),
			"max_steps", limits.MaxSteps,
		)

		// ctx is also checked after each step; no step runs under a done ctx
		if err := ctx.Err(); err != nil {
			return report, err
		}
		for rule, err := range m.Run {
			if err != nil {
				return report, err
			}
			logger.DebugContext(ctx, "step",
				"n", m.Steps(),
				"from", rule.From,
				"read", rule.Read,
				"write", rule.Write,
				"move", rule.Move.String(),
				"to", rule.To,
			)
			observe(job, m, rule)
			if mode.Strict() {
				checkInvariants(job, m)
			}
			if m.Halted() {
				break
			}
			if limits.MaxSteps > 0 && m.Steps() >= limits.MaxSteps {
				return report, fmt.Errorf("%w: %d", ErrStepLimit, limits.MaxSteps)
			}
			if err := ctx.Err(); err != nil {
				return report, err
			}
		}

		report.Output = m.Result()
		logger.InfoContext(ctx, "run done",
			"job", job.Name,
			"steps", m.Steps(),
			"output", report.Output,
		)
		return report, nil
	}
}

func checkInvariants(job Job, m *machine.Machine[string, string]) {
	n := m.TapeLen()
	if n < 1 || n > len(job.Tape)+m.Steps() {
		panic(fmt.Errorf("job %s: tape length %d after %d steps from %d cells", job.Name, n, m.Steps(), len(job.Tape)))
	}
	if m.Cursor() < 0 || m.Cursor() >= n {
		panic(fmt.Errorf("job %s: cursor %d outside tape of length %d", job.Name, m.Cursor(), n))
	}
}
