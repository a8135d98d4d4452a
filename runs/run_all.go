package runs

import (
	"context"
	"errors"
	"sync"

	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/syncs"
)

// RunAll runs jobs concurrently. Reports are in job order; errors of all failed jobs are joined.
type RunAll func(ctx context.Context, jobs []Job) ([]*Report, error)

func (Module) RunAll(
	run Run,
	limits Limits,
	newSpan logs.NewSpan,
) RunAll {
	return func(ctx context.Context, jobs []Job) ([]*Report, error) {
		ctx, _ = newSpan(ctx, "batch")
		sem := syncs.NewSemaphore(limits.Parallel)
		reports := make([]*Report, len(jobs))
		errs := make([]error, len(jobs))

		var wg sync.WaitGroup
		for i, job := range jobs {
			err := ctx.Err()
			if err == nil {
				err = sem.Acquire(ctx)
			}
			if err != nil {
				for j := i; j < len(jobs); j++ {
					reports[j] = &Report{
						Job:   jobs[j].Name,
						Error: err.Error(),
					}
					errs[j] = err
				}
				break
			}
			wg.Go(func() {
				defer sem.Release()
				reports[i], errs[i] = run(ctx, job)
			})
		}
		wg.Wait()

		return reports, errors.Join(errs...)
	}
}
