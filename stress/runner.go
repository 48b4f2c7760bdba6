package stress

import (
	"context"
	"sort"

	"github.com/eaugeas/rbtree/concurrent"
	"github.com/eaugeas/rbtree/logs"
	"github.com/pkg/errors"
)

// Report aggregates the results of a set of trials
type Report struct {
	Trials  int           `json:"trials"`
	Failed  int           `json:"failed"`
	Results []TrialResult `json:"results"`
}

// Runner runs trials in parallel. Every trial owns its tree, so
// no tree is ever accessed by more than one goroutine
type Runner struct {
	logger      logs.Logger
	concurrency int
}

// NewRunner creates a Runner that runs up to concurrency
// trials at once
func NewRunner(logger logs.Logger, concurrency int) *Runner {
	return &Runner{logger: logger, concurrency: concurrency}
}

// Run executes all the trials and waits for their results. It
// only fails if ctx is done before all the trials complete
func (r *Runner) Run(ctx context.Context, trials []Trial) (Report, error) {
	pool := concurrent.NewPoolRunnerWithOpts[TrialResult](ctx, concurrent.PoolOpts{
		Concurrency: r.concurrency,
	})
	defer pool.Stop()

	resC := make(chan concurrent.Result[TrialResult], len(trials))
	for _, trial := range trials {
		if err := pool.Run(concurrent.PoolInput[TrialResult]{
			Supplier: concurrent.SupplierFunc[TrialResult](trial.Run),
			OutC:     resC,
		}); err != nil {
			return Report{}, errors.Wrapf(err, "failed to schedule trial %d", trial.ID)
		}
	}

	report := Report{Trials: len(trials)}
	for range trials {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		case res := <-resC:
			result := res.Value()
			if res.Err() != nil {
				report.Failed++
				r.logger.Warn(ctx, "trial failed", result)
			} else {
				r.logger.Info(ctx, "trial passed", result)
			}
			report.Results = append(report.Results, result)
		}
	}

	sort.Slice(report.Results, func(i, j int) bool {
		return report.Results[i].ID < report.Results[j].ID
	})

	return report, nil
}
