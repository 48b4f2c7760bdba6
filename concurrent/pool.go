package concurrent

import (
	"context"
	"runtime"
	"sync"
)

var defaultConcurrency = runtime.NumCPU()

// PoolInput to a pool operation
type PoolInput[T any] struct {
	OutC     chan<- Result[T]
	Supplier Supplier[T]
}

// PoolOpts is the configuration for a PoolRunner
type PoolOpts struct {
	// Concurrency is the number of Suppliers that the pool can
	// run in parallel at most
	Concurrency int
}

// PoolRunner has a fixed number of goroutines that are used to run
// an arbitrary number of tasks. A PoolRunner is a convenient way to
// execute multiple operations in parallel having control on how
// many go routines are run in the system.
type PoolRunner[T any] struct {
	opts PoolOpts
	wg   sync.WaitGroup
	ctx  context.Context

	// inC is the channel used to send operations to the PoolRunner. If
	// PoolInput.OutC is set, the result of the supplier will be sent
	// to that channel, otherwise the result will be ignored
	inC chan PoolInput[T]
}

// NewPoolRunner creates and starts a new PoolRunner with the
// default configuration parameters
func NewPoolRunner[T any](ctx context.Context) *PoolRunner[T] {
	return NewPoolRunnerWithOpts[T](ctx, PoolOpts{
		Concurrency: defaultConcurrency,
	})
}

// NewPoolRunnerWithOpts creates a new PoolRunner with the specified
// configuration
func NewPoolRunnerWithOpts[T any](ctx context.Context, opts PoolOpts) *PoolRunner[T] {
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}

	runner := &PoolRunner[T]{
		opts: opts,
		ctx:  ctx,
		inC:  make(chan PoolInput[T], opts.Concurrency),
	}

	runner.wg.Add(opts.Concurrency)
	for i := 0; i < opts.Concurrency; i++ {
		go runner.run(ctx, runner.inC)
	}

	return runner
}

// Run schedules the input's supplier on the pool. It blocks until
// there is room for the input or the pool's context is done
func (r *PoolRunner[T]) Run(input PoolInput[T]) error {
	if err := r.ctx.Err(); err != nil {
		return err
	}

	select {
	case <-r.ctx.Done():
		return r.ctx.Err()
	case r.inC <- input:
		return nil
	}
}

func (r *PoolRunner[T]) run(ctx context.Context, inC <-chan PoolInput[T]) {
	defer r.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inC:
			if !ok {
				return
			}

			v, err := in.Supplier.Supply()

			if in.OutC != nil {
				in.OutC <- Result[T]{value: v, err: err}
			}
		}
	}
}

// Stop orderly stops all the goroutines in the PoolRunner
// and returns once all the goroutines have exited
func (r *PoolRunner[T]) Stop() {
	close(r.inC)
	r.wg.Wait()
}
