package brief

import (
	"sync"

	"github.com/gogpu/brief/internal/parallel"
)

// minRowsPerTask keeps tasks large enough to amortize queueing.
const minRowsPerTask = 16

// ParallelBackend spreads keypoints over a persistent worker pool.
//
// Each task owns a contiguous range of rows, so tasks never write the same
// memory, and the prefix sum and pattern are only read. Evaluate returns
// after a single barrier once every task finished.
type ParallelBackend struct {
	mu      sync.Mutex
	workers int
	pool    *parallel.WorkerPool
}

func init() {
	RegisterBackend(BackendParallel, func() Backend {
		return &ParallelBackend{}
	})
}

// NewParallelBackend creates a parallel backend with the given number of
// workers. Zero or negative means GOMAXPROCS.
func NewParallelBackend(workers int) *ParallelBackend {
	return &ParallelBackend{workers: workers}
}

// Name returns the backend identifier.
func (*ParallelBackend) Name() string { return BackendParallel }

// Init starts the worker pool.
func (b *ParallelBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.pool == nil {
		b.pool = parallel.NewWorkerPool(b.workers)
	}
	return nil
}

// Close stops the worker pool. Evaluate keeps working afterwards, on the
// calling goroutine.
func (b *ParallelBackend) Close() {
	b.mu.Lock()
	pool := b.pool
	b.pool = nil
	b.mu.Unlock()
	if pool != nil {
		pool.Close()
	}
}

// Workers returns the pool size, or 0 before Init.
func (b *ParallelBackend) Workers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.pool == nil {
		return 0
	}
	return b.pool.Workers()
}

// Evaluate fills every row of job.Out.
func (b *ParallelBackend) Evaluate(job *Job) error {
	b.mu.Lock()
	pool := b.pool
	b.mu.Unlock()

	n := len(job.Keypoints)
	if pool == nil || n < 2*minRowsPerTask {
		job.EvaluateRange(0, n)
		return nil
	}
	pool.ParallelFor(n, minRowsPerTask, job.EvaluateRange)
	return nil
}
