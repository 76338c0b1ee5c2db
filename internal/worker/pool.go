package worker

import (
	"sync"

	"go.uber.org/zap"
)

// Task is a unit of work executed by the pool.
type Task func()

// Pool runs tasks on a fixed number of worker goroutines. Tasks are
// queued on a buffered channel; Submit reports whether the task was
// accepted.
type Pool struct {
	workers int
	tasks   chan Task
	wg      sync.WaitGroup
	logger  *zap.Logger

	mu     sync.RWMutex
	closed bool

	startOnce sync.Once
	stopOnce  sync.Once
}

// NewPool creates a pool with the given worker count and queue size.
// Both values are floored at 1.
func NewPool(workers, queueSize int, logger *zap.Logger) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pool{
		workers: workers,
		tasks:   make(chan Task, queueSize),
		logger:  logger,
	}
}

// Start launches the worker goroutines. Safe to call once; later calls
// are no-ops.
func (p *Pool) Start() {
	p.startOnce.Do(func() {
		p.logger.Info("starting worker pool", zap.Int("workers", p.workers))
		for i := 0; i < p.workers; i++ {
			p.wg.Add(1)
			go p.run(i)
		}
	})
}

func (p *Pool) run(id int) {
	defer p.wg.Done()
	for task := range p.tasks {
		task()
	}
	p.logger.Debug("worker stopped", zap.Int("worker_id", id))
}

// Submit enqueues a task without blocking. It returns false when the
// queue is full or the pool has been stopped.
func (p *Pool) Submit(task Task) bool {
	if task == nil {
		return false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}
	select {
	case p.tasks <- task:
		return true
	default:
		p.logger.Warn("task queue full, rejecting task")
		return false
	}
}

// Stop closes the queue and waits for in-flight tasks to finish.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()
		close(p.tasks)
		p.wg.Wait()
		p.logger.Info("worker pool stopped")
	})
}
