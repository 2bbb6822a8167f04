package worker

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Task represents a unit of background work, such as a notification write.
type Task func()

// Pool defines a simple worker pool.
type Pool interface {
	Submit(Task)
	Stop()
}

// QueueSize is how many tasks may wait for a free worker.
const QueueSize = 256

// NewPool creates a pool with n workers. n<=0 defaults to 1.
// A panicking task is logged and does not take its worker down.
// Submit never blocks: when the queue is full the task is dropped and logged.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task, QueueSize)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func(id int) {
			defer p.wg.Done()
			for job := range p.jobs {
				run(id, job)
			}
		}(i)
	}
	return p
}

func run(id int, job Task) {
	if job == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Error().Int("worker", id).Interface("panic", r).Msg("task panicked")
		}
	}()
	job()
}

type pool struct {
	jobs    chan Task
	wg      sync.WaitGroup
	once    sync.Once
	mu      sync.RWMutex
	stopped bool
}

func (p *pool) Submit(t Task) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		log.Warn().Msg("pool stopped, task dropped")
		return
	}
	select {
	case p.jobs <- t:
	default:
		log.Warn().Int("queue", cap(p.jobs)).Msg("queue full, task dropped")
	}
}

// Stop waits for queued tasks to finish. Calling it twice is safe.
// Tasks submitted after Stop are dropped.
func (p *pool) Stop() {
	p.once.Do(func() {
		p.mu.Lock()
		p.stopped = true
		close(p.jobs)
		p.mu.Unlock()
		p.wg.Wait()
	})
}

// Inline runs every task on the caller's goroutine.
type Inline struct{}

func (Inline) Submit(t Task) { run(0, t) }
func (Inline) Stop()         {}
