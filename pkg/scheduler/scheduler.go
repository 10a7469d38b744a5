package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

var (
	ErrRunning  = errors.New("scheduler already running")
	ErrInterval = errors.New("task interval must be positive")
)

// Task runs Run every Interval. A non-nil error from Run stops every task of
// the scheduler and is returned by Stop.
type Task struct {
	Name      string
	Interval  time.Duration
	Immediate bool // run once at start instead of waiting for the first tick
	Run       func(ctx context.Context, now time.Time) error
}

type Scheduler struct {
	mu      sync.Mutex
	tasks   []Task
	cancel  context.CancelFunc
	errg    *errgroup.Group
	running bool
}

func New(tasks ...Task) *Scheduler {
	return &Scheduler{tasks: tasks}
}

func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrRunning
	}
	for _, t := range s.tasks {
		if t.Interval <= 0 {
			return fmt.Errorf("%s: %w", t.Name, ErrInterval)
		}
	}
	gctx, cancel := context.WithCancel(ctx)
	errg, gctx := errgroup.WithContext(gctx)
	for _, t := range s.tasks {
		errg.Go(func() error {
			return loop(gctx, t)
		})
	}
	s.cancel = cancel
	s.errg = errg
	s.running = true
	return nil
}

// Stop cancels all tasks and waits for them to return.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	cancel, errg := s.cancel, s.errg
	s.running = false
	s.mu.Unlock()

	cancel()
	if err := errg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func loop(ctx context.Context, t Task) error {
	if t.Immediate {
		if err := t.Run(ctx, time.Now()); err != nil {
			log.Printf("task %s: %v", t.Name, err)
			return fmt.Errorf("%s: %w", t.Name, err)
		}
	}
	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if err := t.Run(ctx, now); err != nil {
				log.Printf("task %s: %v", t.Name, err)
				return fmt.Errorf("%s: %w", t.Name, err)
			}
		}
	}
}
