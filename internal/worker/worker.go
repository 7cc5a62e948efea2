// File: internal/worker/worker.go
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

var (
	ErrQueueFull = errors.New("worker queue full")
	ErrStopped   = errors.New("worker pool stopped")
)

// Task 是背景執行的工作，例如寄送聯絡表單通知信
type Task struct {
	Name    string
	Timeout time.Duration
	Run     func(ctx context.Context) error
}

// Pool 以固定數量的 goroutine 消化工作佇列
type Pool interface {
	Submit(Task) error
	Stop()
}

// NewPool 建立 n 個 worker、佇列長度 queue 的 pool；n<=0 時為 1
func NewPool(n, queue int, logger *slog.Logger) Pool {
	if n <= 0 {
		n = 1
	}
	if queue < 0 {
		queue = 0
	}
	p := &pool{jobs: make(chan Task, queue), logger: logger}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.run(job)
			}
		}()
	}
	return p
}

type pool struct {
	jobs   chan Task
	wg     sync.WaitGroup
	logger *slog.Logger

	mu      sync.RWMutex
	stopped bool
}

// Submit 不阻塞；佇列已滿回傳 ErrQueueFull
func (p *pool) Submit(t Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrStopped
	}
	select {
	case p.jobs <- t:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop 停止接收新工作，等待佇列中的工作做完
func (p *pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}

func (p *pool) run(t Task) {
	if t.Run == nil {
		return
	}
	ctx := context.Background()
	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("worker task panicked", "task", t.Name, "panic", fmt.Sprint(r))
		}
	}()
	start := time.Now()
	if err := t.Run(ctx); err != nil {
		p.logger.Error("worker task failed", "task", t.Name, "error", err)
		return
	}
	p.logger.Debug("worker task done", "task", t.Name, "duration", time.Since(start))
}
