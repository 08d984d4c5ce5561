package workerpool

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestDoReturnsJobResult(t *testing.T) {
	p := New(2, 4)
	defer p.Shutdown()

	var ran bool
	if err := p.Do(context.Background(), func() error {
		ran = true
		return nil
	}); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !ran {
		t.Error("job did not run")
	}

	wantErr := errors.New("job failed")
	if err := p.Do(context.Background(), func() error { return wantErr }); !errors.Is(err, wantErr) {
		t.Errorf("Do() error = %v, want %v", err, wantErr)
	}
}

func TestDoConcurrent(t *testing.T) {
	p := New(4, 64)
	defer p.Shutdown()

	var (
		mu    sync.Mutex
		count int
		wg    sync.WaitGroup
	)

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := p.Do(context.Background(), func() error {
				mu.Lock()
				count++
				mu.Unlock()
				return nil
			})
			if err != nil {
				t.Errorf("Do: %v", err)
			}
		}()
	}

	wg.Wait()
	if count != 32 {
		t.Errorf("count = %d, want 32", count)
	}
}

func TestDoBusy(t *testing.T) {
	p := New(1, 0)
	defer p.Shutdown()

	block := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = p.Do(context.Background(), func() error {
			close(started)
			<-block
			return nil
		})
	}()
	<-started

	// The single worker is occupied and the queue holds nothing.
	if err := p.Do(context.Background(), func() error { return nil }); !errors.Is(err, ErrPoolBusy) {
		t.Errorf("Do() error = %v, want %v", err, ErrPoolBusy)
	}

	close(block)
}

func TestDoAfterShutdown(t *testing.T) {
	p := New(1, 1)
	p.Shutdown()

	if err := p.Do(context.Background(), func() error { return nil }); !errors.Is(err, ErrPoolClosed) {
		t.Errorf("Do() error = %v, want %v", err, ErrPoolClosed)
	}
}

func TestDoContextCancelled(t *testing.T) {
	// Queue a job behind a busy worker, then abandon the wait.
	p2 := New(1, 1)
	defer p2.Shutdown()

	blocker := make(chan struct{})
	ready := make(chan struct{})
	go func() {
		_ = p2.Do(context.Background(), func() error {
			close(ready)
			<-blocker
			return nil
		})
	}()
	<-ready

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := p2.Do(ctx, func() error { return nil })
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Do() error = %v, want %v", err, context.DeadlineExceeded)
	}

	close(blocker)
}

func TestShutdownIdempotent(t *testing.T) {
	p := New(2, 2)
	p.Shutdown()
	p.Shutdown()
}
