package async

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/OnteruYallaiah21/StrcuctIq/internal/entity"
)

type countingProcessor struct {
	mu    sync.Mutex
	paths []string
}

func (c *countingProcessor) ProcessFile(_ context.Context, path string) (*entity.Receipt, *entity.ExtractJob, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paths = append(c.paths, path)
	return &entity.Receipt{}, &entity.ExtractJob{}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProcessorQueue_DrainsAllJobs(t *testing.T) {
	proc := &countingProcessor{}
	q := NewProcessorQueue(proc, testLogger(), WithWorkers(2), WithQueueSize(8))

	for i := 0; i < 5; i++ {
		err := q.Enqueue(context.Background(), Job{Path: "receipt.txt", SubmittedAt: time.Now()})
		if err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	proc.mu.Lock()
	defer proc.mu.Unlock()
	if len(proc.paths) != 5 {
		t.Errorf("processed %d jobs, want 5", len(proc.paths))
	}
}

func TestProcessorQueue_EnqueueAfterShutdownIsNoop(t *testing.T) {
	proc := &countingProcessor{}
	q := NewProcessorQueue(proc, testLogger(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if err := q.Enqueue(context.Background(), Job{Path: "late.txt"}); err != nil {
		t.Fatalf("Enqueue after shutdown: %v", err)
	}

	proc.mu.Lock()
	defer proc.mu.Unlock()
	if len(proc.paths) != 0 {
		t.Errorf("processed %d jobs after shutdown, want 0", len(proc.paths))
	}
}
