package extraction

import (
	"context"

	"github.com/showroom-catalog/showroom/internal/models"
)

// Task is a handle on an extraction running in the background
type Task struct {
	done   chan struct{}
	cancel context.CancelFunc
	result *models.ExtractionResult
	err    error
}

// Start runs Extract in a goroutine and returns immediately
func (c *Client) Start(ctx context.Context, url string) *Task {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{
		done:   make(chan struct{}),
		cancel: cancel,
	}

	go func() {
		defer close(t.done)
		defer cancel()
		t.result, t.err = c.Extract(ctx, url)
	}()

	return t
}

// Done is closed once the extraction has finished
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Cancel asks the running extraction to stop. The task still completes and
// Wait reports the resulting error.
func (t *Task) Cancel() {
	t.cancel()
}

// Wait blocks until the extraction finishes or ctx is done. Giving up on
// ctx does not stop the extraction.
func (t *Task) Wait(ctx context.Context) (*models.ExtractionResult, error) {
	select {
	case <-t.done:
		return t.result, t.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
