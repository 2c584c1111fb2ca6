package pagination

import "sync"

// Viewport reports the display width the page size derives from and
// announces later changes to subscribers.
type Viewport interface {
	Width() int
	Subscribe(fn func(width int))
}

// FixedViewport is a Viewport of constant width
type FixedViewport int

func (f FixedViewport) Width() int { return int(f) }

// Subscribe is a no-op, the width never changes.
func (FixedViewport) Subscribe(func(int)) {}

// ViewportSignal is a Viewport whose width is pushed by the caller.
// Subscribers are called with each new width.
type ViewportSignal struct {
	mu          sync.Mutex
	width       int
	subscribers []func(width int)
}

func NewViewportSignal(width int) *ViewportSignal {
	return &ViewportSignal{width: width}
}

func (s *ViewportSignal) Width() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width
}

// SetWidth records width and notifies subscribers outside the lock
func (s *ViewportSignal) SetWidth(width int) {
	s.mu.Lock()
	s.width = width
	subs := append([]func(int){}, s.subscribers...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(width)
	}
}

func (s *ViewportSignal) Subscribe(fn func(width int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}
