package showroom

import (
	"strconv"
	"sync"
	"time"
)

// idGenerator issues millisecond timestamp ids that never repeat and
// never collide with ids already taken
type idGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func newIDGenerator(now func() time.Time) *idGenerator {
	if now == nil {
		now = time.Now
	}
	return &idGenerator{now: now}
}

func (g *idGenerator) Next(taken func(id string) bool) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := g.now().UnixMilli()
	if n <= g.last {
		n = g.last + 1
	}
	for taken != nil && taken(strconv.FormatInt(n, 10)) {
		n++
	}
	g.last = n
	return strconv.FormatInt(n, 10)
}
