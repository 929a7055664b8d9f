// Package mainloop schedules work from background goroutines onto the GTK main loop.
package mainloop

import (
	"sync"

	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
)

// IdlePost runs fn once on the GTK main loop.
func IdlePost(fn func()) {
	coreglib.IdleAdd(func() bool {
		fn()
		return false
	})
}

// Coalescer merges bursts of same-key tasks into one main-loop callback.
// The latest task posted for a key wins.
type Coalescer struct {
	mu        sync.Mutex
	pending   map[string]func()
	post      func(func())
	destroyed bool
}

// NewCoalescer creates a Coalescer scheduling through post, typically IdlePost.
func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}
	return &Coalescer{
		pending: make(map[string]func()),
		post:    post,
	}
}

// Post schedules fn under key. It reports whether a new callback was scheduled.
func (c *Coalescer) Post(key string, fn func()) bool {
	if fn == nil || key == "" {
		return false
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return false
	}
	_, scheduled := c.pending[key]
	c.pending[key] = fn
	c.mu.Unlock()

	if scheduled {
		return false
	}
	c.post(func() { c.run(key) })
	return true
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn := c.pending[key]
	delete(c.pending, key)
	destroyed := c.destroyed
	c.mu.Unlock()

	if fn != nil && !destroyed {
		fn()
	}
}

// Destroy drops pending work; later posts are ignored.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	clear(c.pending)
	c.mu.Unlock()
}
