package dispatcher

import (
	"sync"

	"github.com/coregx/dispatch/command"
)

// Guarded wraps a Dispatcher with a reader-writer lock: mutation is
// exclusive, reads only need a consistent snapshot of the master NFA.
// The core Dispatcher provides no locking of its own so that embedders
// not needing concurrency (a single-threaded console loop, say) don't
// pay for a mutex they never contend on; Guarded is the opt-in wrapper
// for everyone else.
type Guarded struct {
	mu sync.RWMutex
	d  *Dispatcher
}

// NewGuarded wraps d. Pass dispatcher.New() for a fresh instance.
func NewGuarded(d *Dispatcher) *Guarded {
	return &Guarded{d: d}
}

func (g *Guarded) Add(cmd command.Command) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.d.Add(cmd)
}

func (g *Guarded) Remove(cmd command.Command) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.d.Remove(cmd)
}

func (g *Guarded) Dispatch(input string) (command.Value, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.d.Dispatch(input)
}

func (g *Guarded) TabComplete(input string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.d.TabComplete(input)
}
