package booking

import (
	"sync"
	"time"
)

// Workspace is the page state one browser session keeps between requests.
type Workspace struct {
	Wizard *Wizard
	Board  *SlotBoard
}

type Registry struct {
	mu      sync.Mutex
	spaces  map[string]*Workspace
	touched map[string]time.Time
	now     func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		spaces:  make(map[string]*Workspace),
		touched: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Get returns the workspace of sid, creating it on first use.
func (r *Registry) Get(sid string) *Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()
	ws, ok := r.spaces[sid]
	if !ok {
		ws = &Workspace{Wizard: NewWizard(), Board: NewSlotBoard()}
		r.spaces[sid] = ws
	}
	r.touched[sid] = r.now()
	return ws
}

// Drop forgets sid, typically on logout.
func (r *Registry) Drop(sid string) {
	r.mu.Lock()
	delete(r.spaces, sid)
	delete(r.touched, sid)
	r.mu.Unlock()
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.spaces)
}

func (r *Registry) Prune(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for sid, at := range r.touched {
		if at.Before(cutoff) {
			delete(r.spaces, sid)
			delete(r.touched, sid)
			n++
		}
	}
	return n
}
