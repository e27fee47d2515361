package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type ToastLevel string

const (
	ToastSuccess ToastLevel = "success"
	ToastError   ToastLevel = "error"
	ToastInfo    ToastLevel = "info"
)

const maxToastsPerSession = 10

type Toast struct {
	ID      string     `json:"id"`
	Level   ToastLevel `json:"level"`
	Message string     `json:"message"`
}

// Toasts is the per-session queue of transient notices shown on the next page.
type Toasts struct {
	mu      sync.Mutex
	queues  map[string][]Toast
	touched map[string]time.Time
	now     func() time.Time
}

func NewToasts() *Toasts {
	return &Toasts{
		queues:  make(map[string][]Toast),
		touched: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (t *Toasts) Push(key string, level ToastLevel, message string) {
	if key == "" || message == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	q := append(t.queues[key], Toast{ID: uuid.NewString(), Level: level, Message: message})
	if len(q) > maxToastsPerSession {
		q = q[len(q)-maxToastsPerSession:]
	}
	t.queues[key] = q
	t.touched[key] = t.now()
}

// Drain returns and clears the pending toasts for key, oldest first.
func (t *Toasts) Drain(key string) []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	q := t.queues[key]
	delete(t.queues, key)
	delete(t.touched, key)
	return q
}

// Prune drops queues nobody drained since before cutoff.
func (t *Toasts) Prune(cutoff time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for key, at := range t.touched {
		if at.Before(cutoff) {
			delete(t.queues, key)
			delete(t.touched, key)
			n++
		}
	}
	return n
}

// Move hands the pending toasts of from over to to, after any already queued there.
func (t *Toasts) Move(from, to string) {
	if from == "" || to == "" || from == to {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	q, ok := t.queues[from]
	if !ok {
		return
	}
	delete(t.queues, from)
	delete(t.touched, from)
	q = append(t.queues[to], q...)
	if len(q) > maxToastsPerSession {
		q = q[len(q)-maxToastsPerSession:]
	}
	t.queues[to] = q
	t.touched[to] = t.now()
}
