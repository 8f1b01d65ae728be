package genreforge

import (
	"sync"
)

// BatchEvent describes one processed batch of a generation run.
type BatchEvent struct {
	From     int // index of the first candidate in the batch
	To       int // index one past the last candidate in the batch
	Valid    int // entries that passed batch validation
	Rejected int // entries dropped by batch validation
}

// BatchHook is called after each processed batch
type BatchHook func(event BatchEvent)

// hooks manages event callbacks for run progress
type hooks struct {
	mu      sync.RWMutex
	onBatch []BatchHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnBatch registers a callback for completed batches
func (h *hooks) OnBatch(fn BatchHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onBatch = append(h.onBatch, fn)
}

// triggerBatch invokes registered batch hooks in registration order
func (h *hooks) triggerBatch(event BatchEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, hook := range h.onBatch {
		hook(event)
	}
}
