package hierarchy

import "sync/atomic"

// Sequence issues monotonically increasing entry ids starting at 1. Ids are
// never reused. Safe for concurrent use, so batch workers can share one
// allocator.
type Sequence struct {
	n atomic.Int64
}

// NewSequence creates an allocator whose first Next call returns 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the next id.
func (s *Sequence) Next() int64 {
	return s.n.Add(1)
}

// Current returns the most recently issued id, or 0 before the first Next.
func (s *Sequence) Current() int64 {
	return s.n.Load()
}
