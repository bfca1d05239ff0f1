package pricing

import "sync/atomic"

// OrderIDs hands out order identifiers.
type OrderIDs interface {
	Next() int64
	// Release hands id back when the order it was drawn for was abandoned.
	// It reports false when a later id has already been drawn.
	Release(id int64) bool
}

// Sequence is a process-wide, monotonically increasing order counter.
// It starts at the given value, so the first Next on NewSequence(0) returns 1.
type Sequence struct {
	last atomic.Int64
}

func NewSequence(start int64) *Sequence {
	s := &Sequence{}
	s.last.Store(start)
	return s
}

func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}

func (s *Sequence) Release(id int64) bool {
	return s.last.CompareAndSwap(id, id-1)
}

// Last returns the most recently assigned id, or the start value if none was assigned.
func (s *Sequence) Last() int64 {
	return s.last.Load()
}
