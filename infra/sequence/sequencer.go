package sequence

import "sync/atomic"

// Sequencer hands out strictly increasing release numbers.
// Numbers start after the value passed to New.
type Sequencer struct {
	next atomic.Uint64
}

// New creates a sequencer whose first Next returns start+1.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.next.Store(start)
	return s
}

// Next issues the next number.
func (s *Sequencer) Next() uint64 {
	return s.next.Add(1)
}

// Current returns the last issued number, or the start value if none.
func (s *Sequencer) Current() uint64 {
	return s.next.Load()
}

// Reset rewinds the sequencer. Tests use it to get stable numbering.
func (s *Sequencer) Reset(v uint64) {
	s.next.Store(v)
}
