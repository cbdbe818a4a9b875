package orientation

import "sync/atomic"

// State is the current tracker orientation, written by the OSC listener
// goroutine and read by the render loop. Each update swaps in a complete
// immutable snapshot, so a reader always sees all four components from a
// single message and never a torn mix of two updates.
type State struct {
	current atomic.Pointer[RawQuaternion]
}

// NewState returns a State holding the identity quaternion.
func NewState() *State {
	s := &State{}
	q := Identity()
	s.current.Store(&q)
	return s
}

// Set replaces the stored quaternion. The previous value is discarded
// entirely; there is no interpolation or smoothing.
func (s *State) Set(q RawQuaternion) {
	s.current.Store(&q)
}

// Get returns the most recently stored quaternion.
func (s *State) Get() RawQuaternion {
	return *s.current.Load()
}
