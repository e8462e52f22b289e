package telemetry

import "sync"

// Store holds the latest State. Reads and writes always cover the whole
// value, so a reader never sees fields from two different frames.
type Store struct {
	mux   sync.Mutex
	state State
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Load() State {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.state
}

func (s *Store) Replace(st State) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.state = st
}
