package lib

import "sync"

// IDs gives a small unique int to each unique key, in first-seen order starting at 1.
// It stores a map rather than hashing, so ids are dense and stable for a given
// insertion order.
type IDs[K comparable] struct {
	mu      *sync.Mutex
	ids     map[K]int
	counter int
}

func NewIDs[K comparable]() *IDs[K] {
	return &IDs[K]{
		mu:  &sync.Mutex{},
		ids: make(map[K]int),
	}
}

// ID returns the id for key and whether the key was seen for the first time.
func (s *IDs[K]) ID(key K) (id int, isNew bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.ids[key]; ok {
		return id, false
	}
	s.counter++
	s.ids[key] = s.counter
	return s.counter, true
}

func (s *IDs[K]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}
