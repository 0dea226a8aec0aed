package cellstore

import "iter"

// Store interns keys of type K to dense slot indices. Slots are allocated
// sequentially; released slots go on a free list and are handed out again
// before the store grows. A key maps to at most one slot at a time.
type Store[K comparable] struct {
	slots map[K]int
	next  int
	free  []int
}

// New returns an empty store.
func New[K comparable]() *Store[K] {
	return &Store[K]{slots: make(map[K]int)}
}

// Intern returns the slot index for k, allocating one if k has not been
// seen. fresh reports whether a new slot was handed out.
func (s *Store[K]) Intern(k K) (idx int, fresh bool) {
	if idx, ok := s.slots[k]; ok {
		return idx, false
	}
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = s.next
		s.next++
	}
	s.slots[k] = idx
	return idx, true
}

// Lookup returns the slot index for k, if k is interned.
func (s *Store[K]) Lookup(k K) (int, bool) {
	idx, ok := s.slots[k]
	return idx, ok
}

// Release frees k's slot for reuse. It panics if k is not interned;
// releasing an unknown key indicates a bookkeeping bug in the caller.
func (s *Store[K]) Release(k K) int {
	idx, ok := s.slots[k]
	if !ok {
		panic("cellstore: release of key that is not interned")
	}
	delete(s.slots, k)
	s.free = append(s.free, idx)
	return idx
}

// All iterates over the interned keys in no particular order.
func (s *Store[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.slots {
			if !yield(k) {
				return
			}
		}
	}
}

// Len returns the number of interned keys.
func (s *Store[K]) Len() int { return len(s.slots) }

// Cap returns the total number of slots ever allocated, including freed
// ones. The caller sizes its arena to Cap.
func (s *Store[K]) Cap() int { return s.next }
