package selection

import "sync"

// Store holds the ordered set of chosen items for one planning session.
// All mutation goes through Toggle (plus Seed/Hydrate/Reset at session
// boundaries); subscribers registered with OnChange see every mutation.
//
// The logical model is one writer per session, but gin serves requests on
// multiple goroutines, so a mutex guards the slice.
type Store struct {
	mu          sync.Mutex
	policy      Policy
	items       []Item
	subscribers []func([]Item)
}

func NewStore(policy Policy) *Store {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &Store{policy: policy}
}

// OnChange registers fn to run after every mutating operation with a copy
// of the new collection. Subscribers run outside the store lock.
func (s *Store) OnChange(fn func([]Item)) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

// Toggle flips membership of candidate and returns the new collection.
// Same (title, category) present: the item is removed. Absent: for a
// single-select category any item of that category is evicted first, then
// the candidate is appended. Insertion order is preserved throughout.
func (s *Store) Toggle(candidate Item) []Item {
	s.mu.Lock()

	existing := -1
	for i, item := range s.items {
		if item.Same(candidate) {
			existing = i
			break
		}
	}

	if existing >= 0 {
		s.items = append(s.items[:existing:existing], s.items[existing+1:]...)
	} else {
		if s.policy.ModeOf(candidate.Category) == SingleSelect {
			kept := s.items[:0:0]
			for _, item := range s.items {
				if item.Category != candidate.Category {
					kept = append(kept, item)
				}
			}
			s.items = kept
		}
		s.items = append(s.items, candidate)
	}

	snapshot := snapshotOf(s.items)
	subscribers := s.subscribers
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(snapshot)
	}
	return snapshot
}

// Seed starts a fresh session around one travel-info item, which
// conventionally sits first in the collection. Subscribers are notified so
// the seeded state is persisted like any other mutation.
func (s *Store) Seed(info Item) []Item {
	s.mu.Lock()
	s.items = []Item{info}
	snapshot := snapshotOf(s.items)
	subscribers := s.subscribers
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(snapshot)
	}
	return snapshot
}

// Hydrate replaces the collection with a previously persisted one. No
// subscriber notification: hydration is not a user mutation and writing it
// straight back to storage would be a no-op cycle.
func (s *Store) Hydrate(items []Item) {
	s.mu.Lock()
	s.items = snapshotOf(items)
	s.mu.Unlock()
}

// Reset discards the session's selections. Subscribers are not notified:
// the persisted record outlives the session (logout must not wipe it).
func (s *Store) Reset() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
}

// Snapshot returns a copy of the current collection in insertion order.
func (s *Store) Snapshot() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotOf(s.items)
}

// Has reports whether an item with the given identity is currently chosen.
// Providers use this to render their add/remove controls.
func (s *Store) Has(title string, category Category) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.Title == title && item.Category == category {
			return true
		}
	}
	return false
}

func snapshotOf(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
