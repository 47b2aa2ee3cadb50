package collision

import (
	"github.com/declkit/declkit/errs"
)

// Tracker tracks fully qualified names and detects 64-bit hash collisions
// while a name index is being populated. Lookup keys in the index are
// xxHash64 values; two distinct FQNs can collide, in which case the index
// must fall back to string comparison against the tracked name list.
type Tracker struct {
	names        map[uint64]string // hash → FQN mapping for collision detection
	namesList    []string          // ordered list of tracked FQNs
	hasCollision bool
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names:     make(map[uint64]string),
		namesList: make([]string, 0),
	}
}

// TrackID tracks a bare hash with no name attached. Returns
// errs.ErrFQNCollision if the hash was already used, since without the name
// there is no way to disambiguate the two entries.
func (t *Tracker) TrackID(hash uint64) error {
	if _, exists := t.names[hash]; exists {
		return errs.ErrFQNCollision
	}

	t.names[hash] = ""

	return nil
}

// Track records an FQN with its hash. A collision (different name, same
// hash) is not an error: the flag is set and callers resolve lookups by
// comparing against the name list. Tracking the same name twice is a no-op.
func (t *Tracker) Track(fqn string, hash uint64) {
	if existing, exists := t.names[hash]; exists {
		if existing != fqn {
			t.hasCollision = true
		}

		return
	}

	t.names[hash] = fqn
	t.namesList = append(t.namesList, fqn)
}

// HasCollision returns true if a collision has been detected.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Names returns the ordered list of tracked FQNs. The order matches the
// order in which Track was called.
func (t *Tracker) Names() []string {
	return t.namesList
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.namesList)
}

// Reset clears all tracked names and collision state so the tracker can be
// reused for a new index.
func (t *Tracker) Reset() {
	for k := range t.names {
		delete(t.names, k)
	}
	t.namesList = t.namesList[:0]
	t.hasCollision = false
}
