package sim

// Arena stores entity records in spawn order, indexed by stable ID.
// Records are addressed by index during iteration; pointers returned by Get
// are only valid until the next Insert or Remove.
type Arena struct {
	entities []Entity
	index    map[EntityID]int
	nextID   EntityID
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{
		entities: make([]Entity, 0, 8),
		index:    make(map[EntityID]int),
		nextID:   1,
	}
}

// Insert stores e under a fresh ID and returns that ID.
// Any ID already set on e is overwritten.
func (a *Arena) Insert(e Entity) EntityID {
	id := a.nextID
	a.nextID++

	e.ID = id
	a.index[id] = len(a.entities)
	a.entities = append(a.entities, e)
	return id
}

// Get returns the entity with the given ID.
func (a *Arena) Get(id EntityID) (*Entity, bool) {
	i, ok := a.index[id]
	if !ok {
		return nil, false
	}
	return &a.entities[i], true
}

// Remove deletes the entity immediately, preserving the order of the rest.
// Returns false if the ID is unknown.
func (a *Arena) Remove(id EntityID) bool {
	i, ok := a.index[id]
	if !ok {
		return false
	}
	a.entities = append(a.entities[:i], a.entities[i+1:]...)
	a.reindex()
	return true
}

// Compact drops all retired entities and returns how many were dropped.
func (a *Arena) Compact() int {
	kept := a.entities[:0]
	for _, e := range a.entities {
		if e.State != StateRetired {
			kept = append(kept, e)
		}
	}
	dropped := len(a.entities) - len(kept)
	if dropped == 0 {
		return 0
	}

	// Zero the tail so dropped records do not linger in the backing array.
	for i := len(kept); i < len(a.entities); i++ {
		a.entities[i] = Entity{}
	}
	a.entities = kept
	a.reindex()
	return dropped
}

// reindex rebuilds the ID to index map after the slice was reshaped.
func (a *Arena) reindex() {
	clear(a.index)
	for i := range a.entities {
		a.index[a.entities[i].ID] = i
	}
}

// Len returns the number of stored entities, retired ones included.
func (a *Arena) Len() int {
	return len(a.entities)
}

// At returns the entity at position i in spawn order.
func (a *Arena) At(i int) *Entity {
	return &a.entities[i]
}

// Snapshot returns a copy of all stored entities in spawn order.
func (a *Arena) Snapshot() []Entity {
	out := make([]Entity, len(a.entities))
	copy(out, a.entities)
	return out
}

// Reset removes every entity. IDs keep increasing across resets.
func (a *Arena) Reset() {
	clear(a.entities)
	a.entities = a.entities[:0]
	clear(a.index)
}
