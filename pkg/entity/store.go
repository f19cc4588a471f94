package entity

import "github.com/EngoEngine/ecs"

// StorePriority places the store after every simulation system so snapshots
// taken after a world update see the final state of the tick.
const StorePriority = -100

// Store is the tagged entity collection. It keeps insertion order so
// iteration, and therefore the whole simulation, is deterministic.
//
// Store doubles as an ecs.System: registered with AddSystemInterface it
// receives every entity added to the world and forgets it on removal.
type Store struct {
	entities []Entity
	index    map[uint64]int
	counts   map[Kind]int
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		index:  make(map[uint64]int),
		counts: make(map[Kind]int),
	}
}

// Add inserts e. Adding an entity that is already present is a no-op.
func (s *Store) Add(e Entity) {
	if _, ok := s.index[e.ID()]; ok {
		return
	}
	s.index[e.ID()] = len(s.entities)
	s.entities = append(s.entities, e)
	s.counts[e.Kind()]++
}

// Get looks up an entity by id
func (s *Store) Get(id uint64) (Entity, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.entities[i], true
}

// Count returns the number of live entities of kind k
func (s *Store) Count(k Kind) int {
	return s.counts[k]
}

// Len returns the number of live entities
func (s *Store) Len() int {
	return len(s.entities)
}

// Each calls fn for every entity of kind k in insertion order. fn must not
// add or remove entities.
func (s *Store) Each(k Kind, fn func(Entity)) {
	for _, e := range s.entities {
		if e.Kind() == k {
			fn(e)
		}
	}
}

// OfKind returns the entities of kind k in insertion order
func (s *Store) OfKind(k Kind) []Entity {
	out := make([]Entity, 0, s.counts[k])
	s.Each(k, func(e Entity) { out = append(out, e) })
	return out
}

// Snapshots returns a render snapshot of every entity
func (s *Store) Snapshots() []Snapshot {
	out := make([]Snapshot, 0, len(s.entities))
	for _, e := range s.entities {
		out = append(out, Snap(e))
	}
	return out
}

// Update satisfies ecs.System. The store does no per-tick work.
func (s *Store) Update(dt float32) {}

// Remove satisfies ecs.System and drops the entity with basic's id.
func (s *Store) Remove(basic ecs.BasicEntity) {
	i, ok := s.index[basic.ID()]
	if !ok {
		return
	}
	e := s.entities[i]
	s.counts[e.Kind()]--

	copy(s.entities[i:], s.entities[i+1:])
	s.entities[len(s.entities)-1] = nil
	s.entities = s.entities[:len(s.entities)-1]

	delete(s.index, basic.ID())
	for j := i; j < len(s.entities); j++ {
		s.index[s.entities[j].ID()] = j
	}
}

// AddByInterface satisfies ecs.SystemAddByInterfacer
func (s *Store) AddByInterface(o ecs.Identifier) {
	if e, ok := o.(Entity); ok {
		s.Add(e)
	}
}

// Priority satisfies ecs.Prioritizer
func (s *Store) Priority() int {
	return StorePriority
}
