// Package world is the entity store every game system reads and writes.
package world

import (
	"fmt"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// Store wraps a donburi world. Systems run one at a time, so each has
// exclusive access to the store for its duration.
type Store struct {
	w donburi.World
}

// New creates an empty store.
func New() *Store {
	return &Store{w: donburi.NewWorld()}
}

// Create adds an entity with the given components, all zero-valued.
func (s *Store) Create(components ...donburi.IComponentType) donburi.Entity {
	return s.w.Create(components...)
}

// Entry returns the accessor for a live entity. Fetch it again after any
// structural change to the store instead of holding it across one.
func (s *Store) Entry(e donburi.Entity) *donburi.Entry {
	return s.w.Entry(e)
}

// Alive reports whether e has not been despawned.
func (s *Store) Alive(e donburi.Entity) bool {
	return s.w.Valid(e)
}

// Despawn removes e immediately. Despawning a dead entity is a no-op.
func (s *Store) Despawn(e donburi.Entity) {
	if s.w.Valid(e) {
		s.w.Remove(e)
	}
}

// Query returns every entity carrying all of the given components.
// The result is a snapshot: entities may be despawned while it is walked,
// so callers check Alive for anything a previous step could have removed.
func (s *Store) Query(components ...donburi.IComponentType) []donburi.Entity {
	return s.collect(filter.Contains(components...))
}

// QueryWithout is Query restricted to entities that carry none of exclude.
func (s *Store) QueryWithout(include []donburi.IComponentType, exclude ...donburi.IComponentType) []donburi.Entity {
	return s.collect(filter.And(
		filter.Contains(include...),
		filter.Not(filter.Contains(exclude...)),
	))
}

// Count returns how many entities carry all of the given components.
func (s *Store) Count(components ...donburi.IComponentType) int {
	return query.NewQuery(filter.Contains(components...)).Count(s.w)
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	return s.w.Len()
}

// MustSingle returns the only entity matching components. Zero or several
// matches break a game invariant and panic.
func (s *Store) MustSingle(name string, components ...donburi.IComponentType) donburi.Entity {
	found := s.Query(components...)
	if len(found) != 1 {
		panic(fmt.Sprintf("world: expected exactly one %s, found %d", name, len(found)))
	}
	return found[0]
}

func (s *Store) collect(f filter.LayoutFilter) []donburi.Entity {
	var out []donburi.Entity
	query.NewQuery(f).Each(s.w, func(entry *donburi.Entry) {
		out = append(out, entry.Entity())
	})
	return out
}
