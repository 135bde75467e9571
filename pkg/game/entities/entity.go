// Package entities defines the objects placed into a generated labyrinth:
// the guide Virgilio and the collectible memory fragments.
package entities

// Kind distinguishes the entity types
type Kind int

// Entity kinds
const (
	Guide Kind = iota
	Fragment
)

// String returns the string representation of an entity kind
func (k Kind) String() string {
	switch k {
	case Guide:
		return "Guide"
	case Fragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// Entity represents a placed object in the maze. Entities never move; the
// only mutation after placement is toggling Collected. ID is the stable
// collection key for fragments (sequential from 0 in placement order) and
// zero for the guide.
type Entity struct {
	Kind      Kind
	X         int
	Y         int
	Collected bool
	ID        int
}

// Set is the flat ordered collection of entities owned by one maze
type Set struct {
	entities []*Entity
}

// NewSet creates an empty entity set
func NewSet() *Set {
	return &Set{}
}

// add appends an entity in placement order
func (s *Set) add(e *Entity) {
	s.entities = append(s.entities, e)
}

// All returns every entity in placement order
func (s *Set) All() []*Entity {
	return s.entities
}

// At returns the uncollected entity at the given position, or nil.
// Collected entities are invisible to position lookups.
func (s *Set) At(x, y int) *Entity {
	for _, e := range s.entities {
		if !e.Collected && e.X == x && e.Y == y {
			return e
		}
	}
	return nil
}

// CollectAt marks the uncollected entity at the given position as collected
// and returns it. Returns nil when there is nothing to collect there, which
// makes repeated calls at the same position harmless.
func (s *Set) CollectAt(x, y int) *Entity {
	e := s.At(x, y)
	if e == nil {
		return nil
	}
	e.Collected = true
	return e
}

// ByKind returns all entities of the given kind in placement order
func (s *Set) ByKind(k Kind) []*Entity {
	var out []*Entity
	for _, e := range s.entities {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

// Uncollected returns all entities not yet collected
func (s *Set) Uncollected() []*Entity {
	var out []*Entity
	for _, e := range s.entities {
		if !e.Collected {
			out = append(out, e)
		}
	}
	return out
}

// FragmentCount returns the number of fragments placed in this maze
func (s *Set) FragmentCount() int {
	return len(s.ByKind(Fragment))
}

// HasGuide returns true if a guide was placed in this maze
func (s *Set) HasGuide() bool {
	return len(s.ByKind(Guide)) > 0
}

// GuideFound returns true only when a guide exists and has been collected.
// A maze with no guide reads as false, same as an unfound guide; gating logic
// must consult the level configuration to tell the two apart.
func (s *Set) GuideFound() bool {
	for _, e := range s.ByKind(Guide) {
		if e.Collected {
			return true
		}
	}
	return false
}

// AllFragmentsCollected returns true when every placed fragment is collected.
// Vacuously true for a maze with zero fragments.
func (s *Set) AllFragmentsCollected() bool {
	for _, e := range s.ByKind(Fragment) {
		if !e.Collected {
			return false
		}
	}
	return true
}
