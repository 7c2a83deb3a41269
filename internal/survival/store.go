package survival

import "github.com/tomz197/survival/internal/entity"

// Store is the ordered collection of live enemies.
// Insertion order is kept so rendering and tests are reproducible.
type Store struct {
	enemies []*entity.Enemy
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{enemies: []*entity.Enemy{}}
}

// Add appends an enemy.
func (s *Store) Add(e *entity.Enemy) {
	s.enemies = append(s.enemies, e)
}

// RemoveWhere drops every enemy matching pred and returns how many were removed.
// Every enemy is tested exactly once; survivors keep their relative order.
func (s *Store) RemoveWhere(pred func(e *entity.Enemy) bool) int {
	kept := s.enemies[:0] // reuse backing array
	for _, e := range s.enemies {
		if !pred(e) {
			kept = append(kept, e)
		}
	}
	removed := len(s.enemies) - len(kept)
	clear(s.enemies[len(kept):]) // drop references held past the new length
	s.enemies = kept
	return removed
}

// ForEach visits every enemy in insertion order.
func (s *Store) ForEach(fn func(e *entity.Enemy)) {
	for _, e := range s.enemies {
		fn(e)
	}
}

// Len returns the number of live enemies.
func (s *Store) Len() int {
	return len(s.enemies)
}

// Clear removes all enemies.
func (s *Store) Clear() {
	clear(s.enemies)
	s.enemies = s.enemies[:0]
}

var _ entity.Enemies = (*Store)(nil)
