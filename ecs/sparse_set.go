package ecs

// store is the type-erased view of a sparseSet the world needs for
// bookkeeping.
type store interface {
	has(id entityID) bool
	remove(id entityID) bool
	len() int
}

// sparseSet packs components of one type densely, indexed by entity id.
type sparseSet[T any] struct {
	sparse map[entityID]int
	owners []Entity
	values []*T
}

func newSparseSet[T any]() *sparseSet[T] {
	return &sparseSet[T]{sparse: map[entityID]int{}}
}

func (s *sparseSet[T]) has(id entityID) bool {
	_, ok := s.sparse[id]
	return ok
}

func (s *sparseSet[T]) get(id entityID) (*T, bool) {
	idx, ok := s.sparse[id]
	if !ok {
		return nil, false
	}
	return s.values[idx], true
}

func (s *sparseSet[T]) set(e Entity, v *T) {
	if idx, ok := s.sparse[e.id()]; ok {
		s.owners[idx] = e
		s.values[idx] = v
		return
	}
	s.sparse[e.id()] = len(s.values)
	s.owners = append(s.owners, e)
	s.values = append(s.values, v)
}

func (s *sparseSet[T]) remove(id entityID) bool {
	idx, ok := s.sparse[id]
	if !ok {
		return false
	}
	last := len(s.values) - 1
	s.owners[idx] = s.owners[last]
	s.values[idx] = s.values[last]
	s.sparse[s.owners[idx].id()] = idx

	s.owners[last] = 0
	s.values[last] = nil
	s.owners = s.owners[:last]
	s.values = s.values[:last]
	delete(s.sparse, id)
	return true
}

func (s *sparseSet[T]) len() int {
	return len(s.values)
}
