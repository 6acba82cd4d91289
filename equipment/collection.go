package equipment

import "encoding/json"

type entity interface {
	entityID() string
}

// Collection is an ordered, id-indexed list of room entities. Its methods
// never modify the receiver: every change returns a new Collection.
//
// On the wire a Collection is a plain JSON array.
type Collection[T entity] struct {
	items []T
	index map[string]int
}

// NewCollection builds a collection from items, keeping their order. When an
// id appears twice the first occurrence is the one Get returns.
func NewCollection[T entity](items ...T) Collection[T] {
	c := Collection[T]{
		items: make([]T, len(items)),
		index: make(map[string]int, len(items)),
	}
	copy(c.items, items)
	for i, item := range c.items {
		if _, dup := c.index[item.entityID()]; !dup {
			c.index[item.entityID()] = i
		}
	}
	return c
}

// Len returns the number of entities.
func (c Collection[T]) Len() int {
	return len(c.items)
}

// All returns a copy of the entities in display order.
func (c Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Get looks an entity up by id.
func (c Collection[T]) Get(id string) (T, bool) {
	if i, ok := c.index[id]; ok {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Has reports whether an entity with the given id exists.
func (c Collection[T]) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// With returns a collection with item appended.
func (c Collection[T]) With(item T) Collection[T] {
	items := make([]T, len(c.items), len(c.items)+1)
	copy(items, c.items)
	return NewCollection(append(items, item)...)
}

// Replace returns a collection where the entity with the given id has been
// passed through fn. Unknown ids leave the collection unchanged.
func (c Collection[T]) Replace(id string, fn func(T) T) Collection[T] {
	i, ok := c.index[id]
	if !ok {
		return c
	}
	items := c.All()
	items[i] = fn(items[i])
	return NewCollection(items...)
}

// Without returns a collection lacking every entity with the given id.
func (c Collection[T]) Without(id string) Collection[T] {
	if !c.Has(id) {
		return c
	}
	items := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if item.entityID() != id {
			items = append(items, item)
		}
	}
	return NewCollection(items...)
}

func (c Collection[T]) MarshalJSON() ([]byte, error) {
	if c.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.items)
}

func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*c = NewCollection(items...)
	return nil
}
