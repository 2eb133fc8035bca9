// Package store provides a generic in-memory persistence collaborator for
// built fixtures. It panics instead of returning errors for programmer
// mistakes, to make calling it much easier and prevent boilerplate in error
// checking. It is intended for testing, not production use.
package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
)

var (
	ErrSaveFailed = errors.New("save failed")
	ErrNotFound   = errors.New("not found")
)

type Option func(*config)

type config struct {
	idFieldName string
}

// WithIDField overwrites the name of the struct field used as the
// primary key, which defaults to "ID".
func WithIDField(name string) Option {
	return func(c *config) {
		c.idFieldName = name
	}
}

// NewMemory returns an in-memory store for entities of type E.
// It is expected that E has a field called `ID`, used as the primary key
// and overwritable with WithIDField. The key may be of any comparable
// underlying type; builders assign string and integer keys.
func NewMemory[E any](opts ...Option) *Memory[E] {
	s := &Memory[E]{
		mu:     sync.Mutex{},
		data:   map[any]E{},
		config: config{idFieldName: "ID"},
	}

	for _, opt := range opts {
		opt(&s.config)
	}

	return s
}

// Memory keeps saved entities in a map keyed by their primary key.
// It is safe for concurrent use.
type Memory[E any] struct {
	mu   sync.Mutex
	data map[any]E

	config
}

func (s *Memory[E]) id(entity E) any {
	field := reflect.ValueOf(entity).FieldByName(s.idFieldName)
	if !field.IsValid() {
		panic("entity does not have the field with name: " + s.idFieldName)
	}

	return field.Interface()
}

// Save stores the entity under its primary key, overwriting any previous
// version. An entity with a zero primary key is rejected.
func (s *Memory[E]) Save(_ context.Context, entity E) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.id(entity)
	if reflect.ValueOf(id).IsZero() {
		return fmt.Errorf("missing ID: %w", ErrSaveFailed)
	}

	s.data[id] = entity

	return nil
}

// FindByID returns the entity saved under the given primary key.
func (s *Memory[E]) FindByID(_ context.Context, id any) (E, error) { //nolint:ireturn // valid use of generics
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.data[id]; ok {
		return e, nil
	}

	return *new(E), ErrNotFound
}

// All returns every saved entity, in no particular order.
func (s *Memory[E]) All(_ context.Context) ([]E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := []E{}

	for _, e := range s.data {
		result = append(result, e)
	}

	return result, nil
}

// Count returns the number of saved entities.
func (s *Memory[E]) Count(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.data), nil
}

// DeleteAll removes every saved entity.
func (s *Memory[E]) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.data)

	return nil
}

//nolint:gochecknoglobals // process-wide registry backing Of, mirroring the ambient database fixtures lean on
var (
	registryMu sync.Mutex
	registry   = map[reflect.Type]any{}
)

// Of returns the process-wide Memory store for entities of type E,
// creating it on first use. Builders without an explicit repository save
// into this store, so fixtures work with zero wiring.
func Of[E any]() *Memory[E] {
	registryMu.Lock()
	defer registryMu.Unlock()

	key := reflect.TypeOf(new(E)).Elem()

	if s, ok := registry[key]; ok {
		return s.(*Memory[E]) //nolint:forcetypeassert // registry is keyed by E
	}

	s := NewMemory[E]()
	registry[key] = s

	return s
}
