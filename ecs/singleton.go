package ecs

import "reflect"

// Singleton provides access to a single component instance that is not
// associated with any entity. Use this for global state such as input,
// window information or configuration.
type Singleton[T any] struct {
	storage       *Storage
	componentType reflect.Type
}

// NewSingleton creates a new Singleton accessor for the given storage.
// If the singleton doesn't exist yet it is created from initializer, or from
// the zero value when no initializer is given. The singleton is guaranteed to
// exist in storage after the call.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	s := &Singleton[T]{}
	s.Init(storage)

	if s.entry() == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(value)
	}

	return s
}

// Init initializes the Singleton with a storage reference.
// This is called automatically by the Scheduler during system registration.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.componentType = reflect.TypeFor[T]()
}

func (s *Singleton[T]) entry() *singletonEntry {
	if s.storage == nil {
		return nil
	}
	return s.storage.getSingletonEntry(s.componentType)
}

// Get returns a pointer to the singleton component.
// Returns nil if the singleton has not been added to storage.
func (s *Singleton[T]) Get() *T {
	entry := s.entry()
	if entry == nil {
		return nil
	}
	return (*T)(entry.dataPtr)
}

// Exists returns true if the singleton component has been added to storage
func (s *Singleton[T]) Exists() bool {
	return s.entry() != nil
}
