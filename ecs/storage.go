package ecs

import (
	"reflect"
	"sort"
	"unsafe"
	"weak"
)

// Storage is the world: every archetype plus the singleton components.
type Storage struct {
	archetypes map[uint32]*Archetype
	singletons map[reflect.Type]*singletonEntry
	registry   *ComponentRegistry
}

type singletonEntry struct {
	value   reflect.Value
	dataPtr unsafe.Pointer
}

// NewStorage creates a new ECS storage system with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		archetypes: make(map[uint32]*Archetype),
		singletons: make(map[reflect.Type]*singletonEntry),
		registry:   registry,
	}
}

// Registry returns the component registry the storage was created with.
func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

func (s *Storage) CreateEntityRef(id EntityId) *EntityRef {
	archetype := s.archetypes[id.ArchetypeId()]
	if archetype == nil || !archetype.Contains(id.Index()) {
		return nil
	}

	if weakPtr, ok := archetype.refs.Get(id); ok {
		if ref := weakPtr.Value(); ref != nil {
			return ref
		}
		archetype.refs.Del(id)
	}

	ref := &EntityRef{
		Id:        id,
		Archetype: archetype,
	}
	archetype.refs.Put(id, weak.Make(ref))

	return ref
}

func (s *Storage) ResolveEntityRef(ref *EntityRef) (EntityId, bool) {
	if ref == nil || ref.Id == 0 {
		return 0, false
	}
	return ref.Id, true
}

func (s *Storage) InvalidateEntityRef(ref *EntityRef) bool {
	if ref == nil || ref.Id == 0 {
		return false
	}

	if archetype := s.archetypes[ref.Id.ArchetypeId()]; archetype != nil {
		archetype.refs.Del(ref.Id)
	}

	ref.Id = 0
	ref.Archetype = nil
	return true
}

// GetArchetype returns the archetype holding exactly the given components, if one exists
func (s *Storage) GetArchetype(components ...any) *Archetype {
	return s.archetypes[hashTypesToUint32(extractComponentTypes(components))]
}

// Archetypes returns every archetype created so far, in no particular order.
func (s *Storage) Archetypes() []*Archetype {
	out := make([]*Archetype, 0, len(s.archetypes))
	for _, a := range s.archetypes {
		out = append(out, a)
	}
	return out
}

func (s *Storage) archetypeFor(types []reflect.Type) *Archetype {
	id := hashTypesToUint32(types)
	archetype, ok := s.archetypes[id]
	if !ok {
		archetype = NewArchetype(id, types, s.registry)
		s.archetypes[id] = archetype
	}
	return archetype
}

// Spawn creates a new entity with the provided components
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	archetype := s.archetypeFor(extractComponentTypes(components))
	index := archetype.Spawn(components)
	return NewEntityId(archetype.id, index)
}

// Delete removes all data related to the entity ID
func (s *Storage) Delete(id EntityId) {
	if archetype, ok := s.archetypes[id.ArchetypeId()]; ok {
		archetype.Delete(id.Index())
	}
}

// Alive reports whether id refers to a live entity.
func (s *Storage) Alive(id EntityId) bool {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	return ok && archetype.Contains(id.Index())
}

// AddComponent moves the entity to the archetype that also holds component.
// Adding a type the entity already has overwrites it in place.
func (s *Storage) AddComponent(id EntityId, component any) EntityId {
	old := s.archetypes[id.ArchetypeId()]
	if old == nil || !old.Contains(id.Index()) {
		return 0
	}

	compType := componentTypeOf(component)
	if old.HasComponent(compType) {
		dst := reflect.ValueOf(old.GetComponent(id.Index(), compType)).Elem()
		src := reflect.ValueOf(component)
		if src.Kind() == reflect.Ptr {
			src = src.Elem()
		}
		dst.Set(src)
		return id
	}

	types := append(append(make([]reflect.Type, 0, len(old.types)+1), old.types...), compType)
	sort.Sort(byTypeName(types))

	return s.move(id, old, types, component)
}

// RemoveComponent moves the entity to the archetype without compType.
// Removing the last component deletes the entity and returns zero.
func (s *Storage) RemoveComponent(id EntityId, compType reflect.Type) EntityId {
	old := s.archetypes[id.ArchetypeId()]
	if old == nil || !old.Contains(id.Index()) || !old.HasComponent(compType) {
		return id
	}

	types := make([]reflect.Type, 0, len(old.types)-1)
	for _, typ := range old.types {
		if typ != compType {
			types = append(types, typ)
		}
	}

	if len(types) == 0 {
		old.Delete(id.Index())
		return 0
	}

	return s.move(id, old, types, nil)
}

func (s *Storage) move(id EntityId, old *Archetype, types []reflect.Type, extra any) EntityId {
	target := s.archetypeFor(types)

	components := make([]any, 0, len(types))
	for _, typ := range types {
		if extra != nil && typ == componentTypeOf(extra) {
			components = append(components, extra)
			continue
		}
		components = append(components, old.GetComponent(id.Index(), typ))
	}

	newId := NewEntityId(target.id, target.Spawn(components))

	weakPtr, hasRef := old.refs.Get(id)
	if hasRef {
		old.refs.Del(id)
	}
	old.Delete(id.Index())

	if hasRef {
		if ref := weakPtr.Value(); ref != nil {
			ref.Id = newId
			ref.Archetype = target
			target.refs.Put(newId, weakPtr)
		}
	}

	return newId
}

// GetComponent returns the component for the given entity ID and component type
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok {
		return nil
	}
	return archetype.GetComponent(id.Index(), compType)
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	return ok && archetype.Contains(id.Index()) && archetype.HasComponent(compType)
}

// AddSingleton stores value as the singleton of its type, replacing any previous one.
// Singletons do not need to be registered.
func (s *Storage) AddSingleton(value any) {
	typ := componentTypeOf(value)
	src := reflect.ValueOf(value)
	if src.Kind() == reflect.Ptr {
		src = src.Elem()
	}

	if entry, ok := s.singletons[typ]; ok {
		entry.value.Elem().Set(src)
		return
	}

	ptr := reflect.New(typ)
	ptr.Elem().Set(src)
	s.singletons[typ] = &singletonEntry{
		value:   ptr,
		dataPtr: ptr.UnsafePointer(),
	}
}

// RemoveSingleton drops the singleton of the given type.
func (s *Storage) RemoveSingleton(typ reflect.Type) {
	delete(s.singletons, typ)
}

// ReadSingleton fills target, which must be a **T, with the stored singleton of type T.
// Returns false if no such singleton exists.
func (s *Storage) ReadSingleton(target any) bool {
	ptr := reflect.ValueOf(target)
	if ptr.Kind() != reflect.Ptr || ptr.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton target must be a pointer to a pointer")
	}

	entry := s.getSingletonEntry(ptr.Elem().Type().Elem())
	if entry == nil {
		return false
	}
	ptr.Elem().Set(entry.value)
	return true
}

func (s *Storage) getSingletonEntry(typ reflect.Type) *singletonEntry {
	return s.singletons[typ]
}

// componentTypeOf returns the value type of a component, dereferencing pointers.
func componentTypeOf(component any) reflect.Type {
	t := reflect.TypeOf(component)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// extractComponentTypes extracts and sorts component types from a slice of components
func extractComponentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		compType := componentTypeOf(comp)

		switch compType.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
			panic("components cannot be pointers, maps, channels, or functions")
		}

		types = append(types, compType)
	}
	sort.Sort(byTypeName(types))
	return types
}

// hashTypesToUint32 generates an FNV-1a hash over the identities of a sorted slice of types
func hashTypesToUint32(types []reflect.Type) uint32 {
	var h uint32 = 2166136261
	const prime uint32 = 16777619

	for _, t := range types {
		ptr := reflect.ValueOf(t).Pointer()
		val := uint32(ptr) ^ uint32(uint64(ptr)>>32)

		h ^= val
		h *= prime
	}

	return h
}

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the entity's T component, or nil.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return comp
}
