package ecs

import "reflect"

// Commands buffers structural changes made by systems. The buffer is applied
// by the Scheduler after every system of the pass has run, so queries never
// observe entities appearing or moving mid-frame.
type Commands struct {
	spawns  [][]any
	deletes []EntityId
	adds    []addComponentCommand
	removes []removeComponentCommand
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

type addComponentCommand struct {
	entity    EntityId
	component any
}

type removeComponentCommand struct {
	entity   EntityId
	compType reflect.Type
}

// Defer queues fn to run after all other commands have been applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Spawn queues an entity spawn operation with the given components.
func (c *Commands) Spawn(components ...any) {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}
	c.spawns = append(c.spawns, components)
}

// Delete queues an entity deletion operation.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// AddComponent queues a component addition operation.
func (c *Commands) AddComponent(entity EntityId, component any) {
	c.adds = append(c.adds, addComponentCommand{entity: entity, component: component})
}

// RemoveComponent queues a component removal operation.
func (c *Commands) RemoveComponent(entity EntityId, compType reflect.Type) {
	c.removes = append(c.removes, removeComponentCommand{entity: entity, compType: compType})
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.deletes) + len(c.adds) + len(c.removes) + len(c.defers)
}

// Flush applies every queued command to storage and resets the buffer.
// Order: deletes, removes, adds, spawns, defers. Adds and removes aimed at an
// entity deleted in the same flush are dropped. An entity touched by several
// adds/removes is tracked through its archetype moves.
func (c *Commands) Flush(storage *Storage) {
	deleted := make(map[EntityId]bool, len(c.deletes))
	moved := make(map[EntityId]EntityId)

	current := func(id EntityId) EntityId {
		if to, ok := moved[id]; ok {
			return to
		}
		return id
	}

	for _, id := range c.deletes {
		storage.Delete(id)
		deleted[id] = true
	}

	for _, cmd := range c.removes {
		if deleted[cmd.entity] {
			continue
		}
		moved[cmd.entity] = storage.RemoveComponent(current(cmd.entity), cmd.compType)
	}

	for _, cmd := range c.adds {
		if deleted[cmd.entity] {
			continue
		}
		moved[cmd.entity] = storage.AddComponent(current(cmd.entity), cmd.component)
	}

	for _, components := range c.spawns {
		storage.Spawn(components...)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}
