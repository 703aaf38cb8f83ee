package ecs_test

import (
	"testing"

	"github.com/plus3/ecsdemos/ecs"
	"github.com/stretchr/testify/assert"
)

func TestEntityRefLifecycle(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 1, Y: 2})
	ref := storage.CreateEntityRef(id)

	assert.NotNil(t, ref)
	assert.Equal(t, id, ref.Id)
	assert.Same(t, ref, storage.CreateEntityRef(id))

	resolved, ok := storage.ResolveEntityRef(ref)
	assert.True(t, ok)
	assert.Equal(t, id, resolved)

	assert.True(t, storage.InvalidateEntityRef(ref))
	assert.False(t, storage.InvalidateEntityRef(ref))

	_, ok = storage.ResolveEntityRef(ref)
	assert.False(t, ok)
}

func TestEntityRefClearedOnDelete(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{})
	ref := storage.CreateEntityRef(id)
	storage.Delete(id)

	_, ok := storage.ResolveEntityRef(ref)
	assert.False(t, ok)
	assert.Nil(t, ref.Archetype)
	assert.Nil(t, storage.CreateEntityRef(id))
}

func TestEntityRefFollowsArchetypeMoves(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 4})
	ref := storage.CreateEntityRef(id)

	moved := storage.AddComponent(id, Velocity{DX: 1})
	assert.Equal(t, moved, ref.Id)

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](storage)
	item := view.GetRef(ref)
	if assert.NotNil(t, item) {
		assert.Equal(t, float32(4), item.Position.X)
	}
}
