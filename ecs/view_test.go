package ecs_test

import (
	"testing"

	"github.com/plus3/ecsdemos/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewIterMatchesRequiredComponents(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	storage.Spawn(Position{X: 1}, Velocity{DX: 1})
	storage.Spawn(Position{X: 2}, Velocity{DX: 2}, Health{Current: 5})
	storage.Spawn(Position{X: 3})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](storage)

	seen := map[float32]float32{}
	for item := range view.Iter() {
		seen[item.Position.X] = item.Velocity.DX
	}

	assert.Equal(t, map[float32]float32{1: 1, 2: 2}, seen)
	assert.Equal(t, 2, view.Count())
}

func TestViewEmbeddedEntityId(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	want := map[ecs.EntityId]float32{
		storage.Spawn(Position{X: 1}): 1,
		storage.Spawn(Position{X: 2}, Name{Value: "b"}): 2,
	}

	view := ecs.NewView[struct {
		ecs.EntityId
		*Position
	}](storage)

	got := map[ecs.EntityId]float32{}
	for item := range view.Iter() {
		got[item.EntityId] = item.Position.X
	}
	assert.Equal(t, want, got)
}

func TestViewOptionalComponents(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	withName := storage.Spawn(Position{X: 1}, Name{Value: "named"})
	withoutName := storage.Spawn(Position{X: 2})

	view := ecs.NewView[struct {
		*Position
		Name *Name `ecs:"optional"`
	}](storage)

	named := view.Get(withName)
	require.NotNil(t, named)
	require.NotNil(t, named.Name)
	assert.Equal(t, "named", named.Name.Value)

	unnamed := view.Get(withoutName)
	require.NotNil(t, unnamed)
	assert.Nil(t, unnamed.Name)
}

func TestViewWritesThroughPointers(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1})

	view := ecs.NewView[struct{ *Position }](storage)
	for item := range view.Iter() {
		item.Position.X = 10
	}

	assert.Equal(t, float32(10), ecs.ReadComponent[Position](storage, id).X)
}

func TestViewGetMissing(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](storage)

	assert.Nil(t, view.Get(id))

	storage.Delete(id)
	assert.Nil(t, ecs.NewView[struct{ *Position }](storage).Get(id))
}

func TestViewInvalidDefinitions(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { ecs.NewView[int](storage) })
	assert.Panics(t, func() { ecs.NewView[struct{ Position }](storage) })
	assert.Panics(t, func() {
		ecs.NewView[struct {
			Position *Position `ecs:"sometimes"`
		}](storage)
	})
}

func TestViewMarkerFilter(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	storage.Spawn(Position{X: 1})
	player := storage.Spawn(Position{X: 2}, PlayerController{})

	view := ecs.NewView[struct {
		ecs.EntityId
		*Position
		*PlayerController
	}](storage)

	var ids []ecs.EntityId
	for item := range view.Iter() {
		ids = append(ids, item.EntityId)
	}
	assert.Equal(t, []ecs.EntityId{player}, ids)
}
