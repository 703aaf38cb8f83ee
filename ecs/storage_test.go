package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/ecsdemos/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageSpawnAndGet(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 1, Y: 2}, Velocity{DX: 3, DY: 4})
	require.True(t, storage.Alive(id))

	pos := ecs.ReadComponent[Position](storage, id)
	require.NotNil(t, pos)
	assert.Equal(t, Position{X: 1, Y: 2}, *pos)

	vel := ecs.ReadComponent[Velocity](storage, id)
	require.NotNil(t, vel)
	assert.Equal(t, Velocity{DX: 3, DY: 4}, *vel)

	assert.Nil(t, ecs.ReadComponent[Health](storage, id))
	assert.True(t, storage.HasComponent(id, reflect.TypeFor[Position]()))
	assert.False(t, storage.HasComponent(id, reflect.TypeFor[Health]()))
}

func TestStorageSpawnOrderDoesNotMatter(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Position{}, Velocity{})
	b := storage.Spawn(Velocity{}, Position{})

	assert.Equal(t, a.ArchetypeId(), b.ArchetypeId())
	assert.NotEqual(t, a.Index(), b.Index())
}

func TestStorageSpawnAcceptsPointers(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(&Position{X: 5})
	assert.Equal(t, float32(5), ecs.ReadComponent[Position](storage, id).X)
}

func TestStorageSpawnPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { storage.Spawn() })
	assert.Panics(t, func() { storage.Spawn(Position{}, map[string]int{}) })

	type unregistered struct{}
	assert.Panics(t, func() { storage.Spawn(unregistered{}) })
}

func TestStorageDeleteReusesSlot(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	first := storage.Spawn(Position{X: 1})
	storage.Delete(first)
	assert.False(t, storage.Alive(first))
	assert.Nil(t, ecs.ReadComponent[Position](storage, first))

	second := storage.Spawn(Position{X: 2})
	assert.Equal(t, first.Index(), second.Index())
	assert.Equal(t, float32(2), ecs.ReadComponent[Position](storage, second).X)
}

func TestStorageComponentPointersStayValid(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 1})
	pos := ecs.ReadComponent[Position](storage, id)

	for i := 0; i < 500; i++ {
		storage.Spawn(Position{X: float32(i)})
	}

	pos.X = 42
	assert.Equal(t, float32(42), ecs.ReadComponent[Position](storage, id).X)
}

func TestStorageAddComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 1, Y: 1})
	moved := storage.AddComponent(id, Velocity{DX: 2})

	assert.NotEqual(t, id.ArchetypeId(), moved.ArchetypeId())
	assert.False(t, storage.Alive(id))
	assert.Equal(t, Position{X: 1, Y: 1}, *ecs.ReadComponent[Position](storage, moved))
	assert.Equal(t, float32(2), ecs.ReadComponent[Velocity](storage, moved).DX)

	again := storage.AddComponent(moved, Velocity{DX: 9})
	assert.Equal(t, moved, again)
	assert.Equal(t, float32(9), ecs.ReadComponent[Velocity](storage, again).DX)
}

func TestStorageRemoveComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 1}, Velocity{DX: 2})
	moved := storage.RemoveComponent(id, reflect.TypeFor[Velocity]())

	require.NotZero(t, moved)
	assert.Nil(t, ecs.ReadComponent[Velocity](storage, moved))
	assert.Equal(t, float32(1), ecs.ReadComponent[Position](storage, moved).X)

	gone := storage.RemoveComponent(moved, reflect.TypeFor[Position]())
	assert.Zero(t, gone)
	assert.False(t, storage.Alive(moved))
}

func TestStorageSingletons(t *testing.T) {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())

	var score *Score
	assert.False(t, storage.ReadSingleton(&score))

	storage.AddSingleton(Score(10))
	require.True(t, storage.ReadSingleton(&score))
	assert.Equal(t, Score(10), *score)

	storage.AddSingleton(Score(20))
	assert.Equal(t, Score(20), *score, "replacing a singleton keeps its address")

	storage.RemoveSingleton(reflect.TypeFor[Score]())
	var again *Score
	assert.False(t, storage.ReadSingleton(&again))

	assert.Panics(t, func() { storage.ReadSingleton(score) })
}

func TestStorageZeroSizeComponents(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(PlayerController{}, Position{X: 1})
	b := storage.Spawn(PlayerController{}, Position{X: 2})

	assert.True(t, storage.HasComponent(a, reflect.TypeFor[PlayerController]()))
	assert.NotNil(t, ecs.ReadComponent[PlayerController](storage, b))
}
