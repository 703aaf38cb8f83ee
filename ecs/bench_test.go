package ecs_test

import (
	"reflect"
	"strconv"
	"testing"

	"github.com/plus3/ecsdemos/ecs"
)

type posVel struct {
	*Position
	*Velocity
}

func spawnMoving(storage *ecs.Storage, n int) {
	for i := range n {
		storage.Spawn(Position{X: float32(i), Y: float32(i)}, Velocity{DX: 0.5, DY: 0.5})
	}
}

func BenchmarkSpawn(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())

	for b.Loop() {
		storage.Spawn(Position{X: 1, Y: 2}, Velocity{DX: 0.5, DY: 0.5})
	}
}

func BenchmarkSpawnFourComponents(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())

	for b.Loop() {
		storage.Spawn(
			Position{X: 1, Y: 2},
			Velocity{DX: 0.5, DY: 0.5},
			Health{Current: 100, Max: 100},
			Name{Value: "entity"},
		)
	}
}

func BenchmarkDelete(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())
	ids := make([]ecs.EntityId, b.N)
	for i := range ids {
		ids[i] = storage.Spawn(Position{X: 1, Y: 2}, Velocity{DX: 0.5, DY: 0.5})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		storage.Delete(ids[i])
	}
}

func BenchmarkReadComponent(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1, Y: 2}, Velocity{DX: 0.5, DY: 0.5})

	for b.Loop() {
		_ = ecs.ReadComponent[Position](storage, id)
	}
}

func BenchmarkAddComponent(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())
	ids := make([]ecs.EntityId, b.N)
	for i := range ids {
		ids[i] = storage.Spawn(Position{X: 1, Y: 2})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		storage.AddComponent(ids[i], Velocity{DX: 0.5, DY: 0.5})
	}
}

func BenchmarkRemoveComponent(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())
	ids := make([]ecs.EntityId, b.N)
	for i := range ids {
		ids[i] = storage.Spawn(Position{X: 1, Y: 2}, Velocity{DX: 0.5, DY: 0.5})
	}
	velocity := reflect.TypeFor[Velocity]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		storage.RemoveComponent(ids[i], velocity)
	}
}

func BenchmarkResolveEntityRef(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())
	ref := storage.CreateEntityRef(storage.Spawn(Position{X: 1, Y: 2}))

	for b.Loop() {
		_, _ = storage.ResolveEntityRef(ref)
	}
}

func BenchmarkViewFill(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())
	view := ecs.NewView[posVel](storage)
	id := storage.Spawn(Position{X: 1, Y: 2}, Velocity{DX: 0.5, DY: 0.5})

	var pv posVel
	for b.Loop() {
		view.Fill(id, &pv)
	}
}

func BenchmarkViewIter(b *testing.B) {
	for _, n := range []int{1000, 10000} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			storage := ecs.NewStorage(newTestRegistry())
			spawnMoving(storage, n)
			view := ecs.NewView[posVel](storage)

			for b.Loop() {
				for pv := range view.Iter() {
					_ = pv
				}
			}
		})
	}
}

func BenchmarkQueryExecuteIter(b *testing.B) {
	for _, n := range []int{1000, 10000} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			storage := ecs.NewStorage(newTestRegistry())
			spawnMoving(storage, n)
			query := ecs.NewQuery[posVel](storage)

			for b.Loop() {
				query.Execute()
				for pv := range query.Iter() {
					_ = pv
				}
			}
		})
	}
}

func BenchmarkMixedOperations(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())
	view := ecs.NewView[posVel](storage)

	for b.Loop() {
		id := storage.Spawn(Position{X: 1, Y: 2}, Velocity{DX: 0.5, DY: 0.5})
		_ = ecs.ReadComponent[Position](storage, id)
		id = storage.AddComponent(id, Health{Current: 100, Max: 100})
		_ = view.Get(id)
		storage.Delete(id)
	}
}

func BenchmarkCommandsFlush(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)
	scheduler.RegisterNamed("spawn", ecs.SystemFunc(func(frame *ecs.UpdateFrame) {
		for range 100 {
			frame.Commands.Spawn(Position{X: 1, Y: 2})
		}
	}))

	for b.Loop() {
		scheduler.Once(0.016)
	}
}

type benchMovementSystem struct {
	Entities ecs.Query[posVel]
}

func (s *benchMovementSystem) Execute(frame *ecs.UpdateFrame) {
	for item := range s.Entities.Iter() {
		item.Position.X += item.Velocity.DX * float32(frame.DeltaTime)
		item.Position.Y += item.Velocity.DY * float32(frame.DeltaTime)
	}
}

type benchHealthSystem struct {
	Entities ecs.Query[struct{ *Health }]
}

func (s *benchHealthSystem) Execute(frame *ecs.UpdateFrame) {
	for item := range s.Entities.Iter() {
		if item.Health.Current < item.Health.Max {
			item.Health.Current++
		}
	}
}

func BenchmarkSchedulerOnce(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())
	spawnMoving(storage, 1000)

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&benchMovementSystem{})

	for b.Loop() {
		scheduler.Once(0.016)
	}
}

func BenchmarkSchedulerMultipleSystems(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())
	for i := range 1000 {
		storage.Spawn(Position{X: float32(i), Y: float32(i)}, Velocity{DX: 0.5, DY: 0.5}, Health{Current: 50, Max: 100})
	}

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&benchMovementSystem{})
	scheduler.Register(&benchHealthSystem{})

	for b.Loop() {
		scheduler.Once(0.016)
	}
}
