package ecs_test

import (
	"fmt"

	"github.com/plus3/ecsdemos/ecs"
)

type Transform struct {
	X, Y float32
}

type Speed struct {
	DX, DY float32
}

type Leader struct{}

type PhysicsSystem struct {
	Entities ecs.Query[struct {
		*Transform
		*Speed
	}]
}

func (s *PhysicsSystem) Execute(frame *ecs.UpdateFrame) {
	for entity := range s.Entities.Iter() {
		entity.Transform.X += entity.Speed.DX * float32(frame.DeltaTime)
		entity.Transform.Y += entity.Speed.DY * float32(frame.DeltaTime)
	}
}

// ExampleScheduler demonstrates building a game loop with a system.
// The Scheduler initializes Query fields, refreshes them before the system
// runs and flushes the command buffer after every pass.
func ExampleScheduler() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Speed](registry)
	storage := ecs.NewStorage(registry)

	storage.Spawn(Transform{X: 0, Y: 0}, Speed{DX: 10, DY: 5})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&PhysicsSystem{})

	scheduler.Once(1.0)
	scheduler.Once(1.0)

	for item := range ecs.NewView[struct{ *Transform }](storage).Iter() {
		fmt.Printf("Position: (%.0f, %.0f)\n", item.Transform.X, item.Transform.Y)
	}

	// Output:
	// Position: (20, 10)
}

// ExampleQuery_Single shows the marker-component idiom: a zero-size type tags
// the one entity of a role and Single fetches it.
func ExampleQuery_Single() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Leader](registry)
	storage := ecs.NewStorage(registry)

	storage.Spawn(Transform{X: 1})
	storage.Spawn(Transform{X: 2}, Leader{})

	leader := ecs.NewQuery[struct {
		*Transform
		*Leader
	}](storage)

	item, err := leader.Single()
	fmt.Println(item.Transform.X, err)

	storage.Spawn(Transform{X: 3}, Leader{})
	leader.Execute()

	_, err = leader.Single()
	fmt.Println(err)

	// Output:
	// 2 <nil>
	// ecs: query matched more than one entity (2): struct { *ecs_test.Transform; *ecs_test.Leader }
}

type GameConfig struct {
	MaxPlayers int
	Difficulty string
}

// ExampleNewSingleton demonstrates creating and sharing singleton components.
func ExampleNewSingleton() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())

	config := ecs.NewSingleton[GameConfig](storage, GameConfig{
		MaxPlayers: 4,
		Difficulty: "Normal",
	})
	config.Get().Difficulty = "Hard"

	// A second accessor sees the same data; its initializer is ignored.
	same := ecs.NewSingleton[GameConfig](storage, GameConfig{Difficulty: "Easy"})
	fmt.Printf("%d players, %s\n", same.Get().MaxPlayers, same.Get().Difficulty)

	var read *GameConfig
	if storage.ReadSingleton(&read) {
		fmt.Println("read:", read.Difficulty)
	}

	// Output:
	// 4 players, Hard
	// read: Hard
}
