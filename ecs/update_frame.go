package ecs

// UpdateFrame is handed to every system during a Scheduler pass.
type UpdateFrame struct {
	// DeltaTime is the time in seconds since the previous pass.
	DeltaTime float64
	// Tick counts passes of the owning Scheduler, starting at 1.
	Tick     uint64
	Commands *Commands
	Storage  *Storage
}

func newUpdateFrame(dt float64, tick uint64, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Tick:      tick,
		Commands:  newCommands(),
		Storage:   storage,
	}
}
