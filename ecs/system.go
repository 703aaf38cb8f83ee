package ecs

// System represents a behavior that operates on entities with specific components.
// User-defined systems implement this interface and can include Query and
// Singleton fields, which the Scheduler fills in on registration, as well as
// custom state fields that persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) {
	f(frame)
}
