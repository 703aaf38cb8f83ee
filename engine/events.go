package engine

import (
	"iter"
	"slices"
)

// Events is a per-frame queue of T. Events sent during a frame are visible to
// every system that runs after the send, until the host clears the queue at the
// start of the next frame.
type Events[T any] struct {
	queue []T
}

// Send appends events to the queue.
func (e *Events[T]) Send(events ...T) {
	e.queue = append(e.queue, events...)
}

// Iter yields queued events in send order.
func (e *Events[T]) Iter() iter.Seq[T] {
	return slices.Values(e.queue)
}

func (e *Events[T]) Len() int {
	return len(e.queue)
}

// Clear empties the queue, keeping its capacity.
func (e *Events[T]) Clear() {
	clear(e.queue)
	e.queue = e.queue[:0]
}

// DragAndDropKind distinguishes file drag-and-drop notifications.
type DragAndDropKind int

const (
	DroppedFile DragAndDropKind = iota
	HoveredFile
	HoveredFileCanceled
)

func (k DragAndDropKind) String() string {
	switch k {
	case DroppedFile:
		return "DroppedFile"
	case HoveredFile:
		return "HoveredFile"
	case HoveredFileCanceled:
		return "HoveredFileCanceled"
	default:
		return "DragAndDropKind(?)"
	}
}

// FileDragAndDrop is sent when a file is dragged over or dropped on the window.
// Path is empty for HoveredFileCanceled.
type FileDragAndDrop struct {
	Kind DragAndDropKind
	Path string
}

func (e FileDragAndDrop) String() string {
	if e.Path == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + " " + e.Path
}
