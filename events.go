package kbucket

import "github.com/attilabuti/eventemitter/v2"

// Events emitted on Options.Emitter, see the package documentation.
const (
	EventAdded   = "kbucket.added"
	EventPing    = "kbucket.ping"
	EventRemoved = "kbucket.removed"
	EventUpdated = "kbucket.updated"
)

type notifier struct {
	emitter *eventemitter.Emitter
}

func (n notifier) emit(event string, args ...any) {
	if n.emitter == nil {
		return
	}

	n.emitter.Emit(event, args...)
}
