package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventRoomMessage notifies room members about a relayed chat message.
	EventRoomMessage EventKind = iota
	// EventUserCount notifies room members about the current member count.
	EventUserCount
	// EventError notifies the requesting client about a domain error.
	EventError
)

// Event is sent to clients to describe what happened in the system.
type Event struct {
	Kind    EventKind
	Room    string
	Message Message
	Count   int
	Error   *CoreError
}
