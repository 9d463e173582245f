package core

// DefaultEventBuffer is the Events channel capacity used when the caller
// passes a non-positive buffer size.
const DefaultEventBuffer = 8

// Client is a connected chat participant as seen by the core layer.
// The hub owns the client between Register and teardown; transport code
// only reads from Events.
type Client struct {
	ID   string
	Name string
	// Events carries outbound notifications. Delivery is best-effort:
	// the hub drops events instead of blocking when the buffer is full,
	// so a slow reader cannot stall a room.
	Events chan *Event

	// rooms and gone are touched only by the hub goroutine.
	rooms map[string]struct{}
	gone  bool
}

// NewClient constructs a client with an initialized event channel.
func NewClient(id, name string, buffer int) *Client {
	if name == "" {
		name = id
	}
	if buffer <= 0 {
		buffer = DefaultEventBuffer
	}
	return &Client{
		ID:     id,
		Name:   name,
		Events: make(chan *Event, buffer),
		rooms:  make(map[string]struct{}),
	}
}
