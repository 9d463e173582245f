package core

import (
	"context"

	"github.com/rs/zerolog"
)

type envelopeKind int

const (
	envCommand envelopeKind = iota
	envRegister
	envDeregister
)

type envelope struct {
	kind   envelopeKind
	client *Client
	cmd    *Command
}

// Hub orchestrates room membership, presence publication and message
// relay. All state transitions run on the single Run goroutine, so command
// handling is serialized; the registry carries its own lock for readers
// outside the hub (HTTP handlers, tests).
type Hub struct {
	registry *Registry
	log      zerolog.Logger
	commands chan envelope
	done     chan struct{}
}

// NewHub creates a hub around the given registry. A nil registry or logger
// is replaced with a fresh registry / a no-op logger.
func NewHub(registry *Registry, logger *zerolog.Logger) *Hub {
	if registry == nil {
		registry = NewRegistry()
	}
	log := zerolog.Nop()
	if logger != nil {
		log = *logger
	}
	return &Hub{
		registry: registry,
		log:      log,
		commands: make(chan envelope, 64),
		done:     make(chan struct{}),
	}
}

// Registry exposes the room registry for read-side collaborators.
func (h *Hub) Registry() *Registry {
	return h.registry
}

// Run processes commands until the context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			return
		case env := <-h.commands:
			h.handle(env)
		}
	}
}

// Register announces a new connection to the hub.
func (h *Hub) Register(c *Client) {
	h.enqueue(envelope{kind: envRegister, client: c})
}

// Deregister tears down a connection: the client is removed from every room
// it joined, the post-removal member count is published to each of those
// rooms, and the client's event channel is closed. Safe to call more than
// once; only the first call has any effect.
func (h *Hub) Deregister(c *Client) {
	h.enqueue(envelope{kind: envDeregister, client: c})
}

// Dispatch hands a client command to the hub.
func (h *Hub) Dispatch(c *Client, cmd *Command) {
	h.enqueue(envelope{kind: envCommand, client: c, cmd: cmd})
}

func (h *Hub) enqueue(env envelope) {
	select {
	case h.commands <- env:
	case <-h.done:
		// Hub stopped; late transport notifications are dropped.
	}
}

func (h *Hub) handle(env envelope) {
	c := env.client
	if c == nil {
		return
	}
	switch env.kind {
	case envRegister:
		h.log.Info().Str("client_id", c.ID).Str("name", c.Name).Msg("client connected")
	case envDeregister:
		h.teardown(c)
	case envCommand:
		if c.gone || env.cmd == nil {
			return
		}
		h.handleCommand(c, env.cmd)
	}
}

func (h *Hub) handleCommand(c *Client, cmd *Command) {
	switch cmd.Kind {
	case CommandCreateRoom:
		h.registry.CreateOrJoin(cmd.Room, c)
		c.rooms[cmd.Room] = struct{}{}
		h.log.Info().Str("client_id", c.ID).Str("room", cmd.Room).Msg("client created/joined room")
		h.publishCount(cmd.Room)
	case CommandJoinRoom:
		if err := h.registry.Join(cmd.Room, c); err != nil {
			h.deliver(c, &Event{
				Kind:  EventError,
				Room:  cmd.Room,
				Error: coreError(ErrCodeRoomNotFound, "Room not found"),
			})
			return
		}
		c.rooms[cmd.Room] = struct{}{}
		h.log.Info().Str("client_id", c.ID).Str("room", cmd.Room).Msg("client joined room")
		h.publishCount(cmd.Room)
	case CommandLeaveRoom:
		delete(c.rooms, cmd.Room)
		if h.registry.Leave(cmd.Room, c) {
			h.publishCount(cmd.Room)
		}
	case CommandSendMessage:
		h.relay(c, cmd.Message)
	}
}

// relay fans a message out to every current member of its target room,
// sender included. A vacated room is a silent no-op: a message racing a
// concurrent disconnect is expected, not an error.
func (h *Hub) relay(sender *Client, msg Message) {
	if msg.Room == "" || msg.From == "" || msg.Text == "" {
		h.deliver(sender, &Event{
			Kind:  EventError,
			Room:  msg.Room,
			Error: coreError(ErrCodeBadRequest, "message requires room, userName and message"),
		})
		return
	}

	members := h.registry.Members(msg.Room)
	if len(members) == 0 {
		h.log.Debug().Str("room", msg.Room).Msg("message for vacated room dropped")
		return
	}
	ev := &Event{Kind: EventRoomMessage, Room: msg.Room, Message: msg}
	for _, m := range members {
		h.deliver(m, ev)
	}
}

// publishCount broadcasts the room's current member count to every current
// member. The count and the recipient set come from a single registry
// snapshot, so the published number always matches who receives it.
func (h *Hub) publishCount(roomID string) {
	members := h.registry.Members(roomID)
	if len(members) == 0 {
		return
	}
	ev := &Event{Kind: EventUserCount, Room: roomID, Count: len(members)}
	for _, m := range members {
		h.deliver(m, ev)
	}
}

// teardown removes the client from every room it belonged to, publishing
// the post-removal count to the remaining members of each. Runs at most
// once per client.
func (h *Hub) teardown(c *Client) {
	if c.gone {
		return
	}
	c.gone = true

	for roomID := range c.rooms {
		if h.registry.Leave(roomID, c) {
			h.publishCount(roomID)
		}
	}
	c.rooms = nil
	close(c.Events)
	h.log.Info().Str("client_id", c.ID).Msg("client disconnected")
}

// deliver pushes one event to one client without blocking. Delivery is
// best-effort: a full buffer or an already-gone client drops the event.
func (h *Hub) deliver(c *Client, ev *Event) {
	if c.gone {
		return
	}
	select {
	case c.Events <- ev:
	default:
		h.log.Debug().Str("client_id", c.ID).Int("kind", int(ev.Kind)).Msg("event dropped, slow consumer")
	}
}
