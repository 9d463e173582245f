package core

import "sync"

// Registry maps room identifiers to their current member sets.
//
// Rooms exist only while they have members: the first CreateOrJoin brings a
// room into being and the last Leave erases it, so an absent room and an
// empty room are the same observation. All methods are safe for concurrent
// use.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*room
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]*room)}
}

// CreateOrJoin unconditionally adds the client to the room's member set,
// creating the room if it does not exist yet.
func (reg *Registry) CreateOrJoin(roomID string, c *Client) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	r, ok := reg.rooms[roomID]
	if !ok {
		r = newRoom()
		reg.rooms[roomID] = r
	}
	r.add(c)
}

// Join adds the client to the room only if the room was previously
// established, i.e. currently has at least one member. A room nobody has
// created cannot be discovered by identifier; in that case Join returns
// ErrRoomNotFound and the registry is left unchanged.
func (reg *Registry) Join(roomID string, c *Client) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	r, ok := reg.rooms[roomID]
	if !ok || r.empty() {
		return ErrRoomNotFound
	}
	r.add(c)
	return nil
}

// Leave removes the client from the room's member set and reports whether
// the membership existed. Leaving an unknown room or a room the client is
// not in is a no-op, not an error. The room is pruned once its member set
// empties.
func (reg *Registry) Leave(roomID string, c *Client) bool {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	r, ok := reg.rooms[roomID]
	if !ok {
		return false
	}
	removed := r.remove(c)
	if r.empty() {
		delete(reg.rooms, roomID)
	}
	return removed
}

// MemberCount returns the room's current member set size, 0 if the room
// does not exist.
func (reg *Registry) MemberCount(roomID string) int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	r, ok := reg.rooms[roomID]
	if !ok {
		return 0
	}
	return len(r.members)
}

// Members returns a snapshot of the room's current members for fan-out.
// The snapshot is taken under the lock, so it never observes a half-applied
// join or leave.
func (reg *Registry) Members(roomID string) []*Client {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	r, ok := reg.rooms[roomID]
	if !ok {
		return nil
	}
	return r.snapshot()
}
