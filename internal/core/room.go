package core

// room holds the member set of a single chat room. It is not safe for
// concurrent use on its own; the registry serializes access.
type room struct {
	members map[*Client]struct{}
}

func newRoom() *room {
	return &room{members: make(map[*Client]struct{})}
}

// add inserts a client into the room. Returns true if newly added.
func (r *room) add(c *Client) bool {
	if _, exists := r.members[c]; exists {
		return false
	}
	r.members[c] = struct{}{}
	return true
}

// remove deletes a client from the room. Returns true if removed.
func (r *room) remove(c *Client) bool {
	if _, exists := r.members[c]; !exists {
		return false
	}
	delete(r.members, c)
	return true
}

// empty returns true if no clients are in the room.
func (r *room) empty() bool {
	return len(r.members) == 0
}

// snapshot copies the member set for lock-free fan-out.
func (r *room) snapshot() []*Client {
	out := make([]*Client, 0, len(r.members))
	for c := range r.members {
		out = append(out, c)
	}
	return out
}
