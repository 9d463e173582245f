package core

// Message is the domain model for a chat message. Messages are transient:
// they exist only while being relayed to room members.
type Message struct {
	Room string
	// From is the sender's display name as supplied by the client.
	// It is not unique and not verified.
	From string
	Text string
	// Timestamp is whatever string the client attached. The relay treats
	// it as opaque and never generates or validates it.
	Timestamp string
}
