package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandCreateRoom creates the room if needed and joins the client.
	CommandCreateRoom CommandKind = iota
	// CommandJoinRoom joins an already established room.
	CommandJoinRoom
	// CommandLeaveRoom unsubscribes the client from a room.
	CommandLeaveRoom
	// CommandSendMessage relays a chat message to room members.
	CommandSendMessage
)

// Command represents an action requested by a client.
type Command struct {
	Kind    CommandKind
	Room    string
	Message Message
}
