package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeCreateRoom  = "create-room"
	InboundTypeJoinRoom    = "join-room"
	InboundTypeLeaveRoom   = "leave-room"
	InboundTypeSendMessage = "send-message"

	OutboundTypeReceiveMessage = "receive-message"
	OutboundTypeUserCount      = "user-count"
	OutboundTypeError          = "error"
)

// RoomData identifies the target room of create/join/leave requests.
type RoomData struct {
	Room string `json:"room"`
}

// SendMessageData is a chat message from the client. Timestamp is an opaque
// client-supplied string and is relayed untouched.
type SendMessageData struct {
	Room      string `json:"room"`
	UserName  string `json:"userName"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// ReceiveMessageData is a relayed chat message, delivered verbatim to every
// current member of the target room.
type ReceiveMessageData struct {
	Room      string `json:"room"`
	UserName  string `json:"userName"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// UserCountData carries a room's live member count after a membership change.
type UserCountData struct {
	Room  string `json:"room"`
	Count int    `json:"count"`
}

// Error describes a failed request, delivered only to the requester.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
