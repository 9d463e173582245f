package http

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/coder/websocket"

	"github.com/Grenish/chitchat-next/internal/core"
	"github.com/Grenish/chitchat-next/internal/proto"
)

func TestHealthEndpoint(t *testing.T) {
	ts := startTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

func TestWSCreateJoinRelayRoundTrip(t *testing.T) {
	ts := startTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	alice := dialWS(t, ctx, ts, "Alice")
	sendInbound(t, ctx, alice, proto.InboundTypeCreateRoom, proto.RoomData{Room: "alpha"})
	mustUserCount(t, ctx, alice, 1)

	bob := dialWS(t, ctx, ts, "Bob")
	sendInbound(t, ctx, bob, proto.InboundTypeJoinRoom, proto.RoomData{Room: "alpha"})
	mustUserCount(t, ctx, bob, 2)
	mustUserCount(t, ctx, alice, 2)

	sendInbound(t, ctx, alice, proto.InboundTypeSendMessage, proto.SendMessageData{
		Room:      "alpha",
		UserName:  "Alice",
		Message:   "hi",
		Timestamp: "10:00",
	})

	for _, conn := range []*websocket.Conn{alice, bob} {
		frame := mustOutbound(t, ctx, conn, proto.OutboundTypeReceiveMessage)
		var data proto.ReceiveMessageData
		if err := json.Unmarshal(frame.Data, &data); err != nil {
			t.Fatalf("unmarshal receive-message: %v", err)
		}
		if data.UserName != "Alice" || data.Message != "hi" || data.Timestamp != "10:00" {
			t.Fatalf("message not relayed verbatim: %+v", data)
		}
	}

	// Bob disconnects; Alice observes the post-removal count.
	if err := bob.Close(websocket.StatusNormalClosure, "bye"); err != nil {
		t.Fatalf("close bob: %v", err)
	}
	mustUserCount(t, ctx, alice, 1)
}

func TestWSJoinUnknownRoomReturnsError(t *testing.T) {
	ts := startTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	alice := dialWS(t, ctx, ts, "Alice")
	sendInbound(t, ctx, alice, proto.InboundTypeJoinRoom, proto.RoomData{Room: "ghost"})

	frame := mustOutbound(t, ctx, alice, proto.OutboundTypeError)
	if frame.Error == nil || frame.Error.Code != core.ErrCodeRoomNotFound {
		t.Fatalf("expected room_not_found, got %+v", frame.Error)
	}
	if frame.Error.Msg != "Room not found" {
		t.Fatalf("unexpected error message: %q", frame.Error.Msg)
	}

	// The connection survives and can still create a room.
	sendInbound(t, ctx, alice, proto.InboundTypeCreateRoom, proto.RoomData{Room: "ghost"})
	mustUserCount(t, ctx, alice, 1)
}

func TestWSMalformedSendRejected(t *testing.T) {
	ts := startTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	alice := dialWS(t, ctx, ts, "Alice")
	sendInbound(t, ctx, alice, proto.InboundTypeCreateRoom, proto.RoomData{Room: "alpha"})
	mustUserCount(t, ctx, alice, 1)

	// Missing message body.
	sendInbound(t, ctx, alice, proto.InboundTypeSendMessage, proto.SendMessageData{Room: "alpha"})

	frame := mustOutbound(t, ctx, alice, proto.OutboundTypeError)
	if frame.Error == nil || frame.Error.Code != core.ErrCodeBadRequest {
		t.Fatalf("expected bad_request, got %+v", frame.Error)
	}
}

func TestWSUnknownTypeRejected(t *testing.T) {
	ts := startTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	alice := dialWS(t, ctx, ts, "Alice")
	sendInbound(t, ctx, alice, "self-destruct", proto.RoomData{Room: "alpha"})

	frame := mustOutbound(t, ctx, alice, proto.OutboundTypeError)
	if frame.Error == nil || frame.Error.Code != "invalid_message" {
		t.Fatalf("expected invalid_message, got %+v", frame.Error)
	}
}
