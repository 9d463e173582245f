package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog"

	"github.com/Grenish/chitchat-next/internal/config"
	"github.com/Grenish/chitchat-next/internal/core"
	"github.com/Grenish/chitchat-next/internal/proto"
	"github.com/Grenish/chitchat-next/internal/roomcode"
)

// outboundFrame mirrors proto.Outbound with the payload left raw so tests
// can decode it per event type.
type outboundFrame struct {
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data"`
	Error *proto.Error    `json:"error"`
}

func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	hub := core.NewHub(nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	codes, err := roomcode.NewGenerator()
	if err != nil {
		t.Fatalf("room code generator: %v", err)
	}

	disabledLogger := zerolog.Nop()
	cfg := config.Default()
	cfg.Addr = ":0"

	server := NewServer(hub, codes, &cfg, &disabledLogger)
	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	return ts
}

func dialWS(t *testing.T, ctx context.Context, ts *httptest.Server, userName string) *websocket.Conn {
	t.Helper()

	url := strings.Replace(ts.URL, "http://", "ws://", 1) + "/ws"
	if userName != "" {
		url += "?userName=" + userName
	}
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("ws dial: %v", err)
	}
	t.Cleanup(func() {
		_ = conn.Close(websocket.StatusNormalClosure, "test done")
	})
	return conn
}

func sendInbound(t *testing.T, ctx context.Context, conn *websocket.Conn, msgType string, data any) {
	t.Helper()

	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal inbound data: %v", err)
	}
	if err := wsjson.Write(ctx, conn, proto.Inbound{Type: msgType, Data: raw}); err != nil {
		t.Fatalf("write inbound: %v", err)
	}
}

// mustOutbound reads frames until one of the wanted type arrives.
func mustOutbound(t *testing.T, ctx context.Context, conn *websocket.Conn, msgType string) outboundFrame {
	t.Helper()

	readCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	for {
		var frame outboundFrame
		if err := wsjson.Read(readCtx, conn, &frame); err != nil {
			t.Fatalf("waiting for %q frame: %v", msgType, err)
		}
		if frame.Type == msgType {
			return frame
		}
	}
}

func mustUserCount(t *testing.T, ctx context.Context, conn *websocket.Conn, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		frame := mustOutbound(t, ctx, conn, proto.OutboundTypeUserCount)
		var data proto.UserCountData
		if err := json.Unmarshal(frame.Data, &data); err != nil {
			t.Fatalf("unmarshal user-count: %v", err)
		}
		if data.Count == want {
			return
		}
	}
	t.Fatalf("user-count %d not observed", want)
}
