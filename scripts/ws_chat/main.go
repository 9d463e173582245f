// Interactive terminal client for the relay. Joins (or creates) a room and
// relays stdin lines as chat messages.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/Grenish/chitchat-next/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_chat: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:8080/ws", "WebSocket address")
	name := flag.String("name", "cli-user", "display name")
	room := flag.String("room", "", "room to join")
	create := flag.Bool("create", false, "create the room instead of joining")
	flag.Parse()

	if *room == "" {
		return fmt.Errorf("-room is required")
	}

	baseCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(baseCtx)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *addr+"?userName="+url.QueryEscape(*name), nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	send := func(msgType string, data any) {
		raw, marshalErr := json.Marshal(data)
		if marshalErr != nil {
			log.Printf("marshal: %v", marshalErr)
			return
		}
		if writeErr := wsjson.Write(ctx, conn, proto.Inbound{Type: msgType, Data: raw}); writeErr != nil {
			cancel()
			log.Printf("send: %v", writeErr)
		}
	}

	if *create {
		send(proto.InboundTypeCreateRoom, proto.RoomData{Room: *room})
	} else {
		send(proto.InboundTypeJoinRoom, proto.RoomData{Room: *room})
	}

	go func() {
		for {
			var frame struct {
				Type  string          `json:"type"`
				Data  json.RawMessage `json:"data"`
				Error *proto.Error    `json:"error"`
			}
			if readErr := wsjson.Read(ctx, conn, &frame); readErr != nil {
				cancel()
				return
			}
			switch frame.Type {
			case proto.OutboundTypeReceiveMessage:
				var msg proto.ReceiveMessageData
				if json.Unmarshal(frame.Data, &msg) == nil {
					fmt.Printf("[%s] %s: %s\n", msg.Timestamp, msg.UserName, msg.Message)
				}
			case proto.OutboundTypeUserCount:
				var count proto.UserCountData
				if json.Unmarshal(frame.Data, &count) == nil {
					fmt.Printf("* %d user(s) in %s\n", count.Count, count.Room)
				}
			case proto.OutboundTypeError:
				if frame.Error != nil {
					fmt.Printf("! %s: %s\n", frame.Error.Code, frame.Error.Msg)
				}
			}
		}
	}()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		text := scanner.Text()
		if text == "" {
			continue
		}
		send(proto.InboundTypeSendMessage, proto.SendMessageData{
			Room:      *room,
			UserName:  *name,
			Message:   text,
			Timestamp: time.Now().Format("15:04"),
		})
	}
	return scanner.Err()
}
