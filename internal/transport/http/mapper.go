package http

import (
	"encoding/json"

	"github.com/Grenish/chitchat-next/internal/core"
	"github.com/Grenish/chitchat-next/internal/proto"
)

func inboundToCommand(client *core.Client, inbound proto.Inbound) (*core.Command, *proto.Error, error) {
	switch inbound.Type {
	case proto.InboundTypeCreateRoom:
		var data proto.RoomData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		if data.Room == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "room is required"}, nil
		}
		return &core.Command{Kind: core.CommandCreateRoom, Room: data.Room}, nil, nil
	case proto.InboundTypeJoinRoom:
		var data proto.RoomData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		if data.Room == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "room is required"}, nil
		}
		return &core.Command{Kind: core.CommandJoinRoom, Room: data.Room}, nil, nil
	case proto.InboundTypeLeaveRoom:
		var data proto.RoomData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		if data.Room == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "room is required"}, nil
		}
		return &core.Command{Kind: core.CommandLeaveRoom, Room: data.Room}, nil, nil
	case proto.InboundTypeSendMessage:
		var msg proto.SendMessageData
		if err := json.Unmarshal(inbound.Data, &msg); err != nil {
			return nil, nil, err
		}
		if msg.Room == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "room is required"}, nil
		}
		if msg.Message == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "message is required"}, nil
		}
		from := msg.UserName
		if from == "" {
			from = client.Name
		}
		return &core.Command{
			Kind: core.CommandSendMessage,
			Room: msg.Room,
			Message: core.Message{
				Room:      msg.Room,
				From:      from,
				Text:      msg.Message,
				Timestamp: msg.Timestamp,
			},
		}, nil, nil
	default:
		return nil, &proto.Error{Code: "invalid_message", Msg: "unknown message type"}, nil
	}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventRoomMessage:
		return proto.Outbound{
			Type: proto.OutboundTypeReceiveMessage,
			Data: proto.ReceiveMessageData{
				Room:      event.Message.Room,
				UserName:  event.Message.From,
				Message:   event.Message.Text,
				Timestamp: event.Message.Timestamp,
			},
		}
	case core.EventUserCount:
		return proto.Outbound{
			Type: proto.OutboundTypeUserCount,
			Data: proto.UserCountData{
				Room:  event.Room,
				Count: event.Count,
			},
		}
	case core.EventError:
		if event.Error == nil {
			return proto.Outbound{Type: proto.OutboundTypeError, Error: &proto.Error{Code: "unknown", Msg: "unknown error"}}
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeError,
			Error: &proto.Error{Code: event.Error.Code, Msg: event.Error.Message},
		}
	default:
		return proto.Outbound{Type: proto.OutboundTypeError, Error: &proto.Error{Code: "unknown", Msg: "unknown event"}}
	}
}
