package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Grenish/chitchat-next/internal/core"
	"github.com/Grenish/chitchat-next/internal/roomcode"
)

// RoomHandlers provides the lobby's HTTP endpoints: minting fresh room codes
// and checking whether a room currently exists.
type RoomHandlers struct {
	registry *core.Registry
	codes    *roomcode.Generator
	log      *zerolog.Logger
}

// NewRoomHandlers creates a new room handlers instance.
func NewRoomHandlers(registry *core.Registry, codes *roomcode.Generator, logger *zerolog.Logger) *RoomHandlers {
	return &RoomHandlers{
		registry: registry,
		codes:    codes,
		log:      logger,
	}
}

// ErrorResponse is the generic error body for REST endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RoomCodeResponse carries a freshly minted room code.
type RoomCodeResponse struct {
	Room string `json:"room"`
}

// RoomResponse describes a live room.
type RoomResponse struct {
	ID      string `json:"id"`
	Members int    `json:"members"`
}

// MintRoomCode hands the lobby a fresh shareable room code. The room itself
// materializes only when its creator joins over the WebSocket.
// POST /api/rooms
func (h *RoomHandlers) MintRoomCode(c *gin.Context) {
	code := h.codes.NewCode()
	h.log.Info().Str("room", code).Msg("room code minted")
	c.JSON(http.StatusCreated, RoomCodeResponse{Room: code})
}

// GetRoom reports a room's live member count so the lobby can pre-validate
// a join. A room with no members does not exist.
// GET /api/rooms/:id
func (h *RoomHandlers) GetRoom(c *gin.Context) {
	id := c.Param("id")
	members := h.registry.MemberCount(id)
	if members == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "room not found"})
		return
	}
	c.JSON(http.StatusOK, RoomResponse{ID: id, Members: members})
}
