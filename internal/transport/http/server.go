package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Grenish/chitchat-next/internal/config"
	"github.com/Grenish/chitchat-next/internal/core"
	"github.com/Grenish/chitchat-next/internal/roomcode"
)

// NewServer builds the HTTP server: health, the lobby's room endpoints and
// the WebSocket relay endpoint.
func NewServer(hub *core.Hub, codes *roomcode.Generator, cfg *config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), LoggerMiddleware(logger))

	router.GET("/healthz", healthHandler)

	rooms := NewRoomHandlers(hub.Registry(), codes, logger)
	api := router.Group("/api")
	api.POST("/rooms", rooms.MintRoomCode)
	api.GET("/rooms/:id", rooms.GetRoom)

	router.GET("/ws", gin.WrapH(NewWSHandler(hub, cfg, logger)))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
