package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"quizportal/services"
)

// LiveHandler upgrades staff connections onto the quiz event hub.
type LiveHandler struct {
	hub      *services.Hub
	upgrader websocket.Upgrader
}

func NewLiveHandler(hub *services.Hub, allowedOrigins []string) *LiveHandler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &LiveHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed[origin]
			},
		},
	}
}

func (h *LiveHandler) QuizEvents(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the error response.
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	if client := h.hub.RegisterClient(conn, currentUser(c)); client == nil {
		zap.L().Warn("websocket rejected, hub stopped")
	}
}
