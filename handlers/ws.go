package handlers

import (
	"log"
	"time"

	"github.com/fintrack-dev/fintrack-api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// WSHandler pushes change signals to a user's connected clients so open
// dashboards can refetch transactions and budget progress.
type WSHandler struct {
	M *melody.Melody
}

func NewWSHandler() *WSHandler {
	m := melody.New()

	m.Config.MaxMessageSize = 1024 * 1024
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleDisconnect(func(s *melody.Session) {
		userID, _ := s.Get("user_id")
		log.Printf("WS client disconnected: user %v", userID)
	})

	m.HandleError(func(s *melody.Session, err error) {
		log.Printf("WS error: %v", err)
	})

	return &WSHandler{M: m}
}

// HandleWS upgrades the request, keying the session by the authenticated
// user.
func (h *WSHandler) HandleWS(c *gin.Context) {
	userID := middleware.GetUserID(c)

	err := h.M.HandleRequestWithKeys(c.Writer, c.Request, map[string]interface{}{
		"user_id": userID,
	})
	if err != nil {
		log.Printf("Failed to upgrade websocket: %v", err)
	}
}

// BroadcastUpdate signals all of a user's sessions that something changed.
func (h *WSHandler) BroadcastUpdate(userID string, updateType string) {
	msg := []byte(`{"type": "` + updateType + `"}`)

	err := h.M.BroadcastFilter(msg, func(s *melody.Session) bool {
		id, exists := s.Get("user_id")
		return exists && id == userID
	})

	if err != nil {
		log.Printf("Error broadcasting to user %s: %v", userID, err)
	}
}
