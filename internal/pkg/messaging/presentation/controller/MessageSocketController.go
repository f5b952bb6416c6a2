package controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/carolinadevia11/Bridge/internal/infrastructure/realtime"
	"github.com/carolinadevia11/Bridge/internal/pkg/auth/presentation/middleware"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// MessageSocketController upgrades an authenticated request to a websocket
// session so new messages can be pushed to the signed-in parent live.
type MessageSocketController struct {
	Hub *realtime.Hub
}

func NewMessageSocketController(hub *realtime.Hub) *MessageSocketController {
	return &MessageSocketController{Hub: hub}
}

func (h *MessageSocketController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := middleware.IdentityFrom(c)

		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the HTTP error response
			log.Printf("messaging: websocket upgrade for %s: %v", id.Email, err)
			return
		}

		conn := realtime.NewConnection(id.Email, ws)
		h.Hub.Attach(conn)
		defer h.Hub.Detach(conn)

		// The read loop exists to observe close frames and keep the
		// connection's control handlers serviced; inbound frames are ignored.
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				conn.Close(websocket.CloseNormalClosure, "client disconnected")
				return
			}
		}
	}
}
