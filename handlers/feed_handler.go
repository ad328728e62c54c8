package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"blogapi/middleware"
	"blogapi/models"
	"blogapi/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

type FeedHandler struct {
	hubService *services.HubService
	upgrader   websocket.Upgrader
}

// NewFeedHandler accepts browser connections from allowedOrigins only; "*" allows any.
// Requests without an Origin header (non-browser clients) are always accepted.
func NewFeedHandler(hubService *services.HubService, allowedOrigins []string) *FeedHandler {
	return &FeedHandler{
		hubService: hubService,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || middleware.OriginAllowed(allowedOrigins, origin)
			},
		},
	}
}

// HandleWebSocket godoc
// @Summary Live feed of post and comment events
// @Tags feed
// @Router /feed/ws [get]
func (fh *FeedHandler) HandleWebSocket(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	conn, err := fh.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade feed connection: %v", err)
		return
	}

	client := models.NewClient(fh.hubService.GetHub(), conn, userID)
	if !fh.hubService.Register(client) {
		conn.Close()
		return
	}

	go fh.writePump(client)
	go fh.readPump(client)
}

// readPump only answers client_connect; everything else on the feed flows server to client.
func (fh *FeedHandler) readPump(client *models.Client) {
	defer func() {
		fh.hubService.Unregister(client)
		client.Conn.Close()
	}()

	client.Conn.SetReadLimit(maxMessageSize)
	client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Unexpected close error for feed client %s: %v", client.ID, err)
			}
			return
		}

		var wsMessage models.WSMessage
		if err := json.Unmarshal(message, &wsMessage); err != nil {
			log.Printf("Error unmarshaling feed message from client %s: %v", client.ID, err)
			continue
		}

		if wsMessage.Type != models.EventClientConnect {
			log.Printf("Unknown feed message type '%s' from client %s", wsMessage.Type, client.ID)
			continue
		}

		response, err := json.Marshal(models.WSMessage{
			Type:     models.EventClientReady,
			Data:     map[string]interface{}{"client_id": client.ID, "user_id": client.UserID},
			ClientID: client.ID,
		})
		if err != nil {
			continue
		}

		// the hub loop owns client.Send
		fh.hubService.Direct(client, response)
	}
}

func (fh *FeedHandler) writePump(client *models.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("Error writing to feed client %s: %v", client.ID, err)
				return
			}

		case <-ticker.C:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
