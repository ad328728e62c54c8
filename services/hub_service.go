package services

import (
	"encoding/json"
	"log"

	"blogapi/models"
)

// HubService fans live feed events out to every connected websocket client.
// All client bookkeeping happens on the Run goroutine.
type HubService struct {
	hub    *models.Hub
	direct chan directMessage
	done   chan struct{}
}

type directMessage struct {
	client  *models.Client
	message []byte
}

func NewHubService() *HubService {
	service := &HubService{
		hub:    models.NewHub(),
		direct: make(chan directMessage, 16),
		done:   make(chan struct{}),
	}

	go service.Run()

	return service
}

func (h *HubService) GetHub() *models.Hub {
	return h.hub
}

func (h *HubService) Run() {
	for {
		select {
		case client := <-h.hub.Register:
			h.hub.Clients[client] = true
			log.Printf("Feed client %s registered (user %d)", client.ID, client.UserID)

		case client := <-h.hub.Unregister:
			h.unregisterClient(client)

		case message := <-h.hub.Broadcast:
			h.broadcastToAll(message)

		case dm := <-h.direct:
			if h.hub.Clients[dm.client] {
				h.deliver(dm.client, dm.message)
			}

		case <-h.done:
			for client := range h.hub.Clients {
				h.unregisterClient(client)
			}
			return
		}
	}
}

// Close stops the run loop and disconnects every client.
func (h *HubService) Close() {
	select {
	case <-h.done:
	default:
		close(h.done)
	}
}

// Register adds client to the feed. It reports false once the hub is closed.
func (h *HubService) Register(client *models.Client) bool {
	select {
	case h.hub.Register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *HubService) Unregister(client *models.Client) {
	select {
	case h.hub.Unregister <- client:
	case <-h.done:
	}
}

// Publish queues an event for every client. It never blocks a request: when the queue is full the
// event is dropped.
func (h *HubService) Publish(eventType string, data interface{}) {
	messageBytes, err := json.Marshal(models.WSMessage{Type: eventType, Data: data})
	if err != nil {
		log.Printf("Error marshaling feed event %s: %v", eventType, err)
		return
	}

	select {
	case h.hub.Broadcast <- messageBytes:
	default:
		log.Printf("Feed queue full, dropping %s event", eventType)
	}
}

// Direct queues message for a single client.
func (h *HubService) Direct(client *models.Client, message []byte) {
	select {
	case h.direct <- directMessage{client: client, message: message}:
	case <-h.done:
	}
}

func (h *HubService) unregisterClient(client *models.Client) {
	if _, ok := h.hub.Clients[client]; ok {
		delete(h.hub.Clients, client)
		close(client.Send)
		log.Printf("Feed client %s unregistered (user %d)", client.ID, client.UserID)
	}
}

func (h *HubService) broadcastToAll(message []byte) {
	for client := range h.hub.Clients {
		h.deliver(client, message)
	}
}

func (h *HubService) deliver(client *models.Client, message []byte) {
	select {
	case client.Send <- message:
	default:
		// slow consumer
		h.unregisterClient(client)
	}
}
