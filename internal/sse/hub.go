package sse

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/dimitrije/parking-control/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	EventParkingSpotCreated = "parking_spot_created"
	EventParkingSpotUpdated = "parking_spot_updated"
	EventParkingSpotDeleted = "parking_spot_deleted"
)

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type ParkingSpotDeletedEvent struct {
	ID uuid.UUID `json:"id"`
}

// Client is one open event stream. An empty Blocks set receives every event.
type Client struct {
	ID     string
	Blocks map[string]bool
	Send   chan []byte
}

func (c *Client) wants(block string) bool {
	if len(c.Blocks) == 0 || block == "" {
		return true
	}
	return c.Blocks[block]
}

type blockMessage struct {
	block string
	event Event
}

type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan *blockMessage
	done       chan struct{}
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *blockMessage, 256),
		done:       make(chan struct{}),
	}
}

// Run dispatches registrations and events until ctx is done, then closes
// every client stream.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for id, client := range h.clients {
				delete(h.clients, id)
				close(client.Send)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			data, err := json.Marshal(msg.event)
			if err != nil {
				log.Error().Err(err).Str("type", msg.event.Type).Msg("failed to encode event")
				continue
			}
			h.mu.RLock()
			for _, client := range h.clients {
				if !client.wants(msg.block) {
					continue
				}
				select {
				case client.Send <- data:
				default:
					// slow consumer
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register reports false when the hub has stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) ParkingSpotCreated(spot models.ParkingSpot) {
	h.publish(spot.Block, Event{Type: EventParkingSpotCreated, Data: spot})
}

func (h *Hub) ParkingSpotUpdated(spot models.ParkingSpot) {
	h.publish(spot.Block, Event{Type: EventParkingSpotUpdated, Data: spot})
}

// ParkingSpotDeleted goes to every client since the deleted record's block
// is no longer known.
func (h *Hub) ParkingSpotDeleted(id uuid.UUID) {
	h.publish("", Event{Type: EventParkingSpotDeleted, Data: ParkingSpotDeletedEvent{ID: id}})
}

func (h *Hub) publish(block string, event Event) {
	select {
	case h.broadcast <- &blockMessage{block: block, event: event}:
	default:
		log.Warn().Str("type", event.Type).Msg("event queue full, dropping event")
	}
}
