package handlers

import (
	"strings"

	"github.com/dimitrije/parking-control/internal/sse"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

const eventBufferSize = 64

type EventsHandler struct {
	hub EventHubInterface
}

func NewEventsHandler(hub EventHubInterface) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Stream sends parking spot changes as server-sent events. ?block=A,B limits
// created and updated events to those blocks.
func (h *EventsHandler) Stream(c *drift.Context) {
	client := &sse.Client{
		ID:     uuid.New().String(),
		Blocks: parseBlocks(c.QueryParam("block")),
		Send:   make(chan []byte, eventBufferSize),
	}

	if !h.hub.Register(client) {
		writeError(c, 503, "event stream unavailable")
		return
	}
	defer h.hub.Unregister(client)

	stream := c.SSE()

	if err := stream.SendJSON(map[string]string{
		"type":     "connected",
		"clientId": client.ID,
	}, "system", ""); err != nil {
		return
	}

	done := c.Request.Context().Done()
	for {
		select {
		case msg, ok := <-client.Send:
			if !ok {
				return
			}
			if err := stream.Send(string(msg), "message", ""); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func parseBlocks(raw string) map[string]bool {
	blocks := make(map[string]bool)
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			blocks[b] = true
		}
	}
	return blocks
}
