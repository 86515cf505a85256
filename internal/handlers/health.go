package handlers

import (
	"context"
	"time"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/rs/zerolog/log"
)

const healthPingTimeout = 2 * time.Second

type HealthHandler struct {
	db PingerInterface
}

func NewHealthHandler(db PingerInterface) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *drift.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("health check: database unreachable")
		_ = c.JSON(503, map[string]string{"status": "unavailable"})
		return
	}

	_ = c.JSON(200, map[string]string{"status": "ok"})
}
