package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/events"
	"github.com/niwatnet1979-coder/168InteriorLighting/pkg/logger"
)

// WSHandler streams table-change events to connected clients. Clients treat
// each event as an invalidation signal and re-fetch the named table.
type WSHandler struct {
	hub *events.Hub
	log *logger.Logger
}

// NewWSHandler builds the handler.
func NewWSHandler(hub *events.Hub, log *logger.Logger) *WSHandler {
	return &WSHandler{hub: hub, log: log}
}

// Upgrade gates the route to websocket requests.
func (h *WSHandler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Feed pushes every published event as one JSON message until the client
// disconnects.
func (h *WSHandler) Feed() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		ch, cancel := h.hub.Subscribe()
		defer cancel()

		// Reader goroutine: drains client frames and signals close.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case <-done:
				return
			case e, ok := <-ch:
				if !ok {
					return
				}
				if err := conn.WriteJSON(e); err != nil {
					h.log.Debug().Err(err).Msg("change feed client dropped")
					return
				}
			}
		}
	})
}
