package http

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-toml-selector/internal/logger"
	"github.com/MKhiriev/go-toml-selector/models"
)

const (
	pushBuffer = 16
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// host frontends are served from another origin
	CheckOrigin: func(*http.Request) bool { return true },
}

// schemaPush streams schema updates to a websocket client until either
// side goes away. Client messages are read and discarded.
func (h *Handler) schemaPush(w http.ResponseWriter, r *http.Request) {
	if h.updates == nil {
		http.NotFound(w, r)
		return
	}

	log := logger.FromRequest(r)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	updates, cancel := h.updates.Subscribe(pushBuffer)
	defer cancel()

	log.Debug().Str("remote", r.RemoteAddr).Msg("push subscriber connected")

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			log.Debug().Str("remote", r.RemoteAddr).Msg("push subscriber disconnected")
			return
		case update, ok := <-updates:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
				return
			}
			if err = conn.WriteJSON(models.Envelope{Type: models.SchemaUpdateEvent, Data: update}); err != nil {
				log.Debug().Err(err).Msg("push write failed")
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err = conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
