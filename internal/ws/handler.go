package ws

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/oskarhn/gridword-backend/internal/engine"
	"github.com/oskarhn/gridword-backend/internal/hub"
)

// Handler upgrades a connection and streams the game's published events to
// it. Commands travel over the HTTP API; the socket is delivery-only.
func Handler(h *hub.Hub, eng *engine.Engine, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := r.URL.Query().Get("game")
		if gameID == "" {
			http.Error(w, "missing game", http.StatusBadRequest)
			return
		}
		if _, err := eng.Snapshot(r.Context(), gameID); err != nil {
			http.Error(w, "game not found", http.StatusNotFound)
			return
		}

		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		out := make(chan hub.Envelope, 16)
		clientID := randID(8)

		h.Inbox() <- hub.Subscribe{GameID: gameID, ClientID: clientID, Outbox: out}
		defer func() { h.Inbox() <- hub.Unsubscribe{GameID: gameID, ClientID: clientID} }()

		// Writer goroutine: forward events until the outbox closes.
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for env := range out {
				payload, err := json.Marshal(env)
				if err != nil {
					log.Error("marshal envelope", zap.Error(err))
					continue
				}
				ctx, cancel := context.WithTimeout(writeCtx, 3*time.Second)
				_ = conn.Write(ctx, websocket.MessageText, payload)
				cancel()
			}
		}()

		// Reader loop exists only to notice the peer going away.
		for {
			if _, _, err := conn.Read(r.Context()); err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				return
			}
		}
	}
}

func randID(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
