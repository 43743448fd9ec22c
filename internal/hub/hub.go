// Package hub fans published game events out to subscribers (websocket
// connections). One goroutine owns all registries; callers talk to it
// through the inbox channel, so there is no shared-state locking.
package hub

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
)

// Envelope is one event as delivered to subscribers.
type Envelope struct {
	GameID  string          `json:"game_id"`
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type HubMsg interface{ isHubMsg() }

type Subscribe struct {
	GameID   string
	ClientID string
	Outbox   chan Envelope
}

type Unsubscribe struct {
	GameID   string
	ClientID string
}

type broadcast struct {
	env Envelope
}

type ShutdownHub struct{}

func (Subscribe) isHubMsg()   {}
func (Unsubscribe) isHubMsg() {}
func (broadcast) isHubMsg()   {}
func (ShutdownHub) isHubMsg() {}

type Hub struct {
	inbox  chan HubMsg
	subs   map[string]map[string]chan Envelope // game id -> client id -> outbox
	log    *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub(parent context.Context, log *zap.Logger) *Hub {
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:  make(chan HubMsg, 64),
		subs:   make(map[string]map[string]chan Envelope),
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- HubMsg { return h.inbox }

// Publish implements engine.Publisher. Fire-and-forget: marshalling failures
// are logged and dropped, and a full hub inbox drops the event rather than
// blocking a phase transition.
func (h *Hub) Publish(gameID string, event string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		h.log.Error("marshal event", zap.String("event", event), zap.Error(err))
		return
	}
	env := Envelope{GameID: gameID, Event: event, Payload: raw}
	select {
	case h.inbox <- broadcast{env: env}:
	default:
		h.log.Warn("hub inbox full, dropping event",
			zap.String("game_id", gameID),
			zap.String("event", event))
	}
}

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			h.shutdown()
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case Subscribe:
				group := h.subs[msg.GameID]
				if group == nil {
					group = make(map[string]chan Envelope)
					h.subs[msg.GameID] = group
				}
				group[msg.ClientID] = msg.Outbox

			case Unsubscribe:
				if group := h.subs[msg.GameID]; group != nil {
					if ch, ok := group[msg.ClientID]; ok {
						close(ch)
						delete(group, msg.ClientID)
					}
					if len(group) == 0 {
						delete(h.subs, msg.GameID)
					}
				}

			case broadcast:
				for id, ch := range h.subs[msg.env.GameID] {
					select {
					case ch <- msg.env:
					default:
						// Client is slow/full - drop them.
						close(ch)
						delete(h.subs[msg.env.GameID], id)
					}
				}

			case ShutdownHub:
				h.shutdown()
				return
			}
		}
	}
}

func (h *Hub) shutdown() {
	for _, group := range h.subs {
		for id, ch := range group {
			close(ch)
			delete(group, id)
		}
	}
	clear(h.subs)
	h.cancel()
}
