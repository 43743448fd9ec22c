package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/oskarhn/gridword-backend/internal/engine"
	"github.com/oskarhn/gridword-backend/internal/hub"
	"github.com/oskarhn/gridword-backend/internal/ws"
)

func SetupRoutes(eng *engine.Engine, h *hub.Hub, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", Healthz)
	r.Get("/ws", ws.Handler(h, eng, log))

	r.Route("/games", func(r chi.Router) {
		r.Post("/", StartGame(eng, log))
		r.Route("/{gameID}", func(r chi.Router) {
			r.Get("/", GetGame(eng))
			r.Post("/select", SelectLetter(eng))
			r.Post("/place", PlaceLetter(eng))
			r.Post("/intent", SetIntent(eng))
			r.Post("/confirm", ConfirmPlacement(eng))
			r.Post("/leave", LeaveGame(eng))
		})
	})
	return r
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
