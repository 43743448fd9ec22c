package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/oskarhn/gridword-backend/internal/engine"
)

type startGameRequest struct {
	RoomID  string   `json:"room_id"`
	UserIDs []string `json:"user_ids"` // in join order
}

type selectLetterRequest struct {
	PlayerID string `json:"player_id"`
	Letter   string `json:"letter"`
}

type placeLetterRequest struct {
	PlayerID string `json:"player_id"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
}

type playerRequest struct {
	PlayerID string `json:"player_id"`
}

type leaveRequest struct {
	UserID      string `json:"user_id"`
	Intentional bool   `json:"intentional"`
}

func StartGame(eng *engine.Engine, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req startGameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.RoomID == "" || len(req.UserIDs) < 2 {
			http.Error(w, "room_id and at least two user_ids required", http.StatusBadRequest)
			return
		}
		g, err := eng.StartGame(r.Context(), req.RoomID, req.UserIDs)
		if err != nil {
			log.Error("start game", zap.String("room_id", req.RoomID), zap.Error(err))
			http.Error(w, "failed to start game", http.StatusInternalServerError)
			return
		}
		snap, err := eng.Snapshot(r.Context(), g.ID)
		if err != nil {
			http.Error(w, "failed to load game", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, snap)
	}
}

func GetGame(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := eng.Snapshot(r.Context(), chi.URLParam(r, "gameID"))
		if err != nil {
			writeEngineError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, snap)
	}
}

func SelectLetter(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req selectLetterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		err := eng.SelectLetter(r.Context(), chi.URLParam(r, "gameID"), req.PlayerID, req.Letter)
		respond(w, err)
	}
}

func PlaceLetter(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req placeLetterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		err := eng.PlaceLetter(r.Context(), chi.URLParam(r, "gameID"), req.PlayerID, req.X, req.Y)
		respond(w, err)
	}
}

func SetIntent(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req playerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		err := eng.SetPlacementIntent(r.Context(), chi.URLParam(r, "gameID"), req.PlayerID)
		respond(w, err)
	}
}

func ConfirmPlacement(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req playerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		err := eng.ConfirmPlacement(r.Context(), chi.URLParam(r, "gameID"), req.PlayerID)
		respond(w, err)
	}
}

func LeaveGame(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req leaveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		err := eng.HandlePlayerLeft(r.Context(), chi.URLParam(r, "gameID"), req.UserID, req.Intentional)
		respond(w, err)
	}
}

func respond(w http.ResponseWriter, err error) {
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		OK bool `json:"ok"`
	}{OK: true})
}

// writeEngineError maps engine rejections to status codes. All engine errors
// are recoverable; 500 is reserved for store failures.
func writeEngineError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, engine.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, engine.ErrInvalidLetter), errors.Is(err, engine.ErrOutOfBounds):
		status = http.StatusBadRequest
	case errors.Is(err, engine.ErrWrongPhase),
		errors.Is(err, engine.ErrNotYourTurn),
		errors.Is(err, engine.ErrNoLetterHeld),
		errors.Is(err, engine.ErrCellOccupied),
		errors.Is(err, engine.ErrNoPlacementToConfirm):
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, struct {
		Error string `json:"error"`
	}{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
