package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rocketscienceinc/boardgame-backend/internal/apperror"
	"github.com/rocketscienceinc/boardgame-backend/internal/entity"
)

type errorResponse struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

type healthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

// listSessionsHandler returns the joinable sessions, optionally filtered by ?gameType=.
// Unlike the websocket lobby it never creates a session.
func (that *Server) listSessionsHandler(w http.ResponseWriter, r *http.Request) {
	sessions := that.gameManager.AvailableSessions()

	if value := r.URL.Query().Get("gameType"); value != "" {
		gameType, err := entity.ParseGameType(value)
		if err != nil {
			that.respondError(w, http.StatusBadRequest, err)
			return
		}

		filtered := make([]*entity.Session, 0, len(sessions))
		for _, session := range sessions {
			if session.GameType == gameType {
				filtered = append(filtered, session)
			}
		}
		sessions = filtered
	}

	that.respondJSON(w, http.StatusOK, sessions)
}

func (that *Server) getSessionHandler(w http.ResponseWriter, r *http.Request) {
	session, err := that.gameManager.GetSession(mux.Vars(r)["id"])
	if errors.Is(err, apperror.ErrSessionNotFound) {
		that.respondError(w, http.StatusNotFound, err)
		return
	}

	if err != nil {
		that.respondError(w, http.StatusInternalServerError, err)
		return
	}

	that.respondJSON(w, http.StatusOK, session)
}

func (that *Server) healthHandler(w http.ResponseWriter, _ *http.Request) {
	that.respondJSON(w, http.StatusOK, healthResponse{
		Status:   "ok",
		Sessions: that.sessionCounter.Count(),
	})
}

func (that *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}

func (that *Server) respondError(w http.ResponseWriter, status int, err error) {
	that.respondJSON(w, status, errorResponse{
		Message: err.Error(),
		Kind:    apperror.Kind(err),
	})
}
