// internal/handlers/room.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/codeuno/server/internal/database"
	"github.com/codeuno/server/internal/game"
	"github.com/codeuno/server/internal/models"
)

// CreateRoomHandler opens a new room with a generated PIN. The creator is
// seated first and becomes the admin.
func CreateRoomHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		userID, err := authenticatedUserID(r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		var req struct {
			Name       string `json:"name"`
			MaxPlayers int    `json:"max_players"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.MaxPlayers <= 0 {
			req.MaxPlayers = 8
		}
		room := &models.Room{
			PIN:        GenerateRoomPin(),
			Name:       req.Name,
			AdminID:    userID,
			MaxPlayers: req.MaxPlayers,
			Status:     models.RoomWaiting,
		}
		if err := database.InsertRoom(r.Context(), room); err != nil {
			writeError(w, http.StatusInternalServerError, "could not create room")
			return
		}
		writeJSON(w, http.StatusCreated, room)
	}
}

// JoinRoomHandler seats the requesting user in an existing waiting room.
func JoinRoomHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		userID, err := authenticatedUserID(r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		var req struct {
			PIN string `json:"pin"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		room, err := database.GetRoom(r.Context(), req.PIN)
		if err != nil {
			writeError(w, http.StatusNotFound, "room not found")
			return
		}
		if room.Status != models.RoomWaiting {
			writeError(w, http.StatusConflict, "room is not accepting players")
			return
		}
		roster, err := database.FetchParticipants(r.Context(), req.PIN)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "could not read roster")
			return
		}
		if len(roster) >= room.MaxPlayers {
			writeError(w, http.StatusConflict, "room is full")
			return
		}
		if err := database.AddParticipant(r.Context(), req.PIN, userID); err != nil {
			writeError(w, http.StatusInternalServerError, "could not join room")
			return
		}
		writeJSON(w, http.StatusOK, room)
	}
}

// RoomInfoHandler returns a room and its ordered roster.
func RoomInfoHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		if _, err := authenticatedUserID(r); err != nil {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		pin := r.URL.Query().Get("pin")
		if pin == "" {
			writeError(w, http.StatusBadRequest, "pin query parameter required")
			return
		}
		room, err := database.GetRoom(r.Context(), pin)
		if err != nil {
			writeError(w, http.StatusNotFound, "room not found")
			return
		}
		roster, err := database.FetchParticipants(r.Context(), pin)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "could not read roster")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"room":         room,
			"participants": roster,
		})
	}
}

// StartRoundHandler begins a round in a waiting room. Admin only. The
// request body may override room rules (turn/round clocks, UNO penalty).
func StartRoundHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		userID, err := authenticatedUserID(r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		var req struct {
			PIN   string                 `json:"pin"`
			Rules map[string]interface{} `json:"rules"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		room, err := database.GetRoom(r.Context(), req.PIN)
		if err != nil {
			writeError(w, http.StatusNotFound, "room not found")
			return
		}
		if room.AdminID != userID {
			writeError(w, http.StatusForbidden, "only the room admin can start a round")
			return
		}
		if _, ok := gs.GameStore.GetGame(req.PIN); ok {
			writeError(w, http.StatusConflict, "a round is already running in this room")
			return
		}
		rules := game.DefaultRoomRules()
		if err := rules.Update(req.Rules); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		g, err := gs.StartRound(r.Context(), req.PIN, rules)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "could not start round")
			return
		}
		writeJSON(w, http.StatusOK, g.SnapshotFor(userID))
	}
}
