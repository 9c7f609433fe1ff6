// internal/handlers/utils.go
package handlers

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/codeuno/server/internal/game"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// encodeEvent marshals a game event, returning "{}" on failure so a bad
// payload never tears down a connection.
func encodeEvent(ev game.GameEvent, logger *logrus.Logger) []byte {
	data, err := json.Marshal(ev)
	if err != nil {
		logger.Warnf("failed to marshal game event %s: %v", ev.Type, err)
		return []byte("{}")
	}
	return data
}

// GenerateRoomPin returns a 6-digit room PIN.
func GenerateRoomPin() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}

// GenerateBotName produces a display name for a fill-in seat.
func GenerateBotName() string {
	adjectives := []string{"Swift", "Clever", "Bold", "Sneaky", "Lucky", "Quick"}
	nouns := []string{"Coder", "Hacker", "Dev", "Ninja", "Wizard", "Master"}
	return adjectives[rand.Intn(len(adjectives))] + nouns[rand.Intn(len(nouns))]
}

// bearerToken pulls a session token from the Authorization header, the
// "token" query parameter, or the session cookie, in that order.
func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if t := r.URL.Query().Get("token"); t != "" {
		return t
	}
	if c, err := r.Cookie("session"); err == nil {
		return c.Value
	}
	return ""
}
