// internal/handlers/game_ws.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/codeuno/server/internal/game"
	"github.com/codeuno/server/internal/models"
)

// GameMessage is an incoming WebSocket frame during a round.
type GameMessage struct {
	Type    string                 `json:"type"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// errorCode maps engine errors to stable wire codes.
func errorCode(err error) string {
	switch {
	case errors.Is(err, game.ErrNotYourTurn):
		return "not_your_turn"
	case errors.Is(err, game.ErrIllegalCard):
		return "illegal_card"
	case errors.Is(err, game.ErrInvalidColorChoice):
		return "invalid_color_choice"
	case errors.Is(err, game.ErrDeckExhausted):
		return "deck_exhausted"
	case errors.Is(err, game.ErrRoundFinished):
		return "round_finished"
	default:
		return "rejected"
	}
}

// GameWSHandler upgrades to WebSocket for /game/ws/{pin}, authenticates
// the player, and runs the intent read loop until the connection drops.
func GameWSHandler(logger *logrus.Logger, gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pin := strings.Trim(strings.TrimPrefix(r.URL.Path, "/game/ws/"), "/")
		if pin == "" {
			http.Error(w, "missing room pin in path (/game/ws/{pin})", http.StatusBadRequest)
			return
		}
		g, ok := gs.GameStore.GetGame(pin)
		if !ok {
			http.Error(w, "no round running in this room", http.StatusNotFound)
			return
		}

		userID, err := authenticatedUserID(r)
		if err != nil {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}

		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			Subprotocols:   []string{"game"},
			OriginPatterns: []string{"*"},
		})
		if err != nil {
			logger.Warnf("websocket accept failed for room %s: %v", pin, err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "handler exit")

		if c.Subprotocol() != "game" {
			c.Close(websocket.StatusPolicyViolation, "client must use the 'game' subprotocol")
			return
		}

		g.Mu.Lock()
		var player *models.Player
		for _, p := range g.Players {
			if p.ID == userID {
				player = p
				break
			}
		}
		g.Mu.Unlock()
		if player == nil {
			c.Close(websocket.StatusPolicyViolation, "you are not seated in this room")
			return
		}

		logger.WithFields(logrus.Fields{"room": pin, "user": userID}).Info("game websocket connected")
		g.HandleReconnect(userID, c)
		readLoop(r.Context(), logger, gs, g, userID, c)
		g.HandleDisconnect(userID)
		logger.WithFields(logrus.Fields{"room": pin, "user": userID}).Info("game websocket disconnected")
	}
}

// readLoop consumes frames until the connection closes. Trivia frames are
// handled here; everything else is routed into the engine.
func readLoop(ctx context.Context, logger *logrus.Logger, gs *GameServer, g *game.UnoGame, userID uuid.UUID, c *websocket.Conn) {
	// The challenge currently posed to this connection, if any.
	var pending *models.Challenge

	for {
		_, data, err := c.Read(ctx)
		if err != nil {
			return
		}
		var msg GameMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			sendWSError(ctx, c, "bad_message", "invalid JSON frame")
			continue
		}

		switch msg.Type {
		case "challenge_request":
			language, _ := msg.Payload["language"].(string)
			ch := gs.Trivia.PickChallenge(language)
			pending = &ch
			sendWS(ctx, c, map[string]interface{}{
				"type": "challenge",
				"challenge": map[string]interface{}{
					"id":           ch.ID,
					"language":     ch.Language,
					"prompt_start": ch.PromptStart,
					"prompt_end":   ch.PromptEnd,
					"difficulty":   ch.Difficulty,
				},
			})

		case "challenge_answer":
			if pending == nil {
				sendWSError(ctx, c, "no_challenge", "no challenge is pending")
				continue
			}
			answer, _ := msg.Payload["answer"].(string)
			correct := gs.Trivia.CheckAnswer(*pending, answer)
			pending = nil
			if !correct {
				sendWS(ctx, c, map[string]interface{}{"type": "challenge_result", "correct": false})
				continue
			}
			card := gs.Trivia.MintBonusCard()
			if _, err := g.EarnCard(userID, card); err != nil {
				sendWSError(ctx, c, errorCode(err), err.Error())
				continue
			}
			sendWS(ctx, c, map[string]interface{}{"type": "challenge_result", "correct": true})
			gs.broadcastSnapshots(g)

		default:
			intent := models.GameIntent{Type: msg.Type, Payload: msg.Payload}
			if _, err := g.HandleIntent(userID, intent); err != nil {
				sendWSError(ctx, c, errorCode(err), err.Error())
				continue
			}
			gs.broadcastSnapshots(g)
		}
	}
}

func sendWS(ctx context.Context, c *websocket.Conn, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.Write(ctx, websocket.MessageText, data)
}

func sendWSError(ctx context.Context, c *websocket.Conn, code, message string) {
	sendWS(ctx, c, map[string]interface{}{
		"type":    "error",
		"code":    code,
		"message": message,
	})
}
