// internal/models/player.go
package models

import (
	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// Player is one seat in a round. Hand order carries no meaning; cards are
// looked up by ID.
type Player struct {
	ID           uuid.UUID       `json:"id"`
	Username     string          `json:"username"`
	Hand         []Card          `json:"hand"`
	Connected    bool            `json:"connected"`
	Conn         *websocket.Conn `json:"-"`
	HasCalledUno bool            `json:"hasCalledUno"`

	// Score accumulates across rounds of a match.
	Score int `json:"score"`

	// Language is the player's preferred trivia language ("python", "java",
	// "c"). Irrelevant to the card rules.
	Language string `json:"language,omitempty"`
}

// HoldsCard returns the index of the card with the given ID, or -1.
func (p *Player) HoldsCard(cardID string) int {
	for i, c := range p.Hand {
		if c.ID == cardID {
			return i
		}
	}
	return -1
}
