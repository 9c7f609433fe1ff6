// internal/game/snapshot.go
package game

import (
	"github.com/google/uuid"

	"github.com/codeuno/server/internal/models"
)

// PlayerState is one seat as seen by a requesting viewer. Only the viewer's
// own hand is revealed; other hands appear as counts.
type PlayerState struct {
	ID            uuid.UUID     `json:"id"`
	Username      string        `json:"username"`
	HandSize      int           `json:"handSize"`
	Hand          []models.Card `json:"hand,omitempty"`
	HasCalledUno  bool          `json:"hasCalledUno"`
	IsCurrentTurn bool          `json:"isCurrentTurn"`
	Connected     bool          `json:"connected"`
	Score         int           `json:"score"`
}

// GameState is the read-only snapshot returned after every accepted intent
// and pushed on reconnect. Exactly one player has IsCurrentTurn set while
// the status is "playing"; ActiveColor is non-empty iff the top discard is
// a wild with a chosen color.
type GameState struct {
	RoomPIN           string            `json:"roomPin"`
	Players           []PlayerState     `json:"players"`
	CurrentPlayerID   uuid.UUID         `json:"currentPlayerId"`
	DiscardTop        *models.Card      `json:"discardTop,omitempty"`
	DiscardSize       int               `json:"discardSize"`
	DeckSize          int               `json:"deckSize"`
	Direction         int               `json:"direction"`
	ActiveColor       models.Color      `json:"activeColor,omitempty"`
	Phase             Phase             `json:"phase"`
	Status            models.RoomStatus `json:"status"`
	Winner            uuid.UUID         `json:"winner,omitempty"`
	TimeRemaining     int               `json:"timeRemaining"`
	TurnTimeRemaining int               `json:"turnTimeRemaining"`
}

// SnapshotFor builds the snapshot from the viewer's perspective.
func (g *UnoGame) SnapshotFor(viewer uuid.UUID) *GameState {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.snapshotFor(viewer)
}

// snapshotFor assumes the lock is held.
func (g *UnoGame) snapshotFor(viewer uuid.UUID) *GameState {
	status := models.RoomWaiting
	switch {
	case g.Phase == PhaseRoundFinished:
		status = models.RoomFinished
	case g.Started:
		status = models.RoomPlaying
	}

	st := &GameState{
		RoomPIN:           g.RoomPIN,
		DiscardSize:       len(g.DiscardPile),
		Direction:         g.Direction,
		ActiveColor:       g.ActiveColor,
		Phase:             g.Phase,
		Status:            status,
		Winner:            g.Winner,
		TimeRemaining:     g.RoundClockRemaining,
		TurnTimeRemaining: g.TurnClockRemaining,
	}
	if g.Deck != nil {
		st.DeckSize = g.Deck.Size()
	}
	if len(g.DiscardPile) > 0 {
		top := g.topDiscard()
		st.DiscardTop = &top
	}
	if g.Started && len(g.Players) > 0 {
		st.CurrentPlayerID = g.Players[g.CurrentPlayerIndex].ID
	}
	for i, p := range g.Players {
		ps := PlayerState{
			ID:            p.ID,
			Username:      p.Username,
			HandSize:      len(p.Hand),
			HasCalledUno:  p.HasCalledUno,
			IsCurrentTurn: g.Started && status == models.RoomPlaying && i == g.CurrentPlayerIndex,
			Connected:     p.Connected,
			Score:         p.Score,
		}
		if p.ID == viewer {
			ps.Hand = make([]models.Card, len(p.Hand))
			copy(ps.Hand, p.Hand)
		}
		st.Players = append(st.Players, ps)
	}
	return st
}
