// internal/game/rules.go
package game

import (
	"fmt"

	"github.com/codeuno/server/internal/models"
)

// IsLegalPlay reports whether card may be played on top. A wild card is
// always legal. A chromatic card matches on the active color (set while the
// top card is wild), on the top card's own color, or on equal value, which
// allows cross-color number and action matches. Pure function.
func IsLegalPlay(card, top models.Card, activeColor models.Color) bool {
	if card.IsWild() {
		return true
	}
	if activeColor != "" && card.Color == activeColor {
		return true
	}
	if card.Color == top.Color {
		return true
	}
	return card.Value == top.Value
}

// PointValue is the end-of-round scoring weight of a single card: 50 for
// wilds, 20 for chromatic actions, face value for digits. Never consulted
// during legality checks.
func PointValue(card models.Card) int {
	switch card.Value {
	case models.ValueWild, models.ValueWildDrawFour:
		return 50
	case models.ValueSkip, models.ValueReverse, models.ValueDrawTwo:
		return 20
	}
	if len(card.Value) == 1 && card.Value[0] >= '0' && card.Value[0] <= '9' {
		return int(card.Value[0] - '0')
	}
	return 0
}

// HandScore sums PointValue across a hand.
func HandScore(cards []models.Card) int {
	total := 0
	for _, c := range cards {
		total += PointValue(c)
	}
	return total
}

// RoomRules is the game-time configuration the room hands to the controller
// at round start. The engine never reads configuration from anywhere else.
type RoomRules struct {
	HandSize          int  `json:"handSize"`          // cards dealt per player, default 7
	TurnClockSec      int  `json:"turnClockSec"`      // per-turn budget before a forced draw; 0 disables
	RoundClockSec     int  `json:"roundClockSec"`     // whole-round budget; 0 disables
	EnforceUnoPenalty bool `json:"enforceUnoPenalty"` // draw 2 for a missed UNO call
	UnoPenaltyCount   int  `json:"unoPenaltyCount"`   // cards drawn for a missed call
}

// DefaultRoomRules matches the standard table setup.
func DefaultRoomRules() RoomRules {
	return RoomRules{
		HandSize:          7,
		TurnClockSec:      30,
		RoundClockSec:     1200,
		EnforceUnoPenalty: false,
		UnoPenaltyCount:   2,
	}
}

// Update overlays rules from a loosely-typed map (JSON-decoded request
// bodies). Absent keys keep their current value.
func (r *RoomRules) Update(newRules map[string]interface{}) error {
	assignInt := func(field *int, key string) error {
		val, exists := newRules[key]
		if !exists || val == nil {
			return nil
		}
		switch v := val.(type) {
		case float64:
			*field = int(v)
		case int:
			*field = v
		default:
			return fmt.Errorf("invalid type for %s", key)
		}
		if *field < 0 {
			return fmt.Errorf("%s must be non-negative", key)
		}
		return nil
	}
	if val, exists := newRules["enforceUnoPenalty"]; exists && val != nil {
		b, ok := val.(bool)
		if !ok {
			return fmt.Errorf("invalid type for enforceUnoPenalty")
		}
		r.EnforceUnoPenalty = b
	}
	if err := assignInt(&r.HandSize, "handSize"); err != nil {
		return err
	}
	if err := assignInt(&r.TurnClockSec, "turnClockSec"); err != nil {
		return err
	}
	if err := assignInt(&r.RoundClockSec, "roundClockSec"); err != nil {
		return err
	}
	if err := assignInt(&r.UnoPenaltyCount, "unoPenaltyCount"); err != nil {
		return err
	}
	return nil
}
