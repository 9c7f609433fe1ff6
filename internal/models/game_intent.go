// internal/models/game_intent.go
package models

// GameIntent captures a player's in-round move as received from the UI.
type GameIntent struct {
	Type    string                 `json:"type"`
	Payload map[string]interface{} `json:"payload"`
}
