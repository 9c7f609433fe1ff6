// internal/models/room.go
package models

import "github.com/google/uuid"

// RoomStatus mirrors the round status exposed in snapshots.
type RoomStatus string

const (
	RoomWaiting  RoomStatus = "waiting"
	RoomPlaying  RoomStatus = "playing"
	RoomFinished RoomStatus = "finished"
)

// Room is a table identified by a 6-digit PIN. The ordered participant
// roster is handed to the game controller when a round starts.
type Room struct {
	PIN        string     `json:"pin"`
	Name       string     `json:"name"`
	AdminID    uuid.UUID  `json:"admin_id"`
	MaxPlayers int        `json:"max_players"`
	Status     RoomStatus `json:"status"`
}

// Participant is one roster entry, ordered by seat position.
type Participant struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Seat     int       `json:"seat"`
	Language string    `json:"language,omitempty"`
}
